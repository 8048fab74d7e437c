// Package repo implements the data persistence layer for contact records,
// backed by GORM. This file provides repository functions for the Contact model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a contact is not found, GetContact returns gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience). Callers treat it
//     as a normal outcome, distinct from infrastructure failure.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreateContact(ctx, db, c) -> error
//     Inserts a new Contact row and stamps CreatedAt in UTC. If c.ID is zero
//     the database assigns it (AUTOINCREMENT); a pre-set ID is kept as-is.
//
//   - ListContacts(ctx, db) -> []domain.Contact, error
//     Returns all contacts, newest first. Ties on created_at break by
//     descending id, i.e. reverse insertion order.
//
//   - GetContact(ctx, db, id) -> *domain.Contact, error
//     Fetches a single contact by ID, or ErrNotFound if missing.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gigagency/go-contact-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContact inserts a new Contact row. CreatedAt is set to UTC at
// insertion time unless the caller has already stamped it. When c.ID is
// zero the primary key is assigned by the database; when the caller set it
// beforehand (timestamp-derived ids) the value is persisted unchanged.
//
// On success, c carries the assigned ID. On failure, the DB error is
// returned and c.ID must not be trusted.
func CreateContact(ctx context.Context, db *gorm.DB, c *domain.Contact) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(c).Error
}

// ListContacts returns every contact ordered by creation time descending.
// Identical timestamps are broken by descending id so that the most recently
// inserted record wins.
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// GetContact fetches a single contact by its primary key. It returns
// ErrNotFound when no row matches.
func GetContact(ctx context.Context, db *gorm.DB, id int64) (*domain.Contact, error) {
	var c domain.Contact
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
