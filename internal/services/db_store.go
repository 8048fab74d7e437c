// Package services – database-backed contact store
//
// DBStore adapts the repo package functions to the ContactStore capability.
// It carries the GORM handle and the identifier strategy chosen at
// composition time, keeping the repo layer free of policy.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/repo"
)

// DBStore is the durable ContactStore implementation backed by SQLite via
// GORM. IDs selects the identifier strategy: repo.SequentialIDs defers to the
// database AUTOINCREMENT; a repo.TimestampIDs instance derives ids from the
// clock instead.
type DBStore struct {
	// DB is the database handle used for all contact operations.
	DB *gorm.DB
	// IDs assigns contact identifiers; nil means database-assigned.
	IDs repo.IDGenerator
}

var _ ContactStore = (*DBStore)(nil)

// Insert persists c. When the configured id strategy returns a non-zero
// value it is stamped onto c before the write; otherwise the database
// assigns the id. CreatedAt is always set server-side.
func (s *DBStore) Insert(ctx context.Context, c *domain.Contact) error {
	now := time.Now().UTC()
	if s.IDs != nil {
		c.ID = s.IDs.Next(now)
	}
	c.CreatedAt = now
	return repo.CreateContact(ctx, s.DB, c)
}

// ListAll proxies repo.ListContacts.
func (s *DBStore) ListAll(ctx context.Context) ([]domain.Contact, error) {
	return repo.ListContacts(ctx, s.DB)
}

// GetByID proxies repo.GetContact.
func (s *DBStore) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	return repo.GetContact(ctx, s.DB, id)
}
