// Package services – contact store contract
//
// This file defines the persistence capability consumed by the ContactService
// and the NullStore implementation used by the stateless deployment shape,
// where no database is wired. The durable implementation lives in the HTTP
// wiring layer as a thin shim over the repo package functions.
package services

import (
	"context"
	"time"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/repo"
)

// ContactStore is the persistence capability for contact records.
//
// Implementations must be safe for concurrent use. Insert assigns the record
// identifier and creation timestamp; a failed Insert must leave c.ID
// untrusted. GetByID returns repo.ErrNotFound when no record matches, a
// normal outcome rather than an infrastructure failure.
type ContactStore interface {
	// Insert persists c, populating c.ID and c.CreatedAt.
	Insert(ctx context.Context, c *domain.Contact) error
	// ListAll returns every contact, newest first.
	ListAll(ctx context.Context) ([]domain.Contact, error)
	// GetByID fetches one contact, or repo.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
}

// NullStore is the "database not wired" deployment mode made explicit.
// Inserts succeed and receive timestamp-derived identifiers, but nothing is
// retained: listings are always empty and lookups always miss. The stateless
// function handlers use it so that submissions still validate, notify, and
// return an id even without durable storage.
type NullStore struct {
	ids *repo.TimestampIDs
}

// NewNullStore returns a NullStore with its own timestamp id sequence.
func NewNullStore() *NullStore {
	return &NullStore{ids: &repo.TimestampIDs{}}
}

var _ ContactStore = (*NullStore)(nil)

// Insert stamps c with a timestamp-derived id and the current UTC time.
// The record is not retained.
func (s *NullStore) Insert(_ context.Context, c *domain.Contact) error {
	now := time.Now().UTC()
	c.ID = s.ids.Next(now)
	c.CreatedAt = now
	return nil
}

// ListAll always returns an empty listing.
func (s *NullStore) ListAll(context.Context) ([]domain.Contact, error) {
	return []domain.Contact{}, nil
}

// GetByID always reports a miss.
func (s *NullStore) GetByID(context.Context, int64) (*domain.Contact, error) {
	return nil, repo.ErrNotFound
}

// Notice explains the degraded listing behavior to API consumers. The
// stateless handlers include it in the contacts listing response.
func (s *NullStore) Notice() string {
	return "Contact storage is not configured for this deployment; submissions are accepted but not retained."
}
