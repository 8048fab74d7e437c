// Package services – ContactService
//
// This file implements the ContactService, which orchestrates the contact
// form workflow: validate the submission, persist it through the configured
// ContactStore, and dispatch the two advisory email notifications. Service
// level errors (ErrMissingFields, ErrInvalidEmail) are returned for
// predictable cases so handlers can map them to HTTP results consistently;
// store errors propagate unchanged.
package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gigagency/go-contact-backend/internal/domain"
)

// Notifier is the outbound email capability consumed by the ContactService.
//
// Both sends are advisory: a failure must never affect the outcome of the
// submission that triggered them. Implementations no-op (returning nil)
// when the mail transport is not configured.
type Notifier interface {
	// Enabled reports whether the mail transport is configured.
	Enabled() bool
	// NotifyAdmin sends the admin alert for a persisted contact.
	NotifyAdmin(ctx context.Context, c *domain.Contact) error
	// NotifyCustomer sends the confirmation email to the submitter.
	NotifyCustomer(ctx context.Context, email, name string) error
}

// ContactService implements the use-cases around contact form submissions.
// It validates input, persists through the injected store, and dispatches
// notifications. It is safe for concurrent use.
type ContactService struct {
	// Store is the persistence capability (durable or null).
	Store ContactStore
	// Notifier sends the advisory emails. Must not be nil; use a disabled
	// notifier when mail is not configured.
	Notifier Notifier
}

// Submit validates in and persists it as a new Contact.
//
// On validation failure it returns ErrMissingFields or ErrInvalidEmail and
// touches neither the store nor the notifier. On store failure the raw error
// is returned and no contact id may be reported to the caller. On success
// the returned Contact carries the assigned id and creation timestamp.
//
// Submit does not dispatch notifications; callers decide whether to detach
// Notify or await it (the two deployment shapes differ here).
func (s *ContactService) Submit(ctx context.Context, in SubmissionInput) (*domain.Contact, error) {
	if err := ValidateSubmission(in); err != nil {
		return nil, err
	}

	c := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: in.Service,
		Message: in.Message,
	}
	if err := s.Store.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all stored contacts, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.Store.ListAll(ctx)
}

// Get fetches one contact by id. It returns repo.ErrNotFound for a miss.
func (s *ContactService) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	return s.Store.GetByID(ctx, id)
}

// Notify dispatches the admin alert and the customer confirmation for a
// persisted contact. The two sends run concurrently and independently:
// failure of one does not prevent the other, and neither failure is ever
// returned; errors are logged and swallowed.
// Notify blocks until both sends have finished, so callers that
// must not delay their response should run it in its own goroutine with a
// context that outlives the request.
func (s *ContactService) Notify(ctx context.Context, c *domain.Contact) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.Notifier.NotifyAdmin(ctx, c); err != nil {
			log.Error().Err(err).Int64("contact_id", c.ID).Msg("admin notification failed")
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.Notifier.NotifyCustomer(ctx, c.Email, c.Name); err != nil {
			log.Error().Err(err).Int64("contact_id", c.ID).Msg("confirmation email failed")
		}
	}()

	wg.Wait()
}
