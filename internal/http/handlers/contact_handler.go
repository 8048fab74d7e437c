// Contact HTTP handlers.
//
// This file exposes the REST endpoints for contact form intake:
//   - POST /contact        (submit a consultation request)
//   - GET  /contacts       (list all submissions, newest first, ETag support)
//   - GET  /contacts/{id}  (fetch one submission)
//
// Handlers are transport-thin: they parse input, delegate to the contact
// service, and translate domain/service errors into HTTP results. Submission
// notifications are detached here so the response never waits on SMTP.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/repo"
	"github.com/gigagency/go-contact-backend/internal/services"
)

// notifyTimeout bounds the detached notification dispatch; the triggering
// request has already been answered by then.
const notifyTimeout = 60 * time.Second

//
// Service contract (context-aware)
//

// ContactService defines the intake operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ContactService interface {
	// Submit validates and persists a submission, returning the stored record.
	Submit(ctx context.Context, in services.SubmissionInput) (*domain.Contact, error)
	// List returns all contacts, newest first.
	List(ctx context.Context) ([]domain.Contact, error)
	// Get fetches one contact or repo.ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.Contact, error)
	// Notify dispatches both advisory emails, swallowing their errors.
	Notify(ctx context.Context, c *domain.Contact)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for contact intake and health.
// It depends on the abstract service interface to keep transport concerns
// separate from business logic.
type Handlers struct {
	svc         ContactService
	mailEnabled bool
}

// New constructs a Handlers instance bound to the given service.
// mailEnabled is surfaced by the health endpoint.
func New(svc ContactService, mailEnabled bool) *Handlers {
	return &Handlers{svc: svc, mailEnabled: mailEnabled}
}

//
// DTOs
//

// SubmitContactResponse confirms an accepted submission.
type SubmitContactResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Thank you! Your consultation request has been received. We'll contact you soon."`
	ContactID int64  `json:"contactId" example:"42"`
}

// ListContactsResponse wraps the full contact listing, newest first.
type ListContactsResponse struct {
	Success  bool             `json:"success" example:"true"`
	Contacts []domain.Contact `json:"contacts"`
}

// GetContactResponse wraps a single contact record.
type GetContactResponse struct {
	Success bool            `json:"success" example:"true"`
	Contact *domain.Contact `json:"contact"`
}

//
// Handlers
//

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit a consultation request
// @Description Validates the submission, persists it, and queues the admin alert and customer confirmation emails.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       body  body  services.SubmissionInput  true  "Contact form payload"
//
// @Success     200  {object}  handlers.SubmitContactResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing field or invalid email"
// @Failure     500  {object}  handlers.ErrorResponse  "Persistence failure"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	var in services.SubmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, services.MsgInvalidPayload)
		return
	}

	contact, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			fail(c, http.StatusBadRequest, services.MsgMissingFields)
		case errors.Is(err, services.ErrInvalidEmail):
			fail(c, http.StatusBadRequest, services.MsgInvalidEmail)
		default:
			fail(c, http.StatusInternalServerError, services.MsgSaveFailed)
		}
		return
	}

	// The submission is successful once persisted; notifications are advisory
	// and must not delay or alter this response. The dispatch context is
	// detached from the request so client disconnects cannot cancel sends.
	go func(persisted *domain.Contact) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		h.svc.Notify(ctx, persisted)
	}(contact)

	ok(c, http.StatusOK, SubmitContactResponse{
		Success:   true,
		Message:   services.MsgReceived,
		ContactID: contact.ID,
	})
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact submissions
// @Description Returns every submission, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Contacts
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"contacts:3:1736281200\")
//
// @Success     200  {object} handlers.ListContactsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort; only the durable store can answer it).
	var db *gorm.DB
	if svc, ok := h.svc.(*services.ContactService); ok {
		if store, ok := svc.Store.(*services.DBStore); ok {
			db = store.DB
		}
	}
	if db != nil {
		count, maxTS, err := repo.ContactsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"contacts:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.svc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, services.MsgListFailed)
		return
	}

	// Return [] not null for empty listings.
	if items == nil {
		items = []domain.Contact{}
	}
	ok(c, http.StatusOK, ListContactsResponse{Success: true, Contacts: items})
}

// GetContact godoc
// @ID          getContact
// @Summary     Fetch one contact submission
// @Description Returns the submission with the given id, or 404 when it does not exist.
// @Tags        Contacts
// @Produce     json
//
// @Param       id  path  integer  true  "Contact ID"  example(42)
//
// @Success     200  {object} handlers.GetContactResponse
// @Failure     404  {object} handlers.ErrorResponse "Contact not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /contacts/{id} [get]
func (h *Handlers) GetContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a record.
		fail(c, http.StatusNotFound, services.MsgNotFound)
		return
	}

	contact, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, services.MsgNotFound)
			return
		}
		fail(c, http.StatusInternalServerError, services.MsgGetFailed)
		return
	}

	ok(c, http.StatusOK, GetContactResponse{Success: true, Contact: contact})
}
