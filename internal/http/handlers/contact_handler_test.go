package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/repo"
	"github.com/gigagency/go-contact-backend/internal/services"
)

// fakeSvc implements the ContactService interface with canned results.
type fakeSvc struct {
	mu        sync.Mutex
	submitRes *domain.Contact
	submitErr error
	listRes   []domain.Contact
	listErr   error
	getRes    *domain.Contact
	getErr    error
	notified  chan *domain.Contact
}

func newFakeSvc() *fakeSvc {
	return &fakeSvc{notified: make(chan *domain.Contact, 1)}
}

func (f *fakeSvc) Submit(context.Context, services.SubmissionInput) (*domain.Contact, error) {
	return f.submitRes, f.submitErr
}

func (f *fakeSvc) List(context.Context) ([]domain.Contact, error) { return f.listRes, f.listErr }

func (f *fakeSvc) Get(context.Context, int64) (*domain.Contact, error) { return f.getRes, f.getErr }

func (f *fakeSvc) Notify(_ context.Context, c *domain.Contact) {
	select {
	case f.notified <- c:
	default:
	}
}

func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.POST("/contact", h.SubmitContact)
	api.GET("/contacts", h.ListContacts)
	api.GET("/contacts/:id", h.GetContact)
	api.GET("/health", h.Health)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestSubmitContact_OK_AndNotifies(t *testing.T) {
	svc := newFakeSvc()
	svc.submitRes = &domain.Contact{ID: 42, Name: "Jane", Email: "jane@example.com"}
	r := newTestRouter(New(svc, true))

	w, body := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","phone":"1","service":"auto"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}
	if body["success"] != true || body["contactId"] != float64(42) {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["message"] != services.MsgReceived {
		t.Fatalf("message = %v", body["message"])
	}

	// Notification is detached; give it a moment.
	select {
	case got := <-svc.notified:
		if got.ID != 42 {
			t.Fatalf("notified wrong contact: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification never dispatched")
	}
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	r := newTestRouter(New(newFakeSvc(), false))
	w, body := doJSON(t, r, http.MethodPost, "/api/contact", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgInvalidPayload {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"missing fields", services.ErrMissingFields, services.MsgMissingFields},
		{"invalid email", services.ErrInvalidEmail, services.MsgInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newFakeSvc()
			svc.submitErr = tc.err
			r := newTestRouter(New(svc, false))

			w, body := doJSON(t, r, http.MethodPost, "/api/contact", `{}`)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			if body["success"] != false || body["message"] != tc.wantMsg {
				t.Fatalf("unexpected body: %v", body)
			}
			select {
			case <-svc.notified:
				t.Fatalf("rejected submission must not notify")
			case <-time.After(50 * time.Millisecond):
			}
		})
	}
}

func TestSubmitContact_StoreFailure_GenericMessage(t *testing.T) {
	svc := newFakeSvc()
	svc.submitErr = errors.New("sqlite: database is locked")
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodPost, "/api/contact", `{}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgSaveFailed {
		t.Fatalf("message = %v", body["message"])
	}
	// Internal detail must never leak to the client.
	if strings.Contains(w.Body.String(), "sqlite") {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
}

func TestListContacts_OK(t *testing.T) {
	svc := newFakeSvc()
	svc.listRes = []domain.Contact{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	items, _ := body["contacts"].([]any)
	if body["success"] != true || len(items) != 2 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListContacts_NilBecomesEmptyArray(t *testing.T) {
	r := newTestRouter(New(newFakeSvc(), false))

	w, _ := doJSON(t, r, http.MethodGet, "/api/contacts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"contacts":[]`) {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestListContacts_Error(t *testing.T) {
	svc := newFakeSvc()
	svc.listErr = errors.New("boom")
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgListFailed {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestGetContact_OK(t *testing.T) {
	svc := newFakeSvc()
	svc.getRes = &domain.Contact{ID: 7, Name: "Jane"}
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	contact, _ := body["contact"].(map[string]any)
	if contact == nil || contact["name"] != "Jane" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetContact_NotFound(t *testing.T) {
	svc := newFakeSvc()
	svc.getErr = repo.ErrNotFound
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgNotFound {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestGetContact_NonNumericID_NotFound(t *testing.T) {
	r := newTestRouter(New(newFakeSvc(), false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/abc", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgNotFound {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestGetContact_StoreError(t *testing.T) {
	svc := newFakeSvc()
	svc.getErr = errors.New("boom")
	r := newTestRouter(New(svc, false))

	w, body := doJSON(t, r, http.MethodGet, "/api/contacts/7", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != services.MsgGetFailed {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestHealth_ReportsEmailConfigured(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := newTestRouter(New(newFakeSvc(), enabled))

		w, body := doJSON(t, r, http.MethodGet, "/api/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if body["success"] != true || body["message"] != services.MsgServerRunning {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["emailConfigured"] != enabled {
			t.Fatalf("emailConfigured = %v; want %v", body["emailConfigured"], enabled)
		}
		if _, err := time.Parse(time.RFC3339, body["timestamp"].(string)); err != nil {
			t.Fatalf("bad timestamp %v: %v", body["timestamp"], err)
		}
	}
}
