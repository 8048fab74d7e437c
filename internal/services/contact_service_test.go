package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/repo"
)

// fakeStore records Insert calls and serves canned results.
type fakeStore struct {
	mu        sync.Mutex
	inserted  []*domain.Contact
	insertErr error
	list      []domain.Contact
	listErr   error
	get       *domain.Contact
	getErr    error
}

func (f *fakeStore) Insert(_ context.Context, c *domain.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	c.ID = int64(len(f.inserted) + 1)
	c.CreatedAt = time.Now().UTC()
	f.inserted = append(f.inserted, c)
	return nil
}

func (f *fakeStore) ListAll(context.Context) ([]domain.Contact, error) { return f.list, f.listErr }

func (f *fakeStore) GetByID(context.Context, int64) (*domain.Contact, error) {
	return f.get, f.getErr
}

// fakeNotifier records which sends happened and fails on demand.
type fakeNotifier struct {
	mu          sync.Mutex
	adminCalls  int
	custCalls   int
	adminErr    error
	custErr     error
	lastAdmin   *domain.Contact
	lastCust    string
	enabledFlag bool
}

func (f *fakeNotifier) Enabled() bool { return f.enabledFlag }

func (f *fakeNotifier) NotifyAdmin(_ context.Context, c *domain.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adminCalls++
	f.lastAdmin = c
	return f.adminErr
}

func (f *fakeNotifier) NotifyCustomer(_ context.Context, email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.custCalls++
	f.lastCust = email
	return f.custErr
}

func TestSubmit_ValidationShortCircuits(t *testing.T) {
	store := &fakeStore{}
	nf := &fakeNotifier{}
	svc := &ContactService{Store: store, Notifier: nf}

	in := validInput()
	in.Email = "broken"
	c, err := svc.Submit(context.Background(), in)
	if c != nil || !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got c=%v err=%v", c, err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("store touched on invalid input")
	}
	if nf.adminCalls != 0 || nf.custCalls != 0 {
		t.Fatalf("notifier touched on invalid input")
	}
}

func TestSubmit_PersistsAndReturnsContact(t *testing.T) {
	store := &fakeStore{}
	svc := &ContactService{Store: store, Notifier: &fakeNotifier{}}

	c, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.ID == 0 || c.CreatedAt.IsZero() {
		t.Fatalf("contact missing id or timestamp: %+v", c)
	}
	if c.Name != "Jane Doe" || c.Service != "auto insurance" {
		t.Fatalf("unexpected contact fields: %+v", c)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.inserted))
	}
}

func TestSubmit_StoreFailure_NoID(t *testing.T) {
	boom := errors.New("disk full")
	store := &fakeStore{insertErr: boom}
	nf := &fakeNotifier{}
	svc := &ContactService{Store: store, Notifier: nf}

	c, err := svc.Submit(context.Background(), validInput())
	if c != nil || !errors.Is(err, boom) {
		t.Fatalf("expected store error, got c=%v err=%v", c, err)
	}
	if nf.adminCalls != 0 || nf.custCalls != 0 {
		t.Fatalf("notifier must not run when persistence failed")
	}
}

func TestSubmit_DoesNotNotify(t *testing.T) {
	nf := &fakeNotifier{}
	svc := &ContactService{Store: &fakeStore{}, Notifier: nf}

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if nf.adminCalls != 0 || nf.custCalls != 0 {
		t.Fatalf("Submit must leave notification to the caller")
	}
}

func TestNotify_BothSendsRun(t *testing.T) {
	nf := &fakeNotifier{}
	svc := &ContactService{Store: &fakeStore{}, Notifier: nf}

	c := &domain.Contact{ID: 7, Name: "Jane", Email: "jane@example.com"}
	svc.Notify(context.Background(), c)

	if nf.adminCalls != 1 || nf.custCalls != 1 {
		t.Fatalf("expected one send each, got admin=%d cust=%d", nf.adminCalls, nf.custCalls)
	}
	if nf.lastAdmin != c || nf.lastCust != "jane@example.com" {
		t.Fatalf("wrong payloads: admin=%v cust=%q", nf.lastAdmin, nf.lastCust)
	}
}

func TestNotify_FailuresAreIndependentAndSwallowed(t *testing.T) {
	nf := &fakeNotifier{adminErr: errors.New("smtp 550")}
	svc := &ContactService{Store: &fakeStore{}, Notifier: nf}

	// Must not panic or return anything; the customer send still runs.
	svc.Notify(context.Background(), &domain.Contact{ID: 8, Email: "x@example.com"})

	if nf.custCalls != 1 {
		t.Fatalf("customer send skipped after admin failure")
	}
}

func TestListAndGet_Proxied(t *testing.T) {
	want := []domain.Contact{{ID: 2}, {ID: 1}}
	store := &fakeStore{list: want, getErr: repo.ErrNotFound}
	svc := &ContactService{Store: store, Notifier: &fakeNotifier{}}

	got, err := svc.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List = %v, %v", got, err)
	}
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("Get miss: expected ErrNotFound, got %v", err)
	}
}
