// Package funcs provides the stateless deployment shape of the contact
// intake backend: three independently invokable net/http handlers, one per
// endpoint, mirroring a function-per-route platform.
//
// Unlike the persistent server, there is no shared router or middleware
// chain. Each handler is fully self-contained: it emits its own CORS
// headers on every response, answers the OPTIONS preflight probe before any
// method evaluation, and enforces its own method policy. Handlers close over
// an explicit Deps value; there is no ambient global state.
//
// By default this shape runs without durable storage (services.NullStore,
// timestamp-derived ids) and awaits both notification sends, swallowing
// their errors, before responding. Wiring a DBStore into Deps upgrades it
// to a durable deployment without touching handler code.
package funcs

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gigagency/go-contact-backend/internal/services"
)

// Deps carries the collaborators a function handler needs. Svc must be
// non-nil; Notice, when set, is included in the contacts listing response to
// explain degraded (non-durable) storage.
type Deps struct {
	Svc         *services.ContactService
	MailEnabled bool
	Notice      string
}

// NewDeps composes the default stateless deployment: a NullStore with
// timestamp ids, the given notifier, and the null store's explanatory notice.
func NewDeps(notifier services.Notifier) Deps {
	store := services.NewNullStore()
	return Deps{
		Svc:         &services.ContactService{Store: store, Notifier: notifier},
		MailEnabled: notifier.Enabled(),
		Notice:      store.Notice(),
	}
}

// errorBody is the JSON error envelope shared by all function handlers.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeCORS stamps the permissive cross-origin posture every function
// response carries. allowMethods is scoped per endpoint.
func writeCORS(w http.ResponseWriter, allowMethods string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", allowMethods)
}

// writeJSON serializes v with the given status. Encoding failures are logged;
// by that point the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// preflight answers the OPTIONS probe with 200 and an empty body. It returns
// true when the request was a preflight and has been handled.
func preflight(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	w.WriteHeader(http.StatusOK)
	return true
}

// methodNotAllowed writes the 405 envelope.
func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Success: false, Message: services.MsgMethodNotAllowed})
}
