// Contact listing function handler.
package funcs

import (
	"net/http"

	"github.com/gigagency/go-contact-backend/internal/domain"
	"github.com/gigagency/go-contact-backend/internal/services"
)

// contactsResponse wraps the listing. Message is present only in degraded
// deployments where the store retains nothing.
type contactsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Contacts []domain.Contact `json:"contacts"`
}

// Contacts returns the listing handler: GET only (plus preflight).
func Contacts(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w, "GET, OPTIONS")
		if preflight(w, r) {
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}

		items, err := deps.Svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody{Success: false, Message: services.MsgListFailed})
			return
		}
		if items == nil {
			items = []domain.Contact{}
		}

		writeJSON(w, http.StatusOK, contactsResponse{
			Success:  true,
			Message:  deps.Notice,
			Contacts: items,
		})
	}
}
