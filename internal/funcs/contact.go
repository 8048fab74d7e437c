// Contact submission function handler.
package funcs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gigagency/go-contact-backend/internal/services"
)

// contactResponse confirms an accepted submission.
type contactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID int64  `json:"contactId"`
}

// Contact returns the submission handler: POST only (plus preflight).
//
// The workflow (validate, insert, notify) matches the persistent server,
// except that both notification sends are awaited (errors still swallowed)
// before the response is written, since a function invocation may be frozen
// the moment it returns.
func Contact(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w, "POST, OPTIONS")
		if preflight(w, r) {
			return
		}
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}

		var in services.SubmissionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Success: false, Message: services.MsgInvalidPayload})
			return
		}

		contact, err := deps.Svc.Submit(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeJSON(w, http.StatusBadRequest, errorBody{Success: false, Message: services.MsgMissingFields})
			case errors.Is(err, services.ErrInvalidEmail):
				writeJSON(w, http.StatusBadRequest, errorBody{Success: false, Message: services.MsgInvalidEmail})
			default:
				log.Error().Err(err).Msg("contact insert failed")
				writeJSON(w, http.StatusInternalServerError, errorBody{Success: false, Message: services.MsgSaveFailed})
			}
			return
		}

		// Await-and-swallow: success was decided at persistence time.
		deps.Svc.Notify(r.Context(), contact)

		writeJSON(w, http.StatusOK, contactResponse{
			Success:   true,
			Message:   services.MsgReceived,
			ContactID: contact.ID,
		})
	}
}
