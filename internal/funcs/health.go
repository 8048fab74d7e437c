// Health check function handler.
package funcs

import (
	"net/http"
	"time"

	"github.com/gigagency/go-contact-backend/internal/services"
)

// healthResponse reports liveness plus whether outbound mail is configured.
type healthResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Timestamp       string `json:"timestamp"`
	EmailConfigured bool   `json:"emailConfigured"`
}

// Health returns the health handler: GET only (plus preflight).
func Health(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w, "GET, OPTIONS")
		if preflight(w, r) {
			return
		}
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Success:         true,
			Message:         services.MsgServerRunning,
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			EmailConfigured: deps.MailEnabled,
		})
	}
}
