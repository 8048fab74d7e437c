// Health HTTP handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigagency/go-contact-backend/internal/services"
)

// HealthResponse reports liveness plus whether outbound mail is configured.
type HealthResponse struct {
	Success         bool   `json:"success" example:"true"`
	Message         string `json:"message" example:"Server is running"`
	Timestamp       string `json:"timestamp" example:"2025-01-07T19:00:00Z"`
	EmailConfigured bool   `json:"emailConfigured" example:"false"`
}

// Health godoc
// @ID          health
// @Summary     Health check
// @Description Reports liveness, the current time, and whether email notifications are configured.
// @Tags        Health
// @Produce     json
//
// @Success     200  {object} handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{
		Success:         true,
		Message:         services.MsgServerRunning,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		EmailConfigured: h.mailEnabled,
	})
}
