package http_handlers

import (
	"net/http"
	"time"

	"github.com/cramdesk/auth-service/internal/transport/http/dto"
	"github.com/cramdesk/auth-service/internal/transport/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.HealthData{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
