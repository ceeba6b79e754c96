package api

import (
	"net/http"
	"time"

	respond "github.com/rs82696/Memeber-qa-Service/internal/api/respond"
	"github.com/rs82696/Memeber-qa-Service/internal/services"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	svc *services.QAService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(svc *services.QAService) *HealthHandler { return &HealthHandler{svc: svc} }

// BindServiceHealth allows run.go to inject the service health function.
var serviceIsHealthy func() bool = func() bool { return false }

func BindServiceHealth(f func() bool) { serviceIsHealthy = f }

// BindComponentHealth allows run.go to inject per-dependency probes.
var componentHealth func() map[string]bool = func() map[string]bool { return nil }

func BindComponentHealth(f func() map[string]bool) { componentHealth = f }

// CheckHealth handles GET /health
// Always returns 200; body reports healthy/unhealthy. 500 indicates handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if serviceIsHealthy() {
		status = "healthy"
	}
	response := map[string]interface{}{
		"status":         status,
		"messagesLoaded": 0,
		"members":        0,
		"timestamp":      time.Now().Format(time.RFC3339),
	}
	if info, err := h.svc.Status(); err == nil {
		response["messagesLoaded"] = info.Messages
		response["members"] = info.Members
		response["loadedAt"] = info.LoadedAt.Format(time.RFC3339)
	}
	if comps := componentHealth(); comps != nil {
		response["components"] = comps
	}
	respond.WriteJSON(w, http.StatusOK, response)
}
