package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/poojan019/user-management/internal/application/ports"
)

// HealthHandler serves /health with a document-store reachability check.
type HealthHandler struct {
	store ports.UserRepository
}

func NewHealthHandler(store ports.UserRepository) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Message string            `json:"message,omitempty"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]string)
	if err := h.store.Ping(ctx); err != nil {
		checks["store"] = "down: " + err.Error()
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Checks:  checks,
			Message: "one or more checks failed",
		})
		return
	}
	checks["store"] = "ok"
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Checks: checks})
}
