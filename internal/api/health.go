package api

import (
	"database/sql"
	"log/slog"
	"net/http"
)

// HealthHandler reports whether the database is reachable.
type HealthHandler struct {
	DB *sql.DB
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
