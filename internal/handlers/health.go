package handlers

import (
	"context"
	"net/http"
	"time"
)

// DBPinger reports database liveness.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger reports cache liveness.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the payload of the health endpoint.
// swagger:model HealthStatus
type HealthStatus struct {
	// Overall status, ok or degraded
	Status string `json:"status"`

	// Per-dependency status
	Checks map[string]string `json:"checks"`
}

// NewHealthHandler returns an HTTP handler probing the database and cache.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response "All dependencies reachable"
// @Failure 503 {object} handlers.Response "One or more dependencies down"
// @Router /health [get]
func NewHealthHandler(db DBPinger, cache CachePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := HealthStatus{Status: "ok", Checks: map[string]string{}}

		if err := db.PingContext(ctx); err != nil {
			status.Status = "degraded"
			status.Checks["postgres"] = err.Error()
		} else {
			status.Checks["postgres"] = "ok"
		}

		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				status.Status = "degraded"
				status.Checks["redis"] = err.Error()
			} else {
				status.Checks["redis"] = "ok"
			}
		}

		if status.Status != "ok" {
			writeJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "service degraded",
				Data:    status,
			})
			return
		}
		writeSuccess(w, http.StatusOK, status)
	}
}
