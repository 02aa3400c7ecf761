package http

import (
	"net/http"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
)

// HealthReporter is satisfied by *monitor.DataHealth.
type HealthReporter interface {
	Snapshot() []monitor.SourceStatus
	Degraded() bool
}

type HealthHandler struct {
	health  HealthReporter
	service string
}

func NewHealthHandler(health HealthReporter, service string) *HealthHandler {
	return &HealthHandler{health: health, service: service}
}

type HealthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Sources []monitor.SourceStatus `json:"sources"`
}

// Health handles GET /health. A degraded source still answers 200: the
// storefront keeps serving fallback data.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.health.Degraded() {
		status = "degraded"
	}
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  status,
		Service: h.service,
		Sources: h.health.Snapshot(),
	})
}
