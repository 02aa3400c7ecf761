// Package monitor tracks which read sources are currently served from
// fallback data and mirrors that into a gRPC health server.
package monitor

import (
	"sort"
	"sync"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Source names reported by the loaders.
const (
	SourceCatalog = "catalog"
	SourceRates   = "rates"
)

// SourceStatus is the last reported state of one source.
type SourceStatus struct {
	Source    string    `json:"source"`
	Degraded  bool      `json:"degraded"`
	Reason    string    `json:"reason,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reporter is what loaders need from the monitor.
type Reporter interface {
	ReportHealthy(source string)
	ReportDegraded(source string, reason error)
}

// DataHealth is a Reporter backed by a gRPC health server. Every source is
// registered as a health service name; degraded maps to NOT_SERVING. The
// overall ("") status stays SERVING since fallback data is still served.
type DataHealth struct {
	mu      sync.RWMutex
	sources map[string]SourceStatus
	server  *health.Server
	now     func() time.Time
}

func NewDataHealth() *DataHealth {
	h := &DataHealth{
		sources: make(map[string]SourceStatus),
		server:  health.NewServer(),
		now:     time.Now,
	}
	h.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return h
}

// Server returns the health server to register on a grpc.Server.
func (h *DataHealth) Server() *health.Server {
	return h.server
}

func (h *DataHealth) ReportHealthy(source string) {
	h.set(SourceStatus{Source: source})
}

func (h *DataHealth) ReportDegraded(source string, reason error) {
	st := SourceStatus{Source: source, Degraded: true}
	if reason != nil {
		st.Reason = reason.Error()
	}
	h.set(st)
}

func (h *DataHealth) set(st SourceStatus) {
	st.UpdatedAt = h.now()

	h.mu.Lock()
	h.sources[st.Source] = st
	h.mu.Unlock()

	status := healthpb.HealthCheckResponse_SERVING
	if st.Degraded {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus(st.Source, status)
}

// Snapshot returns every reported source sorted by name.
func (h *DataHealth) Snapshot() []SourceStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]SourceStatus, 0, len(h.sources))
	for _, st := range h.sources {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

// Degraded reports whether any source is currently on fallback data.
func (h *DataHealth) Degraded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, st := range h.sources {
		if st.Degraded {
			return true
		}
	}
	return false
}

// Shutdown flips every service to NOT_SERVING.
func (h *DataHealth) Shutdown() {
	h.server.Shutdown()
}

// Nop discards reports.
type Nop struct{}

func (Nop) ReportHealthy(string)         {}
func (Nop) ReportDegraded(string, error) {}
