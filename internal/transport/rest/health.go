package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Health states reported by the probes.
const (
	healthOK       = "ok"
	healthDown     = "down"
	healthDegraded = "degraded"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Probe checks an optional dependency. A failing probe degrades /health but
// never fails readiness; only the database does that.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	probes  []Probe
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{db: db, probes: probes, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Service    string                `json:"service,omitempty"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthOK, Timestamp: h.now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.check(r.Context(), h.db.Ping)
	if db.Status != healthOK {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: healthDown, Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthOK, Timestamp: h.now()})
}

// Health reports every component. The database decides the HTTP status;
// the probes can only move an "ok" result to "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus, len(h.probes)+1)

	db := h.check(r.Context(), h.db.Ping)
	components["database"] = db
	overall := db.Status

	for _, p := range h.probes {
		st := h.check(r.Context(), p.Check)
		components[p.Name] = st
		if st.Status != healthOK && overall == healthOK {
			overall = healthDegraded
		}
	}

	status := http.StatusOK
	if overall == healthDown {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Service:    "debt-recovery",
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context, fn func(context.Context) error) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := fn(ctx); err != nil {
		return CompStatus{Status: healthDown, Error: err.Error()}
	}
	return CompStatus{Status: healthOK, Latency: time.Since(start).String()}
}
