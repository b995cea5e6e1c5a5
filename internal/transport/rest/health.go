package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// stimulusCatalog reports whether the catalog fell back to the built-in stub.
type stimulusCatalog interface {
	Degraded() bool
	Len() int
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	catalog stimulusCatalog
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, catalog stimulusCatalog, version string) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Images  int    `json:"images,omitempty"`
}

// Live always returns 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 503 until the database answers and the catalog can build sessions.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports each component with the build version. A stub catalog is
// degraded, not down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := statusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: statusDown}
		overall = statusDown
	} else {
		components["database"] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	images := h.catalog.Len()
	switch {
	case images == 0:
		components["catalog"] = CompStatus{Status: statusDown}
		overall = statusDown
	case h.catalog.Degraded():
		components["catalog"] = CompStatus{Status: statusDegraded, Images: images}
	default:
		components["catalog"] = CompStatus{Status: statusOK, Images: images}
	}

	return overall, components
}

func httpStatus(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
