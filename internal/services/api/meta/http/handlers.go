// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/version"
	"linguaforge/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Uptime reports time since StartedAt, clamped at zero
	Uptime func(now time.Time) time.Duration
	// Modules lists mounted module names, read on each call
	Modules func() []string
	// Now is a seam for tests
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Uptime == nil {
		d.Uptime = func(time.Time) time.Duration { return 0 }
	}
	if d.Modules == nil {
		d.Modules = func() []string { return nil }
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Status    string `json:"status"`
	Languages int    `json:"languages"`
	Now       string `json:"now"`
}

// ServiceResponse describes the running service
type ServiceResponse struct {
	Service   string   `json:"service"`
	StartedAt string   `json:"started_at"`
	Uptime    int64    `json:"uptime_seconds"`
	Modules   []string `json:"modules"`
}

// GET /meta/health
// the tables are compiled in, so a loaded registry means ready
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:        true,
		Status:    "ok",
		Languages: registry.Len(),
		Now:       h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GET /meta/version
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// GET /meta/service
func (h *handlers) service(_ *http.Request) (any, error) {
	up := h.deps.Uptime(h.deps.Now())
	mods := h.deps.Modules()
	if mods == nil {
		mods = []string{}
	}
	return ServiceResponse{
		Service:   h.deps.ServiceName,
		StartedAt: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:    int64(up / time.Second),
		Modules:   mods,
	}, nil
}
