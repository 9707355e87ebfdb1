// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "linguaforge/internal/modkit"
	"linguaforge/internal/modkit/httpkit"
	"linguaforge/internal/modkit/module"
	str "linguaforge/internal/platform/strings"

	metahttp "linguaforge/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/version and /meta/service
const ServiceName = "linguaforge-api"

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps modkit.Deps
}

// New constructs a meta module. Meta stays open even when API keys are set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	if deps.StartedAt.IsZero() {
		deps.StartedAt = time.Now()
	}
	return &Module{b: b, deps: deps}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.deps.StartedAt,
			Uptime:      m.deps.Uptime,
			Modules:     module.Names,
		})
	})
}

// Ports implements the modkit.Module interface, meta has none
func (m *Module) Ports() any { return nil }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.Or(m.b.Name, "meta") }
