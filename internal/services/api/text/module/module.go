// Package module wires the text endpoints into the API using modkit
package module

import (
	modkit "linguaforge/internal/modkit"
	"linguaforge/internal/modkit/httpkit"
	str "linguaforge/internal/platform/strings"
	texthttp "linguaforge/internal/services/api/text/http"
	textsvc "linguaforge/internal/services/text/service"
)

// Module implements the text module
type Module struct {
	b   modkit.Built
	svc textsvc.Service
}

// New constructs the text module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("text"), modkit.WithPrefix("/text")}, opts...)...)

	log := deps.Named(str.Or(b.Name, "text")).Log
	return &Module{b: b, svc: textsvc.New(&log)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		texthttp.Register(rr, m.svc, m.b.Body())
	})
}

// Ports exposes the text service to other modules
func (m *Module) Ports() any { return Ports{Text: m.svc, Catalog: m.svc} }

// Name returns the module name
func (m *Module) Name() string { return str.Or(m.b.Name, "text") }
