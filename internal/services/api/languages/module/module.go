// Package module wires the language registry endpoints into the API
package module

import (
	modkit "linguaforge/internal/modkit"
	"linguaforge/internal/modkit/httpkit"
	str "linguaforge/internal/platform/strings"
	langhttp "linguaforge/internal/services/api/languages/http"
	"linguaforge/internal/services/text/domain"
	textsvc "linguaforge/internal/services/text/service"
)

// Ports is what the languages module consumes from the text module
type Ports struct {
	Catalog domain.CatalogPort
}

// Module implements the languages module
type Module struct {
	b   modkit.Built
	cat domain.CatalogPort
}

// New constructs the languages module. Without injected ports it builds its own catalog
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("languages"), modkit.WithPrefix("/languages")}, opts...)...)

	var cat domain.CatalogPort
	if p, ok := b.Ports.(Ports); ok && p.Catalog != nil {
		cat = p.Catalog
	} else {
		log := deps.Named(str.Or(b.Name, "languages")).Log
		cat = textsvc.New(&log)
	}
	return &Module{b: b, cat: cat}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		langhttp.Register(rr, m.cat)
	})
}

// Ports exposes the catalog
func (m *Module) Ports() any { return Ports{Catalog: m.cat} }

// Name returns the module name
func (m *Module) Name() string { return str.Or(m.b.Name, "languages") }
