package modkit

import (
	phttp "linguaforge/internal/platform/net/http"
)

// Module is the common surface for API modules that mount routes and expose ports
// keep this tiny so text, languages and meta stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any

	// Name returns the module name used in logs and the registry
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
