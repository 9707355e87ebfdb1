package modkit

import (
	"net/http"

	phttp "linguaforge/internal/platform/net/http"
	"linguaforge/internal/platform/net/middleware"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	bodyLimit int64
	auth      middleware.AuthPort
	register  func(phttp.Router)
}

// WithName sets a module name used in logs and registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects cross module ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithBodyLimit caps JSON request bodies for the module's endpoints
func WithBodyLimit(n int64) Option {
	return func(c *buildCfg) { c.bodyLimit = n }
}

// WithAuth puts the module's routes behind the given port
func WithAuth(p middleware.AuthPort) Option {
	return func(c *buildCfg) { c.auth = p }
}

// WithRegister adds endpoints after the module's own
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}
