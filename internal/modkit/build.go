package modkit

import (
	"net/http"

	"linguaforge/internal/modkit/httpkit"
	"linguaforge/internal/platform/net/middleware"
	str "linguaforge/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	BodyLimit int64
	Auth      middleware.AuthPort

	// Register runs after the module's own routes, never nil
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		BodyLimit: c.bodyLimit,
		Auth:      c.auth,
		Register:  c.register,
	}
}

// Body returns JSON parsing options honoring the module body limit
func (b Built) Body() httpkit.BodyOptions {
	return httpkit.BodyOptions{MaxBytes: b.BodyLimit, DisallowUnknown: true}
}

// Mount routes the module under its prefix, applies middleware and auth,
// then calls own followed by any external register hook
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, func(sub httpkit.Router) {
		httpkit.Protected(sub, b.Auth, func(gr httpkit.Router) {
			own(gr)
			b.Register(gr)
		})
	})
}
