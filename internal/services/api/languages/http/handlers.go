// Package http provides the language registry endpoints
package http

import (
	stdhttp "net/http"

	"linguaforge/internal/modkit/httpkit"
	"linguaforge/internal/services/text/domain"
)

// Register mounts the registry endpoints on the given router
func Register(r httpkit.Router, c domain.CatalogPort) {
	h := &handlers{cat: c}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/scripts", h.scripts)
	httpkit.Get(r, "/families", h.families)
	httpkit.Get(r, "/{code}", h.lookup)
}

type handlers struct{ cat domain.CatalogPort }

// GET /languages[?script=S][&family=F]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.cat.Languages(r.Context(), domain.LanguagesInput{
		Script: httpkit.Query(r, "script"),
		Family: httpkit.Query(r, "family"),
	})
}

// GET /languages/scripts
func (h *handlers) scripts(r *stdhttp.Request) (any, error) {
	return h.cat.Scripts(r.Context())
}

// GET /languages/families
func (h *handlers) families(r *stdhttp.Request) (any, error) {
	return h.cat.Families(r.Context())
}

// GET /languages/{code}, unknown codes are 404 with no English fallback
func (h *handlers) lookup(r *stdhttp.Request) (any, error) {
	return h.cat.Language(r.Context(), httpkit.Param(r, "code"))
}
