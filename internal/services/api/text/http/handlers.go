// Package http provides the text endpoints
package http

import (
	stdhttp "net/http"

	"linguaforge/internal/modkit/httpkit"
	"linguaforge/internal/services/text/domain"
)

// Register mounts the text endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, body httpkit.BodyOptions) {
	h := &handlers{svc: s}

	httpkit.PostJSONWith(r, "/script", body, h.script)
	httpkit.PostJSONWith(r, "/detect", body, h.detect)
	httpkit.PostJSONWith(r, "/tokenize", body, h.tokenize)
	httpkit.PostJSONWith(r, "/transliterate", body, h.transliterate)
	httpkit.PostJSONWith(r, "/normalize", body, h.normalize)
}

type handlers struct{ svc domain.ServicePort }

// POST /text/script
func (h *handlers) script(r *stdhttp.Request, in domain.ScriptInput) (any, error) {
	return h.svc.Script(r.Context(), in)
}

// POST /text/detect, top_k 1..100 and defaults to 1
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// POST /text/tokenize
func (h *handlers) tokenize(r *stdhttp.Request, in domain.TokenizeInput) (any, error) {
	return h.svc.Tokenize(r.Context(), in)
}

// POST /text/transliterate, unsupported pairs answer 422
func (h *handlers) transliterate(r *stdhttp.Request, in domain.TransliterateInput) (any, error) {
	return h.svc.Transliterate(r.Context(), in)
}

// POST /text/normalize
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	return h.svc.Normalize(r.Context(), in)
}
