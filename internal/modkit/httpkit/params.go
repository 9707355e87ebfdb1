package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Param returns a trimmed route parameter such as {code}
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// Query returns a trimmed query string value
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
