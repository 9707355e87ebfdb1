// Package swaggerkit serves the OpenAPI document and Swagger UI
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"linguaforge/internal/platform/config"
	phttp "linguaforge/internal/platform/net/http"
)

// DocsPath is where the UI is mounted
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, cfg config.Conf, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON(cfg))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
