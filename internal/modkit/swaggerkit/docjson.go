package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/swaggo/swag/v2"

	"linguaforge/internal/core/version"
	"linguaforge/internal/platform/config"
)

//go:embed openapi.json
var openapiDoc string

// SwaggerInfo registers the embedded document with swag. Title and version are
// template fields, delimited with << >> since the document is plain JSON
var SwaggerInfo = &swag.Spec{
	Version:          version.Info("").Version,
	Title:            "linguaforge API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  openapiDoc,
	LeftDelim:        "<<",
	RightDelim:       ">>",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON without patching swag
var docReader = func() string {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return ""
	}
	return doc
}

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

func resetMutators() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// buildSpec parses the embedded document and applies the shared tweaks
func buildSpec(cfg config.Conf) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		return nil, err
	}

	ensureServers(spec, "/api/v1")

	if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}
	}

	ensureErrorResponseDefinition(spec)
	addDefaultError(spec)
	addDefaultBadRequest(spec)

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}
	return spec, nil
}

// serveDocJSON serves the OpenAPI JSON
func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := buildSpec(cfg)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// APIKeySecurity declares the X-API-Key scheme and requires it on every operation
func APIKeySecurity(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemes, ok := comps["securitySchemes"].(map[string]any)
	if !ok {
		schemes = map[string]any{}
		comps["securitySchemes"] = schemes
	}
	schemes["ApiKeyAuth"] = map[string]any{"type": "apiKey", "in": "header", "name": "X-API-Key"}
	spec["security"] = []any{map[string]any{"ApiKeyAuth": []any{}}}
}

// ensureServers makes sure the spec is OAS3 and has a servers array
// swagger http ui can't render 3.1 yet, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); ok {
		if strings.HasPrefix(v, "3.1") {
			spec["openapi"] = "3.0.3"
		}
	} else {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorContent(example map[string]any) map[string]any {
	return map[string]any{
		"application/json": map[string]any{
			"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": example,
		},
	}
}

// eachOperation calls fn with the responses map of every operation
func eachOperation(spec map[string]any, fn func(responses map[string]any)) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			fn(responses)
		}
	}
}

// addDefaultError injects a 500 response into every operation lacking one
func addDefaultError(spec map[string]any) {
	resp := map[string]any{
		"description": "Internal Server Error",
		"content": errorContent(map[string]any{
			"status_code": 500,
			"status":      "Internal Server Error",
			"code":        1,
			"error":       "panic recovered",
			"request_id":  "5f0c6a52-8d2e-4f0e-9d1b-2f6a0c1e7b11",
		}),
	}
	eachOperation(spec, func(responses map[string]any) {
		if _, exists := responses["500"]; !exists {
			responses["500"] = resp
		}
	})
}

// addDefaultBadRequest injects a 400 shaped like the binder's validation output
func addDefaultBadRequest(spec map[string]any) {
	resp := map[string]any{
		"description": "Bad Request",
		"content": errorContent(map[string]any{
			"status_code": 400,
			"status":      "Bad Request",
			"code":        6,
			"error":       "text is a required field",
			"field":       "text",
			"request_id":  "5f0c6a52-8d2e-4f0e-9d1b-2f6a0c1e7b11",
		}),
	}
	eachOperation(spec, func(responses map[string]any) {
		if _, exists := responses["400"]; !exists {
			responses["400"] = resp
		}
	})
}
