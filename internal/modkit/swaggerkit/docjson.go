package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"openship/internal/platform/config"
	"openship/internal/platform/logger"
)

// SpecMutator lets modules tweak the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

//go:embed openapi.json
var openapiDoc []byte

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() []byte { return openapiDoc }

// Register adds a spec mutator applied on every doc.json request
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// serveDocJSON serves the OpenAPI document with the shared error model and server url filled in
func serveDocJSON(serverURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("swaggerkit: parse openapi document")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, serverURL)

		cfg := config.New().Prefix("OPENSHIP_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "500", errorResponse(500, "Internal Server Error", 1, "panic recovered"))

		mu.RLock()
		for _, m := range mutators {
			m(spec)
		}
		mu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 and adds a servers entry when missing
// the swagger UI bundled with http-swagger cannot render 3.1
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope schema if missing
// it mirrors the runtime wire fields
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

func errorResponse(status int, text string, code int, msg string) map[string]any {
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponse walks every operation and sets resp under status when absent
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
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
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
