package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"creditclear/internal/core/version"

	docs "creditclear/internal/services/api/docs"
)

// docReader is a seam so tests can inject a broken doc
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const errorRef = "#/components/schemas/ErrorResponse"

// serveDocJSON serves the generated spec lifted to OAS3 with the shared error responses filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		liftOAS3(spec, "/api/v1")
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
		child(child(spec, "components"), "schemas")["ErrorResponse"] = errorSchema

		// every operation can fail, only body taking ones can be malformed
		eachOperation(spec, func(method string, responses map[string]any) {
			setDefault(responses, "500", "Internal Server Error", "panic", "panic recovered")
			if method == http.MethodPost {
				setDefault(responses, "400", "Bad Request", "validation", "credit_score must be at least 300")
			}
		})

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "string"},
		"error":       map[string]any{"type": "string"},
		"details":     map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status", "error"},
}

// liftOAS3 rewrites swagger 2 and 3.1 docs to 3.0.3, the version the ui renders
func liftOAS3(spec map[string]any, server string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": server}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func eachOperation(spec map[string]any, fn func(method string, responses map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for method, op := range node {
			if op, ok := op.(map[string]any); ok {
				fn(strings.ToUpper(method), child(op, "responses"))
			}
		}
	}
}

func setDefault(responses map[string]any, status, description, code, example string) {
	if _, ok := responses[status]; ok {
		return
	}
	responses[status] = map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": errorRef},
				"example": map[string]any{"status": description, "code": code, "error": example},
			},
		},
	}
}
