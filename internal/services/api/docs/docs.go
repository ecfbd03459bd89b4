// Package docs holds the swagger spec served by swaggerkit
// regenerate with swag init -g cmd/creditclear-api/main.go -o internal/services/api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "basePath": "{{.BasePath}}",
  "paths": {
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/meta/model": {"get": {"tags": ["Meta"], "summary": "Scoring model and build", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/scoring/features": {"get": {"tags": ["Scoring"], "summary": "List features", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/scoring/features/groups": {"get": {"tags": ["Scoring"], "summary": "List feature groups", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/scoring/features/sample": {"get": {"tags": ["Scoring"], "summary": "Draw a sample record", "produces": ["application/json"], "parameters": [{"name": "seed", "in": "query", "type": "integer"}], "responses": {"200": {"description": "ok"}, "422": {"description": "bad seed"}}}},
    "/scoring/features/{name}": {"get": {"tags": ["Scoring"], "summary": "Get one feature", "produces": ["application/json"], "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "ok"}, "404": {"description": "unknown feature"}}}},
    "/scoring/features/{name}/explanation": {"get": {"tags": ["Scoring"], "summary": "Explain one feature", "produces": ["application/json"], "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "ok"}, "404": {"description": "unknown feature"}}}},
    "/scoring/template": {"get": {"tags": ["Scoring"], "summary": "Download the batch template", "produces": ["text/csv"], "responses": {"200": {"description": "csv header line"}}}},
    "/scoring/predict": {"post": {"tags": ["Scoring"], "summary": "Score one partner", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "ok"}, "400": {"description": "invalid record"}}}},
    "/scoring/batch": {"post": {"tags": ["Scoring"], "summary": "Score a CSV batch", "consumes": ["text/csv", "application/json"], "produces": ["application/json"], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "string"}}], "responses": {"200": {"description": "ok"}, "422": {"description": "missing header or rows, or body too large"}}}},
    "/scoring/whatif": {"post": {"tags": ["Scoring"], "summary": "Compare a record against an edited copy", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "ok"}, "400": {"description": "invalid record"}}}},
    "/scoring/compare": {"post": {"tags": ["Scoring"], "summary": "Compare two partner scenarios", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "ok"}, "400": {"description": "invalid record"}}}},
    "/scoring/model": {"get": {"tags": ["Scoring"], "summary": "Model card", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/scoring/retrain": {"post": {"tags": ["Scoring"], "summary": "Retrain the model", "produces": ["application/json"], "responses": {"200": {"description": "ok"}}}},
    "/scoring/predictions": {"get": {"tags": ["Scoring"], "summary": "Recently recorded predictions", "produces": ["application/json"], "parameters": [{"name": "partner_id", "in": "query", "type": "string"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "ok"}, "503": {"description": "history disabled"}}}},
    "/scoring/stats/categories": {"get": {"tags": ["Scoring"], "summary": "Predictions per category", "produces": ["application/json"], "parameters": [{"name": "days", "in": "query", "type": "integer"}], "responses": {"200": {"description": "ok"}, "503": {"description": "analytics disabled"}}}}
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "creditclear API",
	Description:      "Credit category scoring for gig economy partners",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
