package http

import (
	"time"

	"creditclear/internal/core/scoring"
	"creditclear/internal/core/version"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool      `json:"ok"      example:"true"`
	Service string    `json:"service" example:"creditclear-api"`
	Started time.Time `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     time.Time `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is one backend ping, status is ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse status is ok, degraded or fail
type ReadyResponse struct {
	Status string       `json:"status" example:"degraded"`
	Checks []ReadyCheck `json:"checks"`
	Now    time.Time    `json:"now"    example:"2025-09-03T13:05:00Z"`
}

type ServiceResponse struct {
	Name    string    `json:"name"    example:"creditclear-api"`
	Started time.Time `json:"started" example:"2025-09-03T13:00:00Z"`
	// Uptime is whole seconds
	Uptime int64 `json:"uptime" example:"300"`
}

// ModelResponse is the scoring model card with the build that serves it
type ModelResponse struct {
	Model scoring.ModelInfo `json:"model"`
	Build version.BuildInfo `json:"build"`
}
