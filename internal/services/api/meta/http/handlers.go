// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"creditclear/internal/core/scoring"
	"creditclear/internal/core/version"
	"creditclear/internal/modkit/httpkit"
	perr "creditclear/internal/platform/errors"

	"golang.org/x/sync/errgroup"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// ModelPort reports the active scorer
type ModelPort interface {
	ModelInfo(stdctx.Context) (scoring.ModelInfo, error)
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// PG and CH are pinged by /ready, nil reports skipped
	PG Pinger
	CH Pinger
	// Model is optional, /model answers 503 without it
	Model ModelPort
}

// ReadyTimeout bounds all dependency pings of one /ready call
const ReadyTimeout = 2 * time.Second

var now = time.Now

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/model", h.model)
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.deps.ServiceName, Started: h.deps.StartedAt.UTC(), Now: now().UTC()}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	deps := []struct {
		name string
		p    Pinger
	}{{"pg", h.deps.PG}, {"ch", h.deps.CH}}

	checks := make([]ReadyCheck, len(deps))
	var g errgroup.Group
	for i, d := range deps {
		checks[i] = ReadyCheck{Name: d.name, Status: "skipped"}
		if d.p == nil {
			continue
		}
		g.Go(func() error {
			if err := d.p.Ping(ctx); err != nil {
				checks[i].Status, checks[i].Error = "fail", err.Error()
				return nil
			}
			checks[i].Status = "ok"
			return nil
		})
	}
	_ = g.Wait()

	return ReadyResponse{Status: overall(checks), Checks: checks, Now: now().UTC()}, nil
}

// overall is fail if any check failed, degraded if any was skipped
func overall(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			return "fail"
		case "skipped":
			status = "degraded"
		}
	}
	return status
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC(),
		Uptime:  int64(now().Sub(h.deps.StartedAt).Seconds()),
	}, nil
}

// swagger:route GET /meta/model Meta metaModel
// @Summary Scoring model and build
// @Tags Meta
// @Produce json
// @Success 200 {object} ModelResponse "ok"
// @Failure 503 {object} httpkit.Envelope "scorer not wired"
// @Router /meta/model [get]
func (h *handlers) model(r *http.Request) (any, error) {
	if h.deps.Model == nil {
		return nil, perr.Unavailablef("scoring model is not wired")
	}
	mi, err := h.deps.Model.ModelInfo(r.Context())
	if err != nil {
		return nil, err
	}
	return ModelResponse{Model: mi, Build: version.Info()}, nil
}
