// Package api provides the HTTP API for the application
package api

import (
	"creditclear/internal/adapters/textgen"
	"creditclear/internal/platform/config"
	"creditclear/internal/platform/logger"
	phttp "creditclear/internal/platform/net/http"
	"creditclear/internal/platform/store"

	"creditclear/internal/modkit"
	"creditclear/internal/modkit/httpkit"
	"creditclear/internal/modkit/module"
	"creditclear/internal/modkit/swaggerkit"

	metamod "creditclear/internal/services/api/meta/module"
	scoringmod "creditclear/internal/services/api/scoring/module"
)

// Options are the API options
type Options struct {
	// Config is the root view, modules pick their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	// Generator backs narratives and explanations, nil serves fixed fallbacks
	Generator textgen.Generator
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	// scoring owns the model, meta reads the model card through its port
	so := scoringmod.FromConfig(deps.Cfg)
	so.Generator = opt.Generator
	scoring := scoringmod.New(deps, so)
	svc := module.MustPortsOf[scoringmod.Ports](scoring).Service

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Model: svc})),
		scoring,
	}

	api := deps.Cfg.Prefix("CORE_API_")
	stack := httpkit.Stack(httpkit.StackOptions{
		CORSOrigins: api.MayCSV("CORS_ORIGINS", nil),
		Timeout:     api.MayDuration("TIMEOUT", 0),
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(v1 httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// ports by module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(v1)
		}
	})
}
