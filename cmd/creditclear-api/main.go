// @title         creditclear API
// @version       0.1.0
// @description   Credit category scoring for gig economy partners

package main

import (
	"context"
	"os/signal"
	"syscall"

	"creditclear/internal/adapters/textgen"
	"creditclear/internal/core/version"
	"creditclear/internal/modkit/repokit"
	"creditclear/internal/platform/config"
	"creditclear/internal/platform/logger"
	phttp "creditclear/internal/platform/net/http"
	"creditclear/internal/platform/store"

	"creditclear/internal/services/api"
	scoringsvc "creditclear/internal/services/api/scoring/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")      // SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // SERVICE_CLICKHOUSE_*
	aiCfg := root.Prefix("SERVICE_GENAI_")      // SERVICE_GENAI_*

	// bring up logging early
	l := logger.Get()
	l.Info().Str("build", version.Info().String()).Msg("starting")

	// both backends are optional, an empty DBURL leaves the seam nil
	pgURL := pgCfg.MayString("DBURL", "")
	chURL := chCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: version.Service,
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:    chURL != "",
				URL:        chURL,
				ClientRole: "api",
				ClientTag:  version.Service,
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(ctx, st)
	if err := scoringsvc.Migrate(ctx, st.PG, st.CH); err != nil {
		l.Panic().Err(err).Msg("migrate failed")
	}

	// text generation is optional, without a key every prose field is a fixed fallback
	var gen textgen.Generator
	if key := aiCfg.MayString("API_KEY", ""); key != "" {
		g, err := textgen.NewGemini(ctx, textgen.GeminiConfig{
			APIKey:      key,
			Model:       aiCfg.MayString("MODEL", textgen.DefaultModel),
			Temperature: float32(aiCfg.MayFloat64("TEMPERATURE", 0.4)),
			MaxTokens:   int32(aiCfg.MayInt("MAX_TOKENS", 512)),
		})
		if err != nil {
			l.Warn().Err(err).Msg("gemini unavailable, serving fallback text")
		} else {
			gen = g
			l.Info().Str("model", g.Model()).Msg("gemini enabled")
		}
	}

	// http server (reads CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Generator:      gen,
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
