// Command creditclear scores partner records offline against the local model
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"creditclear/internal/adapters/textgen"
	"creditclear/internal/core/version"
	"creditclear/internal/platform/config"
	"creditclear/internal/platform/logger"
	scoringsvc "creditclear/internal/services/api/scoring/service"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "creditclear:", err)
		os.Exit(1)
	}
}

// app carries what every subcommand shares
type app struct {
	svc    scoringsvc.Service
	pretty bool
}

// newRootCmd builds the command tree; a nil svc is built lazily from env
func newRootCmd(svc scoringsvc.Service) *cobra.Command {
	a := &app{svc: svc}

	root := &cobra.Command{
		Use:           "creditclear",
		Short:         "Score gig partner records against the local credit model",
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.svc == nil {
				a.svc = buildService(cmd.Context())
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.pretty, "pretty", false, "indent JSON output")

	root.AddCommand(
		a.featuresCmd(),
		a.templateCmd(),
		a.sampleCmd(),
		a.predictCmd(),
		a.batchCmd(),
		a.whatIfCmd(),
	)
	return root
}

// buildService wires an offline scorer, Gemini is used when SERVICE_GENAI_API_KEY is set
func buildService(ctx context.Context) scoringsvc.Service {
	log := *logger.Named("cli")
	ai := config.New().Prefix("SERVICE_GENAI_")

	var gen textgen.Generator
	if key := ai.MayString("API_KEY", ""); key != "" {
		g, err := textgen.NewGemini(ctx, textgen.GeminiConfig{
			APIKey: key,
			Model:  ai.MayString("MODEL", textgen.DefaultModel),
		})
		if err != nil {
			log.Warn().Err(err).Msg("gemini unavailable, using fallback text")
		} else {
			gen = g
		}
	}

	return scoringsvc.New(scoringsvc.Config{
		Text: textgen.NewGuard(gen, ai.MayDuration("TIMEOUT", 10*time.Second), log),
		Log:  log,
	})
}
