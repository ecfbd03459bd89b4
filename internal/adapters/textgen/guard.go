package textgen

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Fallback strings served when the backend fails
const (
	FallbackPrediction = "An explanation for this prediction is not available right now."
	FallbackFeature    = "Could not load explanation for this feature."
	FallbackScenario   = "A comparative analysis is not available right now."
)

// Fallback returns the fixed text for kind
func Fallback(kind Kind) string {
	switch kind {
	case KindFeature:
		return FallbackFeature
	case KindScenario:
		return FallbackScenario
	default:
		return FallbackPrediction
	}
}

// Guard wraps a Generator with a timeout and fallback text
type Guard struct {
	gen     Generator
	timeout time.Duration
	log     zerolog.Logger
}

// NewGuard wraps gen; a nil gen behaves like Disabled, timeout <= 0 disables the deadline
func NewGuard(gen Generator, timeout time.Duration, log zerolog.Logger) *Guard {
	if gen == nil {
		gen = Disabled{}
	}
	return &Guard{gen: gen, timeout: timeout, log: log}
}

// Explain returns generated prose, or the kind's fallback and false when the backend failed
func (g *Guard) Explain(ctx context.Context, req Request) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Str("kind", string(req.Kind)).Msg("text generation panicked, serving fallback")
			text, ok = Fallback(req.Kind), false
		}
	}()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	text, err := g.gen.GenerateExplanation(ctx, req)
	if err != nil {
		g.log.Warn().Err(err).Str("kind", string(req.Kind)).Str("feature", req.FeatureName).Msg("text generation failed, serving fallback")
		return Fallback(req.Kind), false
	}
	return text, true
}

// GenerateExplanation implements Generator and never returns an error
func (g *Guard) GenerateExplanation(ctx context.Context, req Request) (string, error) {
	text, _ := g.Explain(ctx, req)
	return text, nil
}
