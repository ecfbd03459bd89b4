// Package textgen produces free form prose about predictions, features and scenarios
// callers wrap a Generator in Guard so a failing backend never reaches the user
package textgen

import (
	"context"

	perr "creditclear/internal/platform/errors"
)

// Kind selects the prompt
type Kind string

// Request kinds
const (
	KindPrediction Kind = "prediction"
	KindFeature    Kind = "feature"
	KindScenario   Kind = "scenario"
)

// Request carries what a prompt needs; unused fields stay empty
type Request struct {
	Kind          Kind
	FeatureName   string
	FeatureValues map[string]any
	Prediction    string
	Probabilities map[string]float64
	ScenarioA     map[string]any
	ScenarioB     map[string]any
}

// Generator turns a Request into prose
type Generator interface {
	GenerateExplanation(ctx context.Context, req Request) (string, error)
}

// ErrDisabled is returned by Disabled
var ErrDisabled = perr.New(perr.ErrorCodeUnavailable, "text generation disabled")

// Disabled always fails so Guard serves the fallback
type Disabled struct{}

// GenerateExplanation implements Generator
func (Disabled) GenerateExplanation(context.Context, Request) (string, error) {
	return "", ErrDisabled
}

// Func adapts a function to Generator
type Func func(ctx context.Context, req Request) (string, error)

// GenerateExplanation implements Generator
func (f Func) GenerateExplanation(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
