// Package scoring turns a validated feature record into a credit band and a probability distribution
package scoring

import (
	"fmt"
	"strconv"
	"time"

	"creditclear/internal/core/schema"
)

// Algorithm is the model card name of the local heuristic
const Algorithm = "Weighted Heuristic"

// Contribution is one fired rule
type Contribution struct {
	Rule     string  `json:"rule"`
	Feature  string  `json:"feature"`
	Observed float64 `json:"observed"`
	Delta    float64 `json:"delta"`
}

// Result is a single prediction
type Result struct {
	Category      Category             `json:"category"`
	Probabilities map[Category]float64 `json:"probabilities"`
	Explanation   string               `json:"explanation"`
	Score         float64              `json:"score"`
	Confidence    float64              `json:"confidence"`
	Contributions []Contribution       `json:"contributions,omitempty"`
}

// ModelInfo describes the scorer for clients
type ModelInfo struct {
	Algorithm string    `json:"algorithm"`
	Rules     int       `json:"rules"`
	BaseScore float64   `json:"base_score"`
	TrainedAt time.Time `json:"trained_at"`
}

// Option configures an Engine
type Option func(*Engine)

// WithRules replaces the rule table
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = append([]Rule(nil), rules...) }
}

// WithTrainedAt pins the model card timestamp
func WithTrainedAt(t time.Time) Option {
	return func(e *Engine) { e.trainedAt = t }
}

// Engine is a pure scorer; safe for concurrent use
type Engine struct {
	rules     []Rule
	trainedAt time.Time
}

// New builds an engine with DefaultRules unless overridden
func New(opts ...Option) *Engine {
	e := &Engine{rules: DefaultRules(), trainedAt: time.Now().UTC()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Rules returns a copy of the rule table
func (e *Engine) Rules() []Rule { return append([]Rule(nil), e.rules...) }

// ModelInfo returns the model card
func (e *Engine) ModelInfo() ModelInfo {
	return ModelInfo{
		Algorithm: Algorithm,
		Rules:     len(e.rules),
		BaseScore: BaseScore,
		TrainedAt: e.trainedAt,
	}
}

// Score evaluates rec; null features never fire a rule
func (e *Engine) Score(rec schema.Record) Result {
	score := BaseScore
	var fired []Contribution
	for _, r := range e.rules {
		x, ok := rec.Number(r.Feature)
		if !ok || !r.Matches(x) {
			continue
		}
		score += r.Delta
		fired = append(fired, Contribution{Rule: r.String(), Feature: r.Feature, Observed: x, Delta: r.Delta})
	}

	cat := Classify(score)
	conf := ConfidenceFor(score)
	return Result{
		Category:      cat,
		Probabilities: Distribution(cat, conf),
		Explanation:   explain(rec, cat),
		Score:         score,
		Confidence:    conf,
		Contributions: fired,
	}
}

func explain(rec schema.Record, cat Category) string {
	return fmt.Sprintf(
		"Predicted %s based on a credit score of %s, monthly earnings of %s and a cancellation rate of %s.",
		cat, cite(rec, "credit_score"), cite(rec, "monthly_earnings"), cite(rec, "cancellation_rate"),
	)
}

func cite(rec schema.Record, name string) string {
	x, ok := rec.Number(name)
	if !ok {
		return "not provided"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
