package scoring

import (
	"fmt"
	"strconv"
)

// Op is a rule comparison
type Op string

// Supported comparisons
const (
	Greater Op = ">"
	Less    Op = "<"
)

// Rule adds Delta to the running score when Feature is present and satisfies Op against Threshold
type Rule struct {
	Feature   string  `json:"feature"`
	Op        Op      `json:"op"`
	Threshold float64 `json:"threshold"`
	Delta     float64 `json:"delta"`
}

// Matches reports whether x satisfies the rule predicate
func (r Rule) Matches(x float64) bool {
	switch r.Op {
	case Greater:
		return x > r.Threshold
	case Less:
		return x < r.Threshold
	}
	return false
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s => %+g", r.Feature, r.Op, strconv.FormatFloat(r.Threshold, 'f', -1, 64), r.Delta)
}

// BaseScore is the starting point of every evaluation
const BaseScore = 50.0

// DefaultRules is the weighted adjustment table, applied in order
func DefaultRules() []Rule {
	return []Rule{
		{Feature: "monthly_earnings", Op: Greater, Threshold: 1000, Delta: 10},
		{Feature: "avg_rating", Op: Greater, Threshold: 4.5, Delta: 10},
		{Feature: "cancellation_rate", Op: Less, Threshold: 0.05, Delta: 10},
		{Feature: "credit_score", Op: Greater, Threshold: 700, Delta: 20},
		{Feature: "income_volatility", Op: Greater, Threshold: 0.5, Delta: -15},
		{Feature: "late_arrivals", Op: Greater, Threshold: 5, Delta: -15},
		{Feature: "savings_rate", Op: Greater, Threshold: 0.15, Delta: 15},
		{Feature: "credit_utilization", Op: Less, Threshold: 0.3, Delta: 15},
	}
}
