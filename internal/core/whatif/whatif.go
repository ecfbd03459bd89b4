// Package whatif compares a baseline record against an edited copy and narrates the watched drivers that moved
package whatif

import (
	"fmt"
	"strings"

	"creditclear/internal/core/schema"
	"creditclear/internal/core/scoring"
)

// DefaultWatchList names the features considered significant drivers
func DefaultWatchList() []string {
	return []string{"monthly_earnings", "credit_utilization", "savings_rate"}
}

// Delta is the outcome of one comparison
type Delta struct {
	BaselineCategory scoring.Category `json:"baseline_category"`
	NewCategory      scoring.Category `json:"new_category"`
	Changed          []string         `json:"changed"`
	Narrative        string           `json:"narrative"`
	Baseline         scoring.Result   `json:"baseline"`
	Modified         scoring.Result   `json:"modified"`
}

// Improved reports whether the modified record lands in a better band
func (d Delta) Improved() bool { return d.NewCategory.Rank() < d.BaselineCategory.Rank() }

// Option configures a Comparator
type Option func(*Comparator)

// WithWatchList replaces the watched features
func WithWatchList(names ...string) Option {
	return func(c *Comparator) { c.watch = append([]string(nil), names...) }
}

// Comparator scores two records and diffs the watched features
type Comparator struct {
	eng   *scoring.Engine
	watch []string
}

// New builds a comparator over eng
func New(eng *scoring.Engine, opts ...Option) *Comparator {
	c := &Comparator{eng: eng, watch: DefaultWatchList()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WatchList returns the watched features in narrative order
func (c *Comparator) WatchList() []string { return append([]string(nil), c.watch...) }

// Compare scores both records; features outside the watch list never reach the narrative
func (c *Comparator) Compare(baseline, modified schema.Record) Delta {
	d := Delta{
		Baseline: c.eng.Score(baseline),
		Modified: c.eng.Score(modified),
		Changed:  []string{},
	}
	d.BaselineCategory = d.Baseline.Category
	d.NewCategory = d.Modified.Category

	var drivers []string
	for _, name := range c.watch {
		nv := modified.Get(name)
		if baseline.Get(name).Equal(nv) {
			continue
		}
		d.Changed = append(d.Changed, name)
		drivers = append(drivers, fmt.Sprintf("%s changed to %s", humanize(name), nv))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The predicted category is %s, previously %s.", d.NewCategory, d.BaselineCategory)
	if len(drivers) == 0 {
		b.WriteString(" There are no significant changes in the key drivers.")
	} else {
		fmt.Fprintf(&b, " Key drivers: %s.", strings.Join(drivers, "; "))
	}
	d.Narrative = b.String()
	return d
}

func humanize(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
