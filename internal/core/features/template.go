package features

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// TemplateFilename is the suggested download name for the batch template
const TemplateFilename = "prediction_template.csv"

// TemplateHeader returns the batch CSV header line, every feature in registry order
func TemplateHeader(r *Registry) string {
	return strings.Join(r.Names(), ",")
}

// Sample draws a synthetic record within each feature's bounds
// identical rng state yields an identical record
func Sample(r *Registry, rng *rand.Rand) map[string]any {
	out := make(map[string]any, r.Len())
	for _, d := range r.defs {
		switch d.Type {
		case Identifier:
			out[d.Name] = fmt.Sprintf("partner_%d", 1000+rng.IntN(9000))
		case Numeric:
			if d.Bounds == nil {
				out[d.Name] = d.Default
				continue
			}
			v := d.Bounds.Min + rng.Float64()*(d.Bounds.Max-d.Bounds.Min)
			out[d.Name] = round(v, d.Bounds.Precision)
		case Categorical:
			out[d.Name] = d.Options[rng.IntN(len(d.Options))]
		case Boolean:
			out[d.Name] = rng.Float64() > 0.5
		}
	}
	return out
}

func round(v float64, prec int) float64 {
	p := math.Pow10(prec)
	return math.Round(v*p) / p
}
