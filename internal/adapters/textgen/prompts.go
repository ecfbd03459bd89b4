package textgen

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	perr "creditclear/internal/platform/errors"
)

type kv struct {
	Key   string
	Value string
}

// pairs renders a map in key order so prompts are stable
func pairs[V any](m map[string]V) []kv {
	out := make([]kv, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, kv{Key: k, Value: fmt.Sprint(m[k])})
	}
	return out
}

var funcs = template.FuncMap{"pairs": pairs[any], "probs": pairs[float64]}

var prompts = map[Kind]*template.Template{
	KindPrediction: template.Must(template.New("prediction").Funcs(funcs).Parse(
		`You are a financial expert explaining credit score predictions to gig economy partners.

Given the following feature values and the predicted credit category, explain in 2-3 sentences which factors most influenced the prediction, naming the features with the strongest positive and negative impact.

Feature values:
{{range pairs .FeatureValues}}- {{.Key}}: {{.Value}}
{{end}}
Prediction: {{.Prediction}}
Probabilities:
{{range probs .Probabilities}}- {{.Key}}: {{.Value}}
{{end}}`)),

	KindFeature: template.Must(template.New("feature").Funcs(funcs).Parse(
		`You are a credit scoring expert for the gig economy.

Feature name: "{{.FeatureName}}"

In 1-2 sentences explain what this feature represents for a gig worker such as a driver or merchant, why it matters for credit risk, and for numeric features whether higher or lower is better.`)),

	KindScenario: template.Must(template.New("scenario").Funcs(funcs).Parse(
		`You are a financial risk analyst comparing two gig economy partner profiles.

Write a 2-3 paragraph narrative on their relative creditworthiness. State which profile is stronger and why, highlight the 2-3 features that separate them most, and close with the trade-offs between them.

Scenario A:
{{range pairs .ScenarioA}}- {{.Key}}: {{.Value}}
{{end}}
Scenario B:
{{range pairs .ScenarioB}}- {{.Key}}: {{.Value}}
{{end}}`)),
}

// Render builds the prompt for req
func Render(req Request) (string, error) {
	t, ok := prompts[req.Kind]
	if !ok {
		return "", perr.InvalidArgf("textgen: unknown request kind %q", req.Kind)
	}
	var b strings.Builder
	if err := t.Execute(&b, req); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "textgen: render %s prompt", req.Kind)
	}
	return b.String(), nil
}
