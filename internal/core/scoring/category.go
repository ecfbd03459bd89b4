package scoring

// Category is a credit band
type Category string

// Bands from best to worst
const (
	Excellent Category = "Excellent"
	Good      Category = "Good"
	Fair      Category = "Fair"
	Poor      Category = "Poor"
	VeryPoor  Category = "Very Poor"
)

// Categories returns every band, best first
func Categories() []Category {
	return []Category{Excellent, Good, Fair, Poor, VeryPoor}
}

// Rank is 0 for Excellent up to 4 for Very Poor, -1 for unknown
func (c Category) Rank() int {
	for i, x := range Categories() {
		if x == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is a known band
func (c Category) Valid() bool { return c.Rank() >= 0 }

type threshold struct {
	above float64
	cat   Category
}

// evaluated top down, first match wins
var thresholds = []threshold{
	{85, Excellent},
	{70, Good},
	{40, Fair},
	{20, Poor},
}

// Classify maps a score to its band, total and monotone over all reals
func Classify(score float64) Category {
	for _, t := range thresholds {
		if score > t.above {
			return t.cat
		}
	}
	return VeryPoor
}

// Prior is the starting distribution before the predicted band takes its share
func Prior() map[Category]float64 {
	return map[Category]float64{
		Excellent: 0.10,
		Good:      0.20,
		Fair:      0.40,
		Poor:      0.20,
		VeryPoor:  0.10,
	}
}

// Confidence bounds for the predicted band
const (
	MinConfidence = 0.4
	MaxConfidence = 0.9
)

// ConfidenceFor clamps score/100 into [MinConfidence, MaxConfidence]
func ConfidenceFor(score float64) float64 {
	return min(max(score/100, MinConfidence), MaxConfidence)
}

// Distribution gives predicted the confidence and splits the rest evenly across the other bands
func Distribution(predicted Category, confidence float64) map[Category]float64 {
	probs := Prior()
	rest := (1 - confidence) / float64(len(probs)-1)
	for c := range probs {
		if c == predicted {
			probs[c] = confidence
			continue
		}
		probs[c] = rest
	}
	return probs
}
