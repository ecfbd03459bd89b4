package schema

import (
	"maps"

	"creditclear/internal/core/features"
)

// Record is a validated feature record
// it holds a typed value for every known feature and is only built by Validator
type Record struct {
	values map[string]Value
	order  []string
}

// Get returns the typed value for name, Null when unknown or missing
func (r Record) Get(name string) Value { return r.values[name] }

// Has reports whether name carries a non null value
func (r Record) Has(name string) bool { return !r.values[name].IsNull() }

// Number returns a numeric feature and whether it is present
func (r Record) Number(name string) (float64, bool) { return r.values[name].Number() }

// Category returns a categorical feature and whether it is present
func (r Record) Category(name string) (string, bool) { return r.values[name].Text() }

// Flag returns a boolean feature and whether it is present
func (r Record) Flag(name string) (bool, bool) { return r.values[name].Bool() }

// PartnerID returns the correlation id, empty when absent
func (r Record) PartnerID() string {
	s, _ := r.values[features.PartnerID].Text()
	return s
}

// Names returns the feature names held by the record in registry order
func (r Record) Names() []string { return append([]string(nil), r.order...) }

// Map renders the record as plain Go values for JSON and storage
// null features map to nil, absent identifiers are omitted
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v.Any()
	}
	return out
}

// Equal reports whether both records hold the same typed values
func (r Record) Equal(o Record) bool {
	return maps.EqualFunc(r.values, o.values, Value.Equal)
}

// Raw converts the record back into a RawRecord, useful to layer edits over a validated baseline
func (r Record) Raw() RawRecord {
	return RawRecord(maps.Clone(r.values))
}
