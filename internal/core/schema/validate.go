package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"creditclear/internal/core/features"
	perr "creditclear/internal/platform/errors"
)

// FieldError is one rejected feature with a human readable reason
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (f FieldError) String() string { return f.Field + ": " + f.Reason }

// ValidationError collects every field error of one record in registry order
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// Unwrap exposes a perr validation error carrying the field list as details
func (e *ValidationError) Unwrap() error {
	err := perr.New(perr.ErrorCodeValidation, "invalid record")
	if len(e.Fields) == 1 {
		err = perr.WithField(err, e.Fields[0].Field)
	}
	return perr.WithDetails(err, e.Fields)
}

// Reasons returns field name to reason, handy for log fields
func (e *ValidationError) Reasons() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Reason
	}
	return out
}

type coerceFunc func(d features.Definition, v Value) (Value, string)

// Validator coerces raw records against a registry
// it is stateless and safe for concurrent use
type Validator struct {
	reg    *features.Registry
	defs   []features.Definition
	coerce map[features.SemanticType]coerceFunc
}

// NewValidator derives per feature coercion rules from reg
func NewValidator(reg *features.Registry) *Validator {
	return &Validator{
		reg:  reg,
		defs: reg.List(),
		coerce: map[features.SemanticType]coerceFunc{
			features.Identifier:  coerceIdentifier,
			features.Numeric:     coerceNumeric,
			features.Categorical: coerceCategorical,
			features.Boolean:     coerceBoolean,
		},
	}
}

// Registry returns the registry the validator was built from
func (v *Validator) Registry() *features.Registry { return v.reg }

// Validate returns a complete Record or a *ValidationError listing every bad field
// keys not in the registry are ignored
func (v *Validator) Validate(raw RawRecord) (Record, error) {
	rec := Record{values: make(map[string]Value, len(v.defs)), order: make([]string, 0, len(v.defs))}
	var bad []FieldError
	for _, d := range v.defs {
		out, reason := v.coerce[d.Type](d, raw[d.Name])
		if reason != "" {
			bad = append(bad, FieldError{Field: d.Name, Reason: reason})
			continue
		}
		if d.Type == features.Identifier && out.IsNull() {
			continue
		}
		rec.values[d.Name] = out
		rec.order = append(rec.order, d.Name)
	}
	if len(bad) > 0 {
		return Record{}, &ValidationError{Fields: bad}
	}
	return rec, nil
}

// Coerce applies one feature's rule to a single value
func (v *Validator) Coerce(name string, raw Value) (Value, error) {
	d, err := v.reg.ByName(name)
	if err != nil {
		return Value{}, err
	}
	out, reason := v.coerce[d.Type](d, raw)
	if reason != "" {
		return Value{}, &ValidationError{Fields: []FieldError{{Field: name, Reason: reason}}}
	}
	return out, nil
}

func coerceIdentifier(_ features.Definition, v Value) (Value, string) {
	switch v.Kind() {
	case KindNull:
		return Null(), ""
	case KindText:
		s, _ := v.Text()
		if strings.TrimSpace(s) == "" {
			return Null(), ""
		}
		return v, ""
	case KindNumber:
		return Text(v.String()), ""
	default:
		return Value{}, "must be a string"
	}
}

func coerceNumeric(_ features.Definition, v Value) (Value, string) {
	switch v.Kind() {
	case KindNull:
		return Null(), ""
	case KindNumber:
		f, _ := v.Number()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, "must be a finite number"
		}
		return v, ""
	case KindText:
		s, _ := v.Text()
		s = strings.TrimSpace(s)
		if s == "" {
			return Null(), ""
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Sprintf("expected a number, got %q", s)
		}
		return Number(f), ""
	default:
		return Value{}, "expected a number, got a boolean"
	}
}

func coerceCategorical(d features.Definition, v Value) (Value, string) {
	switch v.Kind() {
	case KindNull:
		return Null(), ""
	case KindText:
		s, _ := v.Text()
		if s == "" {
			return Null(), ""
		}
		if d.HasOption(s) {
			return v, ""
		}
	}
	return Value{}, fmt.Sprintf("must be one of %s, got %s", strings.Join(d.Options, ", "), quoted(v))
}

func coerceBoolean(_ features.Definition, v Value) (Value, string) {
	switch v.Kind() {
	case KindBool:
		return v, ""
	case KindText:
		s, _ := v.Text()
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "TRUE":
			return Bool(true), ""
		case "FALSE":
			return Bool(false), ""
		}
	}
	return Null(), ""
}

func quoted(v Value) string {
	if v.Kind() == KindText {
		return strconv.Quote(v.String())
	}
	return v.String()
}
