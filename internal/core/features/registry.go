// Package features holds the declarative feature catalog that drives validation and scoring
package features

import (
	"fmt"
	"strings"

	perr "creditclear/internal/platform/errors"
)

// SemanticType tells the validator how to coerce a raw value
type SemanticType string

const (
	// Identifier values are optional strings used for correlation only
	Identifier SemanticType = "identifier"
	// Numeric values are floats, null when missing
	Numeric SemanticType = "numeric"
	// Categorical values must match one of the options exactly
	Categorical SemanticType = "categorical"
	// Boolean values are true, false or null
	Boolean SemanticType = "boolean"
)

// Valid reports whether t is one of the known semantic types
func (t SemanticType) Valid() bool {
	switch t {
	case Identifier, Numeric, Categorical, Boolean:
		return true
	}
	return false
}

// Bounds is the synthetic data range for a numeric feature
// validation never enforces it
type Bounds struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Precision int     `json:"precision"`
}

// Definition describes one feature
type Definition struct {
	Name        string       `json:"name"`
	Type        SemanticType `json:"type"`
	Group       string       `json:"group"`
	Description string       `json:"description,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Bounds      *Bounds      `json:"bounds,omitempty"`
	Default     any          `json:"default,omitempty"`
}

// HasOption reports whether v is one of the categorical options
func (d Definition) HasOption(v string) bool {
	for _, o := range d.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Registry is an ordered immutable feature table
type Registry struct {
	defs   []Definition
	index  map[string]int
	groups []string
}

// New builds a registry from defs in the given order
// it panics on empty or duplicate names and on malformed categorical options
func New(defs ...Definition) *Registry {
	r := &Registry{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	seenGroup := map[string]bool{}
	for _, d := range defs {
		name := strings.TrimSpace(d.Name)
		if name == "" || name != d.Name {
			panic(fmt.Sprintf("features: invalid feature name %q", d.Name))
		}
		if !d.Type.Valid() {
			panic(fmt.Sprintf("features: %s has unknown type %q", d.Name, d.Type))
		}
		if _, dup := r.index[d.Name]; dup {
			panic(fmt.Sprintf("features: duplicate feature %q", d.Name))
		}
		if d.Type == Categorical {
			if len(d.Options) == 0 {
				panic(fmt.Sprintf("features: categorical %s has no options", d.Name))
			}
			seen := make(map[string]bool, len(d.Options))
			for _, o := range d.Options {
				if seen[o] {
					panic(fmt.Sprintf("features: categorical %s repeats option %q", d.Name, o))
				}
				seen[o] = true
			}
			d.Options = append([]string(nil), d.Options...)
		}
		if d.Bounds != nil {
			b := *d.Bounds
			d.Bounds = &b
		}
		r.index[d.Name] = len(r.defs)
		r.defs = append(r.defs, d)
		if !seenGroup[d.Group] {
			seenGroup[d.Group] = true
			r.groups = append(r.groups, d.Group)
		}
	}
	return r
}

// List returns every definition in registry order
func (r *Registry) List() []Definition {
	out := make([]Definition, len(r.defs))
	for i, d := range r.defs {
		d.Options = append([]string(nil), d.Options...)
		out[i] = d
	}
	return out
}

// ByName returns the definition for name or a not found error
func (r *Registry) ByName(name string) (Definition, error) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, perr.NotFoundf("feature %q not found", name)
	}
	d := r.defs[i]
	d.Options = append([]string(nil), d.Options...)
	return d, nil
}

// Has reports whether name is a known feature
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Groups returns distinct group labels in first seen order
func (r *Registry) Groups() []string {
	return append([]string(nil), r.groups...)
}

// Names returns feature names in registry order
func (r *Registry) Names() []string {
	out := make([]string, len(r.defs))
	for i, d := range r.defs {
		out[i] = d.Name
	}
	return out
}

// Len is the number of features
func (r *Registry) Len() int { return len(r.defs) }

// InGroup returns the definitions tagged with group in registry order
func (r *Registry) InGroup(group string) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Group == group {
			out = append(out, d)
		}
	}
	return out
}

// OfType returns the definitions of semantic type t in registry order
func (r *Registry) OfType(t SemanticType) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// TypeOf returns the semantic type of name and whether it is known
func (r *Registry) TypeOf(name string) (SemanticType, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.defs[i].Type, true
}
