// Package schema coerces raw feature records into typed records using the feature registry
package schema

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind tags the variant held by a Value
type Kind uint8

const (
	// KindNull is an explicit null or an absent value
	KindNull Kind = iota
	// KindNumber is a float64
	KindNumber
	// KindText is a string
	KindText
	// KindBool is a boolean
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}

// Value is a small closed variant over the scalars a form or csv row can carry
// the zero Value is Null
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Null returns the null value
func Null() Value { return Value{} }

// Number wraps f
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text wraps s
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool wraps b
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the variant tag
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// Number returns the number and whether v holds one
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Text returns the string and whether v holds one
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Bool returns the boolean and whether v holds one
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Equal compares kind and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.b == o.b
	default:
		return true
	}
}

// String renders the payload for logs and narratives
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// Any returns the payload as a plain Go value, nil for null
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Of converts a plain Go scalar into a Value
// unsupported types become Text of their JSON form
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case string:
		return Text(t)
	case bool:
		return Bool(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return Text(t.String())
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return Text("")
		}
		return Text(string(raw))
	}
}

// MarshalJSON writes the payload as a JSON scalar
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON accepts any JSON value
// arrays and objects become Text of their raw form so only known features reject them
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '{', '[':
		*v = Text(string(data))
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*v = Number(f)
	}
	return nil
}

// RawRecord maps feature names, known or not, to untyped scalars
type RawRecord map[string]Value

// RawFrom builds a RawRecord from plain Go values
func RawFrom(m map[string]any) RawRecord {
	out := make(RawRecord, len(m))
	for k, x := range m {
		out[k] = Of(x)
	}
	return out
}
