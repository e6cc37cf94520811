// Package schema defines the PSMA PET/CT report field schema: field
// definitions, typed field values, question prompts and their localization,
// and the type-inference rules used when a raw definition does not declare
// an explicit field type.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for schema construction.
var (
	// ErrUnknownField is returned when a lookup references a field key
	// that is not part of the schema.
	ErrUnknownField = errors.New("unknown field key")

	// ErrInvalidDependency indicates a dependency referencing a missing
	// parent field or forming a cycle.
	ErrInvalidDependency = errors.New("invalid field dependency")
)

// FieldType identifies the value shape of a form field.
type FieldType string

const (
	TypeText        FieldType = "text"
	TypeTextArea    FieldType = "text_area"
	TypeNumber      FieldType = "number"
	TypeDate        FieldType = "date"
	TypeRadio       FieldType = "radio"
	TypeMultiselect FieldType = "multiselect"
)

// UnknownAnswer is the enabled fallback for radio fields whose response
// matched neither the affirmative nor the negative lexicon.
const UnknownAnswer = "Unknown"

// Dependency makes a field's enablement conditional on another field's
// current value. Exactly one of Value or Values is set: Value requires
// equality, Values requires membership.
type Dependency struct {
	Field  string   `json:"field"`
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// String renders the dependency as "field = value" or "field in [a, b]".
func (d Dependency) String() string {
	if len(d.Values) > 0 {
		return fmt.Sprintf("%s in [%s]", d.Field, strings.Join(d.Values, ", "))
	}
	return fmt.Sprintf("%s = %s", d.Field, d.Value)
}

// Matches reports whether the given parent display value satisfies the
// dependency. An empty parent value never satisfies it.
func (d Dependency) Matches(parent string) bool {
	if parent == "" {
		return false
	}
	if len(d.Values) > 0 {
		for _, v := range d.Values {
			if parent == v {
				return true
			}
		}
		return false
	}
	return parent == d.Value
}

// FieldDefinition is one immutable schema entry.
type FieldDefinition struct {
	// Key uniquely identifies the field, stable across sessions.
	Key string `json:"key"`

	// PromptKey identifies the extraction question sent upstream.
	// Several fields may share one prompt key. Empty for derived fields
	// that are never extracted (the reducer-owned summary field).
	PromptKey string `json:"prompt_key,omitempty"`

	// Label is the human-readable display name used in reports.
	Label string `json:"label"`

	Type FieldType `json:"type"`

	// Options is the ordered set of permitted values for radio and
	// multiselect fields.
	Options []string `json:"options,omitempty"`

	// Default is the field's initial value.
	Default Value `json:"default"`

	// Section is the display and report grouping name.
	Section string `json:"section"`

	Dependency *Dependency `json:"dependency,omitempty"`
}

// ValueKind discriminates the Value union.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindList
	KindNumber
	KindDate
)

// Value is a typed field value: a string, an ordered list of strings, a
// number, or an unnormalized date literal. The zero Value is absent.
type Value struct {
	kind ValueKind
	str  string
	list []string
	num  float64
}

// StringValue wraps a plain string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue wraps an ordered list of option strings.
func ListValue(items []string) Value { return Value{kind: KindList, list: items} }

// NumberValue wraps a float.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// DateValue wraps a date token, kept literal and unnormalized.
func DateValue(s string) Value { return Value{kind: KindDate, str: s} }

func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value is unset.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the underlying string for string and date values.
func (v Value) Str() string { return v.str }

// List returns the underlying list for list values.
func (v Value) List() []string { return v.list }

// Number returns the underlying float for number values.
func (v Value) Number() float64 { return v.num }

// Display renders the value for summaries and reports: list values joined
// by ", ", numbers in their shortest decimal form, dates and strings
// verbatim. Absent values render empty.
func (v Value) Display() string {
	switch v.kind {
	case KindString, KindDate:
		return v.str
	case KindList:
		return strings.Join(v.list, ", ")
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON serializes lists as arrays, numbers as numbers, strings and
// dates as strings, and absent values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString, KindDate:
		return json.Marshal(v.str)
	case KindList:
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}
