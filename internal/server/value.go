package server

import (
	"fmt"

	"github.com/radiolabs/psmareport/internal/schema"
)

// valueFromJSON converts a decoded JSON value from a field edit into the
// field's typed value. Closed sets (radio, multiselect) are validated
// against the declared options.
func valueFromJSON(def *schema.FieldDefinition, raw any) (schema.Value, error) {
	if raw == nil {
		return schema.Value{}, nil
	}

	switch def.Type {
	case schema.TypeRadio:
		s, ok := raw.(string)
		if !ok {
			return schema.Value{}, fmt.Errorf("field %q expects a string", def.Key)
		}
		if !optionAllowed(def.Options, s) {
			return schema.Value{}, fmt.Errorf("field %q: %q is not an allowed option", def.Key, s)
		}
		return schema.StringValue(s), nil

	case schema.TypeMultiselect:
		items, ok := raw.([]any)
		if !ok {
			return schema.Value{}, fmt.Errorf("field %q expects an array", def.Key)
		}
		picked := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return schema.Value{}, fmt.Errorf("field %q expects an array of strings", def.Key)
			}
			if !optionAllowed(def.Options, s) {
				return schema.Value{}, fmt.Errorf("field %q: %q is not an allowed option", def.Key, s)
			}
			picked = append(picked, s)
		}
		return schema.ListValue(picked), nil

	case schema.TypeNumber:
		f, ok := raw.(float64)
		if !ok {
			return schema.Value{}, fmt.Errorf("field %q expects a number", def.Key)
		}
		return schema.NumberValue(f), nil

	case schema.TypeDate:
		s, ok := raw.(string)
		if !ok {
			return schema.Value{}, fmt.Errorf("field %q expects a string", def.Key)
		}
		return schema.DateValue(s), nil

	default:
		s, ok := raw.(string)
		if !ok {
			return schema.Value{}, fmt.Errorf("field %q expects a string", def.Key)
		}
		return schema.StringValue(s), nil
	}
}

func optionAllowed(options []string, s string) bool {
	if len(options) == 0 {
		return true
	}
	for _, opt := range options {
		if opt == s {
			return true
		}
	}
	return false
}
