// Package parse turns raw model answers into typed field values. Parsing is
// total: malformed answers fall back to a type-specific default instead of
// failing, so one bad answer never aborts a run.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/radiolabs/psmareport/internal/schema"
)

var (
	numberRe   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	dateYearRe = regexp.MustCompile(`\d{4}[/.-]\d{1,2}[/.-]\d{1,2}`)
	dateDayRe  = regexp.MustCompile(`\d{1,2}[/.-]\d{1,2}[/.-]\d{4}`)
)

// Answer parses one raw backend answer against its field definition and
// returns the typed value. Failed answers (the in-band ERROR marker) and
// unparseable content produce an absent value so the form keeps whatever it
// already holds.
func Answer(raw string, def *schema.FieldDefinition) schema.Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return schema.Value{}
	}

	switch def.Type {
	case schema.TypeRadio:
		return parseRadio(raw, def)
	case schema.TypeMultiselect:
		return parseMultiselect(raw, def)
	case schema.TypeNumber:
		return parseNumber(raw)
	case schema.TypeDate:
		return parseDate(raw)
	default:
		return schema.StringValue(raw)
	}
}

// Affirmative is checked before negative, so an affirmative token anywhere
// in the answer wins.
var (
	affirmativeTokens = []string{"yes", "positive", "present", "confirmed", "true"}
	negativeTokens    = []string{"no", "negative", "absent", "not present", "false"}
)

// parseRadio matches the answer against the field's option set. Yes/No
// questions use the affirmative/negative substring lexicons; other closed
// sets match options in declaration order. No match keeps the declared
// default.
func parseRadio(raw string, def *schema.FieldDefinition) schema.Value {
	lower := strings.ToLower(raw)

	if isYesNo(def.Options) {
		for _, tok := range affirmativeTokens {
			if strings.Contains(lower, tok) {
				return schema.StringValue("Yes")
			}
		}
		for _, tok := range negativeTokens {
			if strings.Contains(lower, tok) {
				return schema.StringValue("No")
			}
		}
		return def.Default
	}

	for _, opt := range def.Options {
		if strings.Contains(lower, strings.ToLower(opt)) {
			return schema.StringValue(opt)
		}
	}
	return def.Default
}

func isYesNo(options []string) bool {
	for _, opt := range options {
		switch opt {
		case "Yes", "No", schema.UnknownAnswer:
		default:
			return false
		}
	}
	return len(options) > 0
}

// parseMultiselect selects every schema option whose text appears in the
// answer, preserving schema declaration order. The result is always a list,
// possibly empty.
func parseMultiselect(raw string, def *schema.FieldDefinition) schema.Value {
	lower := strings.ToLower(raw)
	var picked []string
	for _, opt := range def.Options {
		if strings.Contains(lower, strings.ToLower(opt)) {
			picked = append(picked, opt)
		}
	}
	return schema.ListValue(picked)
}

// parseNumber extracts the first numeric token from the answer. Answers
// without one parse as 0.
func parseNumber(raw string) schema.Value {
	m := numberRe.FindString(raw)
	if m == "" {
		return schema.NumberValue(0)
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return schema.NumberValue(0)
	}
	return schema.NumberValue(f)
}

// parseDate extracts the first date-shaped token, preferring year-first
// forms over day-first. The matched text is kept verbatim; no calendar
// normalization is attempted.
func parseDate(raw string) schema.Value {
	if m := dateYearRe.FindString(raw); m != "" {
		return schema.DateValue(m)
	}
	if m := dateDayRe.FindString(raw); m != "" {
		return schema.DateValue(m)
	}
	return schema.Value{}
}
