package schema

import "strings"

// Field keys that hold free-form narrative even though their question text
// carries none of the textual type cues.
var freeFormKeys = map[string]bool{
	"summary":                true,
	"indeterminate_findings": true,
	"other_scoring_systems":  true,
}

// inferType derives a field type from the shape of its raw definition.
// The precedence is fixed and the first matching rule wins:
//
//  1. the prompt entry carries options            -> multiselect
//  2. the prompt entry carries allowed answers    -> radio
//  3. the question text contains "date"           -> date
//  4. the question text contains "suv" or "psa"   -> number
//  5. the question text contains "notes", or the
//     field is a designated free-form field       -> text_area
//  6. otherwise                                   -> text
//
// Inference runs once at schema build time; definitions are never
// re-inspected at use time.
func inferType(fieldKey string, entry promptEntry) FieldType {
	if len(entry.options) > 0 {
		return TypeMultiselect
	}
	if len(entry.allowedAnswers) > 0 {
		return TypeRadio
	}

	q := strings.ToLower(entry.question)
	switch {
	case strings.Contains(q, "date"):
		return TypeDate
	case strings.Contains(q, "suv") || strings.Contains(q, "psa"):
		return TypeNumber
	case strings.Contains(q, "notes") || freeFormKeys[fieldKey]:
		return TypeTextArea
	}
	return TypeText
}
