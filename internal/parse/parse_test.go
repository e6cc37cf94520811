package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiolabs/psmareport/internal/schema"
)

func field(t *testing.T, key string) *schema.FieldDefinition {
	t.Helper()
	r := schema.MustRegistry(schema.LanguageEN)
	f, err := r.Field(key)
	require.NoError(t, err)
	return f
}

func TestAnswerRadioYesNo(t *testing.T) {
	def := field(t, "radical_prostatectomy")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain yes", "Yes", "Yes"},
		{"yes in sentence", "Yes, the patient underwent radical prostatectomy in 2019.", "Yes"},
		{"plain no", "No", "No"},
		{"no in sentence", "No prior prostatectomy is documented.", "No"},
		{"yes wins over no", "Yes, although no complications were noted.", "Yes"},
		{"case insensitive", "YES.", "Yes"},
		{"positive counts as yes", "Lesion is POSITIVE on imaging", "Yes"},
		{"confirmed counts as yes", "Finding confirmed in the report", "Yes"},
		{"present counts as yes", "The lesion is present", "Yes"},
		{"negative counts as no", "negative scan", "No"},
		{"no in clause", "No evidence of disease", "No"},
		{"inconclusive keeps default", "inconclusive result", schema.UnknownAnswer},
		{"absent counts as no", "The finding is absent", "No"},
		{"false counts as no", "false", "No"},
		// "not present" contains the affirmative "present", which is
		// checked first.
		{"affirmative wins inside negation", "not present", "Yes"},
		// "not" contains "no": the lexicon is substring based.
		{"negation counts as no", "The report does not discuss this.", "No"},
		{"unrelated answer keeps default", "The report is silent here.", schema.UnknownAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Answer(tt.raw, def).Str())
		})
	}
}

func TestAnswerRadioClosedSet(t *testing.T) {
	def := field(t, "skeletal_lesion_count")

	tests := []struct {
		raw  string
		want string
	}{
		{"There are 2-4 lesions visible.", "2-4"},
		{"5+ lesions", "5+"},
		{"a single lesion: 1", "1"},
		{"nothing matches here", "0"}, // declared default
	}

	for _, tt := range tests {
		got := Answer(tt.raw, def)
		assert.Equal(t, tt.want, got.Str(), "raw=%q", tt.raw)
	}
}

func TestAnswerMultiselect(t *testing.T) {
	def := field(t, "prostate_localization")

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single option", "The lesion is in the left lobe.", []string{"Left"}},
		{"multiple in schema order", "posterior and left base involvement", []string{"Left", "Base", "Posterior"}},
		{"no options", "not specified", nil},
		{"case insensitive", "RIGHT APICAL", []string{"Right", "Apical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Answer(tt.raw, def)
			assert.Equal(t, schema.KindList, got.Kind())
			assert.Equal(t, tt.want, got.List())
		})
	}
}

func TestAnswerNumber(t *testing.T) {
	def := field(t, "liver_suv_mean")

	tests := []struct {
		raw  string
		want float64
	}{
		{"SUV mean of the liver is 5.6", 5.6},
		{"approximately 12", 12},
		{"-0.5 relative change", -0.5},
		{".75", 0.75},
		{"no numeric content", 0},
		{"", 0},
	}

	for _, tt := range tests {
		got := Answer(tt.raw, def)
		if tt.raw == "" {
			assert.True(t, got.IsAbsent())
			continue
		}
		assert.Equal(t, schema.KindNumber, got.Kind(), "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got.Number(), "raw=%q", tt.raw)
	}
}

func TestAnswerDate(t *testing.T) {
	def := field(t, "therapy_date")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"year first slash", "therapy started 2023/01/15", "2023/01/15"},
		{"year first dash", "2021-7-4 per the chart", "2021-7-4"},
		{"year first dot", "on 2020.12.01", "2020.12.01"},
		{"day first", "15/01/2023", "15/01/2023"},
		{"year first preferred", "recorded 2023/01/15 aka 15/01/2023", "2023/01/15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Answer(tt.raw, def)
			assert.Equal(t, schema.KindDate, got.Kind())
			assert.Equal(t, tt.want, got.Display())
		})
	}

	t.Run("no date keeps value absent", func(t *testing.T) {
		got := Answer("the date is not documented", def)
		assert.True(t, got.IsAbsent())
	})
}

func TestAnswerText(t *testing.T) {
	def := field(t, "psa_level")

	got := Answer("  4.2 ng/mL, rising  ", def)
	assert.Equal(t, "4.2 ng/mL, rising", got.Str())

	assert.True(t, Answer("   ", def).IsAbsent())
}
