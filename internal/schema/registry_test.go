package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(LanguageEN)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, LanguageEN, r.Language())
	assert.NotEmpty(t, r.Fields())

	// Every prompt key in the field table must resolve to a question.
	for _, f := range r.Fields() {
		if f.PromptKey == "" {
			continue
		}
		p, err := r.Prompt(f.Key)
		require.NoError(t, err, "field %s", f.Key)
		assert.True(t, strings.HasPrefix(p, promptPrefixEN), "field %s", f.Key)
	}
}

func TestNewRegistryLanguage(t *testing.T) {
	tests := []struct {
		name    string
		lang    Language
		wantErr bool
	}{
		{"english", LanguageEN, false},
		{"german", LanguageDE, false},
		{"empty defaults to english", "", false},
		{"unsupported", Language("fr"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.lang)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRegistryGermanPrompts(t *testing.T) {
	r := MustRegistry(LanguageDE)

	p, err := r.Prompt("radical_prostatectomy")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, promptPrefixDE))
	assert.Contains(t, p, "Prostatektomie")
}

func TestRegistryFieldLookup(t *testing.T) {
	r := MustRegistry(LanguageEN)

	f, err := r.Field("skeletal_lesion_count")
	require.NoError(t, err)
	assert.Equal(t, TypeRadio, f.Type)
	assert.Equal(t, []string{"0", "1", "2-4", "5+"}, f.Options)
	assert.Equal(t, "0", f.Default.Str())

	_, err = r.Field("no_such_field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistryTypeInference(t *testing.T) {
	r := MustRegistry(LanguageEN)

	tests := []struct {
		key  string
		want FieldType
	}{
		{"indication_for_scan", TypeMultiselect},
		{"therapy_date", TypeDate},
		{"radical_prostatectomy", TypeRadio},
		{"psa_level", TypeText}, // explicit override, not inferred number
		{"psa_date", TypeDate},
		{"liver_suv_mean", TypeNumber},
		{"prostate_localization", TypeMultiselect},
		{"external_iliac_notes", TypeTextArea},
		{"psma_negative_lesion_count", TypeText},
		{"indeterminate_findings", TypeTextArea},
		{"summary", TypeTextArea},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, err := r.Field(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Type)
		})
	}
}

func TestRegistryDependencies(t *testing.T) {
	r := MustRegistry(LanguageEN)

	// Depth-2 chain: pelvic gate -> subsite gate -> detail field.
	f, err := r.Field("external_iliac_size_suv")
	require.NoError(t, err)
	require.NotNil(t, f.Dependency)
	assert.Equal(t, "external_iliac_lesion", f.Dependency.Field)

	parent, err := r.Field(f.Dependency.Field)
	require.NoError(t, err)
	require.NotNil(t, parent.Dependency)
	assert.Equal(t, "pelvic_ln_lesions", parent.Dependency.Field)

	// Every declared dependency must point at a known field.
	for _, f := range r.Fields() {
		if f.Dependency == nil {
			continue
		}
		assert.True(t, r.Has(f.Dependency.Field), "field %s", f.Key)
	}
}

func TestDependencyMatches(t *testing.T) {
	tests := []struct {
		name   string
		dep    Dependency
		parent string
		want   bool
	}{
		{"equality match", Dependency{Field: "p", Value: "Yes"}, "Yes", true},
		{"equality mismatch", Dependency{Field: "p", Value: "Yes"}, "No", false},
		{"empty parent never matches", Dependency{Field: "p", Value: "Yes"}, "", false},
		{"membership match", Dependency{Field: "p", Values: []string{"a", "b"}}, "b", true},
		{"membership mismatch", Dependency{Field: "p", Values: []string{"a", "b"}}, "c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dep.Matches(tt.parent))
		})
	}
}

func TestRegistrySections(t *testing.T) {
	r := MustRegistry(LanguageEN)

	secs := r.Sections()
	require.NotEmpty(t, secs)
	assert.Equal(t, "Clinical History & Procedure", secs[0])
	assert.Equal(t, "Summary", secs[len(secs)-1])

	sorted := r.SectionsSorted()
	assert.ElementsMatch(t, secs, sorted)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1], sorted[i])
	}

	for _, sec := range secs {
		assert.NotEmpty(t, r.SectionFields(sec), "section %s", sec)
	}
}

func TestRegistryExtractable(t *testing.T) {
	r := MustRegistry(LanguageEN)

	keys := r.Extractable()
	assert.NotContains(t, keys, "summary")
	assert.Contains(t, keys, "indication_for_scan")

	// Declaration order is preserved.
	assert.Equal(t, "indication_for_scan", keys[0])
}

func TestRegistryPromptGroups(t *testing.T) {
	r := MustRegistry(LanguageEN)

	groups := r.PromptGroups()
	require.NotEmpty(t, groups)

	// First occurrence order matches the extractable order, every member
	// carries the group's prompt key, and every extractable field belongs
	// to exactly one group.
	var seen []string
	for _, g := range groups {
		require.NotEmpty(t, g.Fields, "group %q", g.PromptKey)
		for _, key := range g.Fields {
			f, err := r.Field(key)
			require.NoError(t, err)
			assert.Equal(t, g.PromptKey, f.PromptKey)
			seen = append(seen, key)
		}
	}
	assert.ElementsMatch(t, r.Extractable(), seen)
	assert.Equal(t, "indication_for_scan", groups[0].Fields[0])
	assert.NotContains(t, seen, "summary")
}

func TestRegistryResolve(t *testing.T) {
	r := MustRegistry(LanguageEN)

	k, err := r.Resolve("  Skeletal_Lesions ")
	require.NoError(t, err)
	assert.Equal(t, "skeletal_lesions", k)

	_, err = r.Resolve("bogus")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistryAllowedAnswers(t *testing.T) {
	r := MustRegistry(LanguageEN)

	assert.Equal(t, []string{"Yes", "No"}, r.AllowedAnswers("radical_prostatectomy"))
	assert.Equal(t, []string{"0", "1", "2-4", "5+"}, r.AllowedAnswers("skeletal_lesion_count"))
	assert.Nil(t, r.AllowedAnswers("psa_level"))
	assert.Nil(t, r.AllowedAnswers("summary"))
}
