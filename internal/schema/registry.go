package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Language selects the prompt localization handed to the backend.
type Language string

const (
	LanguageEN Language = "en"
	LanguageDE Language = "de"
)

// Registry is the immutable field schema: every report field in declaration
// order, keyed lookup, and localized extraction prompts. Build it once at
// startup and share it; all methods are safe for concurrent use.
type Registry struct {
	lang     Language
	fields   []FieldDefinition
	byKey    map[string]*FieldDefinition
	sections []string
}

// NewRegistry builds the registry for the given prompt language. It fails if
// the field table is internally inconsistent: duplicate keys, dependencies on
// unknown fields, dependency cycles, or prompt keys without a question.
func NewRegistry(lang Language) (*Registry, error) {
	switch lang {
	case LanguageEN, LanguageDE:
	case "":
		lang = LanguageEN
	default:
		return nil, fmt.Errorf("unsupported prompt language %q", lang)
	}

	r := &Registry{
		lang:   lang,
		fields: make([]FieldDefinition, 0, len(fieldTable)),
		byKey:  make(map[string]*FieldDefinition, len(fieldTable)),
	}

	seenSections := make(map[string]bool)
	for _, raw := range fieldTable {
		if _, dup := r.byKey[raw.key]; dup {
			return nil, fmt.Errorf("duplicate field key %q", raw.key)
		}

		var entry promptEntry
		if raw.promptKey != "" {
			var ok bool
			entry, ok = promptTable[raw.promptKey]
			if !ok {
				return nil, fmt.Errorf("field %q: no prompt for key %q", raw.key, raw.promptKey)
			}
		}

		typ := raw.typ
		if typ == "" {
			typ = inferType(raw.key, entry)
		}

		def := FieldDefinition{
			Key:        raw.key,
			PromptKey:  raw.promptKey,
			Label:      raw.label,
			Type:       typ,
			Options:    raw.options,
			Default:    raw.def,
			Section:    raw.section,
			Dependency: raw.dep,
		}
		if def.Options == nil {
			def.Options = entry.options
		}
		r.fields = append(r.fields, def)
		r.byKey[def.Key] = &r.fields[len(r.fields)-1]
		if !seenSections[def.Section] {
			seenSections[def.Section] = true
			r.sections = append(r.sections, def.Section)
		}
	}

	if err := r.validateDependencies(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustRegistry is NewRegistry for static schemas where a build error is a
// programming bug.
func MustRegistry(lang Language) *Registry {
	r, err := NewRegistry(lang)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) validateDependencies() error {
	for i := range r.fields {
		f := &r.fields[i]
		dep := f.Dependency
		if dep == nil {
			continue
		}
		if dep.Field == "" || (dep.Value == "" && len(dep.Values) == 0) {
			return fmt.Errorf("field %q: %w", f.Key, ErrInvalidDependency)
		}
		parent, ok := r.byKey[dep.Field]
		if !ok {
			return fmt.Errorf("field %q depends on unknown field %q: %w", f.Key, dep.Field, ErrInvalidDependency)
		}
		if parent.Key == f.Key {
			return fmt.Errorf("field %q depends on itself: %w", f.Key, ErrInvalidDependency)
		}

		// Walk the parent chain; a revisit means a cycle.
		visited := map[string]bool{f.Key: true}
		for cur := parent; cur != nil && cur.Dependency != nil; {
			if visited[cur.Key] {
				return fmt.Errorf("field %q: dependency cycle through %q: %w", f.Key, cur.Key, ErrInvalidDependency)
			}
			visited[cur.Key] = true
			cur = r.byKey[cur.Dependency.Field]
		}
	}
	return nil
}

// Language reports the prompt localization this registry was built with.
func (r *Registry) Language() Language { return r.lang }

// Fields returns all field definitions in declaration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) Fields() []FieldDefinition { return r.fields }

// Field looks up a definition by key.
func (r *Registry) Field(key string) (*FieldDefinition, error) {
	f, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return f, nil
}

// Has reports whether key names a schema field.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Sections returns the section names in declaration order.
func (r *Registry) Sections() []string { return r.sections }

// SectionsSorted returns the section names in lexicographic order, the order
// the summary reducer emits them in.
func (r *Registry) SectionsSorted() []string {
	out := make([]string, len(r.sections))
	copy(out, r.sections)
	sort.Strings(out)
	return out
}

// SectionFields returns the fields of one section in declaration order.
func (r *Registry) SectionFields(section string) []FieldDefinition {
	var out []FieldDefinition
	for _, f := range r.fields {
		if f.Section == section {
			out = append(out, f)
		}
	}
	return out
}

// Prompt renders the full localized extraction question for key: the
// language-specific system prefix plus the question body. German falls back
// to the English question when no translation exists. Fields without a
// prompt key (derived fields) yield an empty prompt.
func (r *Registry) Prompt(key string) (string, error) {
	f, err := r.Field(key)
	if err != nil {
		return "", err
	}
	if f.PromptKey == "" {
		return "", nil
	}
	entry := promptTable[f.PromptKey]
	if r.lang == LanguageDE {
		if body, ok := promptTableDE[f.PromptKey]; ok {
			return promptPrefixDE + body, nil
		}
	}
	return promptPrefixEN + entry.question, nil
}

// Extractable returns, in declaration order, the keys of every field that
// carries an extraction prompt. Derived fields (the summary) are excluded.
func (r *Registry) Extractable() []string {
	out := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		if f.PromptKey != "" {
			out = append(out, f.Key)
		}
	}
	return out
}

// PromptGroup is the set of fields answered by one extraction question. The
// backend is invoked once per group; the response fans out to every member.
type PromptGroup struct {
	PromptKey string
	Fields    []string
}

// PromptGroups partitions the extractable fields by prompt key, in first
// occurrence order, with member fields in declaration order. Derived per
// call rather than cached.
func (r *Registry) PromptGroups() []PromptGroup {
	var groups []PromptGroup
	index := make(map[string]int)
	for _, f := range r.fields {
		if f.PromptKey == "" {
			continue
		}
		i, ok := index[f.PromptKey]
		if !ok {
			i = len(groups)
			index[f.PromptKey] = i
			groups = append(groups, PromptGroup{PromptKey: f.PromptKey})
		}
		groups[i].Fields = append(groups[i].Fields, f.Key)
	}
	return groups
}

// AllowedAnswers returns the closed answer lexicon for a radio field's
// prompt, nil for open questions.
func (r *Registry) AllowedAnswers(key string) []string {
	f, ok := r.byKey[key]
	if !ok || f.PromptKey == "" {
		return nil
	}
	return promptTable[f.PromptKey].allowedAnswers
}

// normKey lowercases and trims a candidate field key from external input.
func normKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Resolve maps an externally supplied key (HTTP path segment, CLI flag) to
// its canonical field key, tolerating case and surrounding whitespace.
func (r *Registry) Resolve(key string) (string, error) {
	k := normKey(key)
	if _, ok := r.byKey[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return k, nil
}
