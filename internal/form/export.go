package form

import (
	"encoding/json"
	"strings"
	"time"
)

// ExportJSON renders the full report as JSON keyed by field key. Lists
// export as arrays, numbers as numbers, dates as strings, absent values as
// null. The derived summary is included.
func (s *State) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := make(map[string]any, len(s.values))
	for k, v := range s.values {
		doc[k] = v
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportText renders the report as a plain-text document: a generation
// header, then each section in lexicographic order with its name uppercased
// and underlined with dashes, followed by one "Label: value" line per
// non-empty field.
func (s *State) ExportText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("PSMA PET/CT STRUCTURED REPORT\n")
	b.WriteString("Generated: ")
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")
	for _, section := range s.reg.SectionsSorted() {
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(section))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len(section)))
		b.WriteString("\n")
		for _, f := range s.reg.SectionFields(section) {
			text := s.values[f.Key].Display()
			if strings.TrimSpace(text) == "" {
				continue
			}
			b.WriteString(f.Label)
			b.WriteString(": ")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
