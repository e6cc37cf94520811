package form

import (
	"strings"
)

// Values that carry no clinical signal and are dropped from the summary.
var summarySentinels = map[string]bool{
	"no":      true,
	"unknown": true,
	"0":       true,
}

// renderSummaryLocked reduces the current values to the summary text:
// sections in lexicographic order, fields in declaration order within each
// section, one "label: value" line per surviving field, newline-joined with
// no section headings. Disabled fields, empty values and sentinel answers
// are skipped. Callers must hold s.mu.
func (s *State) renderSummaryLocked() string {
	var lines []string
	for _, section := range s.reg.SectionsSorted() {
		if section == "Summary" {
			continue
		}
		for _, f := range s.reg.SectionFields(section) {
			if !s.enabledLocked(f.Key) {
				continue
			}
			text := s.values[f.Key].Display()
			if text == "" || summarySentinels[strings.ToLower(text)] {
				continue
			}
			lines = append(lines, f.Label+": "+text)
		}
	}
	return strings.Join(lines, "\n")
}
