// Package form holds the mutable report state: one value per schema field,
// dependency-driven enablement, and a summary that is recomputed on every
// mutation.
package form

import (
	"fmt"
	"sync"

	"github.com/radiolabs/psmareport/internal/schema"
)

// State is one in-progress structured report. All mutation funnels through
// Set so the derived summary can never go stale. Safe for concurrent use.
type State struct {
	mu     sync.RWMutex
	reg    *schema.Registry
	values map[string]schema.Value
}

// New builds a fresh state with every field at its declared default and the
// summary already computed.
func New(reg *schema.Registry) *State {
	s := &State{
		reg:    reg,
		values: make(map[string]schema.Value, len(reg.Fields())),
	}
	for _, f := range reg.Fields() {
		s.values[f.Key] = f.Default
	}
	s.values["summary"] = schema.StringValue(s.renderSummaryLocked())
	return s
}

// Registry returns the schema this state was built against.
func (s *State) Registry() *schema.Registry { return s.reg }

// Set stores a field value and synchronously recomputes the summary. It is
// the only mutation entrypoint; unknown keys and direct writes to the
// derived summary field are rejected.
func (s *State) Set(key string, v schema.Value) error {
	f, err := s.reg.Field(key)
	if err != nil {
		return err
	}
	if f.Key == "summary" {
		return fmt.Errorf("field %q is derived and cannot be set", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[f.Key] = v
	s.values["summary"] = schema.StringValue(s.renderSummaryLocked())
	return nil
}

// Apply stores a batch of parsed values in one lock acquisition, recomputing
// the summary once at the end. Absent values are skipped so a failed or
// unparseable answer never clobbers what the form already holds.
func (s *State) Apply(values map[string]schema.Value) error {
	for key := range values {
		f, err := s.reg.Field(key)
		if err != nil {
			return err
		}
		if f.Key == "summary" {
			return fmt.Errorf("field %q is derived and cannot be set", key)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, v := range values {
		if v.IsAbsent() {
			continue
		}
		s.values[key] = v
	}
	s.values["summary"] = schema.StringValue(s.renderSummaryLocked())
	return nil
}

// Get returns the current value of a field.
func (s *State) Get(key string) (schema.Value, error) {
	if _, err := s.reg.Field(key); err != nil {
		return schema.Value{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

// Values returns a snapshot of all current values.
func (s *State) Values() map[string]schema.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]schema.Value, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// IsEnabled reports whether a field is active given its dependency chain.
// A field is enabled when it has no dependency, or when its parent is itself
// enabled and holds a matching value. Disabled fields keep their values;
// enablement only governs what the summary and the UI surface.
func (s *State) IsEnabled(key string) (bool, error) {
	if _, err := s.reg.Field(key); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabledLocked(key), nil
}

func (s *State) enabledLocked(key string) bool {
	f, err := s.reg.Field(key)
	if err != nil {
		return false
	}
	dep := f.Dependency
	if dep == nil {
		return true
	}
	if !s.enabledLocked(dep.Field) {
		return false
	}
	return dep.Matches(s.values[dep.Field].Display())
}

// Summary returns the current derived summary.
func (s *State) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values["summary"].Str()
}
