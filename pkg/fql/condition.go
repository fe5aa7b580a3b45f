package fql

import (
	"fmt"
	"sort"
)

// Condition is an opaque composable boolean value produced by a caller's
// query backend. The core never inspects a Condition; it only composes
// values through the three algebraic operations. Implementations
// (query-backend adapters, in-memory evaluators, mocks) live entirely
// outside this module.
type Condition interface {
	And(other Condition) Condition
	Or(other Condition) Condition
	Not() Condition
}

// Context resolves filter names to the Conditions the caller registered.
// Lookup returns a non-nil error when the name was never registered.
//
// The core makes no assumption about a Context's thread-safety and
// performs one lookup per identifier occurrence in the expression;
// repeated identifiers cause repeated lookups.
type Context interface {
	Lookup(name string) (Condition, error)
}

// NameLister is optionally implemented by Context values that can
// enumerate their registered filter names. When available, unresolved-
// reference errors include a closest-name suggestion.
type NameLister interface {
	Names() []string
}

// MapContext is a minimal map-backed Context for callers and tests that
// register conditions up front.
type MapContext map[string]Condition

// Lookup implements Context.
func (m MapContext) Lookup(name string) (Condition, error) {
	cond, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no condition registered for '%s'", name)
	}
	return cond, nil
}

// Names implements NameLister. Names are returned sorted for stable
// suggestions.
func (m MapContext) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
