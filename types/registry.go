package types

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps kind names to Type implementations. It follows the
// database/sql driver registration pattern: register on setup, look up
// on every parse. Lookups are read-locked so a registry is safe to
// share across concurrent parses.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Type),
	}
}

// Register adds t under its kind name. A nil Type, an empty kind, or a
// kind that is already registered is an error.
func (r *Registry) Register(t Type) error {
	if t == nil {
		return fmt.Errorf("types: Register called with nil Type")
	}

	kind := t.Kind()
	if kind == "" {
		return fmt.Errorf("types: Register called with empty kind")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[kind]; exists {
		return fmt.Errorf("types: kind %q already registered", kind)
	}

	r.entries[kind] = t
	return nil
}

// Lookup retrieves the Type registered under kind.
func (r *Registry) Lookup(kind string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.entries[kind]
	return t, ok
}

// IsRegistered checks whether kind has an implementation.
func (r *Registry) IsRegistered(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[kind]
	return exists
}

// Kinds returns every registered kind name, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.entries))
	for kind := range r.entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Clone returns an independent registry holding the same entries.
// Registering on the clone leaves the source untouched.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clone := NewRegistry()
	for kind, t := range r.entries {
		clone.entries[kind] = t
	}
	return clone
}

// Default returns the shared registry pre-populated with the built-in
// kinds. Callers that need extra kinds clone it or build their own; the
// engine always takes the registry to use explicitly.
func Default() *Registry {
	return defaultRegistry
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range builtins() {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}
