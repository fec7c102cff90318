package mapper

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named mappers. Names are unique; registration of a
// duplicate name fails rather than replacing the existing mapper.
type Registry struct {
	mu      sync.RWMutex
	mappers map[string]*Mapper
}

// NewRegistry creates an empty mapper registry.
func NewRegistry() *Registry {
	return &Registry{mappers: make(map[string]*Mapper)}
}

// Register adds a mapper under its own name.
func (r *Registry) Register(m *Mapper) error {
	if m == nil {
		return fmt.Errorf("cannot register a nil mapper")
	}
	if m.Name() == "" {
		return fmt.Errorf("cannot register a mapper without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mappers[m.Name()]; exists {
		return fmt.Errorf("mapper %q is already registered", m.Name())
	}
	r.mappers[m.Name()] = m
	return nil
}

// Unregister removes the mapper registered under name, freeing the name for
// reuse. It reports whether a mapper was actually removed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mappers[name]; !exists {
		return false
	}
	delete(r.mappers, name)
	return true
}

// Lookup returns the mapper registered under name, if any.
func (r *Registry) Lookup(name string) (*Mapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mappers[name]
	return m, ok
}

// Names returns all registered mapper names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mappers))
	for name := range r.mappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered mappers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappers)
}
