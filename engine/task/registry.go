package task

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps canonical task names to their definitions. It is
// populated once at startup by explicit registration and read-only
// afterwards; there is no runtime string-to-symbol resolution.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a task definition. Registering a nil definition, a
// definition without a name or implementation, or a duplicate name is
// an error. A definition with no declared shapes gets a single
// zero-argument form.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("cannot register a nil task")
	}
	if def.Name == "" {
		return fmt.Errorf("cannot register a task without a name")
	}
	if def.Run == nil {
		return fmt.Errorf("task %s has no implementation", def.Name)
	}
	if len(def.Shapes) == 0 {
		def.Shapes = []Shape{Fixed()}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("task %s is already registered", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// MustRegister registers a definition and panics on error. Intended for
// the startup registration block, where a failure is a programming
// mistake.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for a canonical name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the deduplicated, sorted list of discoverable task
// names. Hidden tasks are excluded, matching the discovery contract
// that reserved namespaces never appear in listings or suggestions.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name, def := range r.defs {
		if def.Hidden {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
