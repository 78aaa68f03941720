package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered actions.
type Registry struct {
	mu       sync.RWMutex
	byChoice map[int]Action
	byName   map[string]Action
}

// NewRegistry creates a new action registry.
func NewRegistry() *Registry {
	return &Registry{
		byChoice: make(map[int]Action),
		byName:   make(map[string]Action),
	}
}

// Register adds an action to the registry.
// Returns an error if the choice number or name is already registered.
func (r *Registry) Register(a Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.Choice() < 1 {
		return fmt.Errorf("action choice must be positive: %s", a.Name())
	}
	if _, exists := r.byChoice[a.Choice()]; exists {
		return fmt.Errorf("action choice already registered: %d", a.Choice())
	}
	if _, exists := r.byName[a.Name()]; exists {
		return fmt.Errorf("action already registered: %s", a.Name())
	}

	r.byChoice[a.Choice()] = a
	r.byName[a.Name()] = a
	return nil
}

// Find looks up an action by menu choice.
func (r *Registry) Find(choice int) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byChoice[choice]
	return a, ok
}

// FindByName looks up an action by name.
func (r *Registry) FindByName(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byName[name]
	return a, ok
}

// All returns all actions sorted by choice.
func (r *Registry) All() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	choices := make([]int, 0, len(r.byChoice))
	for c := range r.byChoice {
		choices = append(choices, c)
	}
	sort.Ints(choices)

	result := make([]Action, len(choices))
	for i, c := range choices {
		result[i] = r.byChoice[c]
	}
	return result
}

// DefaultRegistry is the global action registry.
var DefaultRegistry = NewRegistry()

// Register adds an action to the default registry.
func Register(a Action) {
	if err := DefaultRegistry.Register(a); err != nil {
		panic(err)
	}
}
