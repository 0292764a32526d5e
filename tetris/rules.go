package tetris

import (
	"fmt"
	"sort"
	"sync"
)

// RotationSystemRegistry maps names to rotation-system prototypes. Lookup
// clones the prototype, so every caller gets an instance it can share with
// its own game states. The registry is written at registration time and read
// thereafter.
type RotationSystemRegistry struct {
	mu      sync.RWMutex
	systems map[string]RotationSystem
}

var rotationSystems = sync.OnceValue(func() *RotationSystemRegistry {
	r := &RotationSystemRegistry{systems: make(map[string]RotationSystem)}
	r.Register(NewSRS())
	return r
})

// RotationSystems returns the process-wide rotation-system registry. The
// first access initialises it with the built-in "SRS" system.
func RotationSystems() *RotationSystemRegistry {
	return rotationSystems()
}

// Register stores a prototype under its own name, replacing any previous
// entry. Names are exact-match and case-sensitive.
func (r *RotationSystemRegistry) Register(prototype RotationSystem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systems[prototype.Name()] = prototype
}

// Create returns a fresh instance of the named system, or
// ErrUnknownRotationSystem.
func (r *RotationSystemRegistry) Create(name string) (RotationSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prototype, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRotationSystem, name)
	}
	return prototype.Clone(), nil
}

// Names returns the registered names, sorted.
func (r *RotationSystemRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
