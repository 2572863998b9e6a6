/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package numeral

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps qualified system names to systems.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]System
}

// NewRegistry returns a registry holding systems.
func NewRegistry(systems ...System) (*Registry, error) {
	r := &Registry{systems: make(map[string]System, len(systems))}
	for _, s := range systems {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a new registry seeded with the built-in systems. Each call returns an
// independent registry, so callers may Register extra systems without affecting others.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtins...)
	if err != nil {
		panic(err)
	}
	return r
}

// ListSystems returns the built-in systems keyed by qualified name.
func ListSystems() map[string]System {
	out := make(map[string]System, len(builtins))
	for _, s := range builtins {
		out[s.Name()] = s
	}
	return out
}

// Register adds s under s.Name().
func (r *Registry) Register(s System) error {
	if s == nil {
		return fmt.Errorf("cannot register a nil system")
	}
	name := s.Name()
	if name == "" {
		return fmt.Errorf("cannot register a system without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.systems[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
	}
	r.systems[name] = s
	return nil
}

// Lookup returns the system registered under name.
func (r *Registry) Lookup(name string) (System, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Systems returns a snapshot of the registry keyed by name.
func (r *Registry) Systems() map[string]System {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]System, len(r.systems))
	for name, s := range r.systems {
		out[name] = s
	}
	return out
}
