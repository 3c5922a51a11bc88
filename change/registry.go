// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps change type names to their definitions.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry returns a registry holding defs.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	registry := &Registry{defs: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// DefaultRegistry returns a registry of every built-in change type.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(Builtins()...)
	if err != nil {
		panic(err)
	}

	return registry
}

// Register adds one definition.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}

	if err := def.validate(); err != nil {
		return err
	}

	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateChange, def.Name)
	}

	r.defs[def.Name] = def
	return nil
}

// Len returns the number of registered change types.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Names returns registered change type names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// Definition returns the definition registered under name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	def, ok := r.defs[strings.TrimSpace(name)]
	return def, ok
}

// Create returns an empty change of the named type.
func (r *Registry) Create(name string) (*Change, error) {
	def, ok := r.Definition(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownChange, name)
	}

	return newChange(def, r), nil
}

// create returns a change of the named type with values assigned.
func (r *Registry) create(name string, values map[string]any) (*Change, error) {
	created, err := r.Create(name)
	if err != nil {
		return nil, err
	}

	for key, value := range values {
		if err := created.Set(key, value); err != nil {
			return nil, err
		}
	}

	return created, nil
}
