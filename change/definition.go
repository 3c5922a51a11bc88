// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"fmt"
	"slices"
	"strings"

	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

// GenerateFunc builds database independent statements for a populated change.
type GenerateFunc func(c *Change, db *database.Database) ([]sqlgen.Statement, error)

// SupportsFunc overrides the default statement based support check.
type SupportsFunc func(c *Change, db *database.Database) bool

// VolatileFunc reports statements that cannot be previewed offline.
type VolatileFunc func(c *Change, db *database.Database) bool

// InverseFunc builds the changes that undo c.
type InverseFunc func(c *Change, r *Registry) ([]*Change, error)

// Definition is the registered metadata and behavior of one change type.
type Definition struct {
	// Name is the serialized change type name.
	Name string
	// Description is the human readable summary.
	Description string
	// Params declares every configurable parameter.
	Params []Parameter
	// Notes holds free-text support notes keyed by database short name.
	Notes map[string]string

	Generate GenerateFunc
	Supports SupportsFunc
	Volatile VolatileFunc
	// Inverse is nil for change types without automatic rollback.
	Inverse InverseFunc
}

// Param returns the parameter declared under name.
func (d *Definition) Param(name string) (Parameter, bool) {
	for _, param := range d.Params {
		if param.Name == name {
			return param, true
		}
	}

	return Parameter{}, false
}

// SortedParams returns parameters ordered by name.
func (d *Definition) SortedParams() []Parameter {
	out := slices.Clone(d.Params)
	slices.SortStableFunc(out, func(a, b Parameter) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Note returns trimmed support notes for a database short name.
func (d *Definition) Note(shortName string) string {
	if d.Notes == nil {
		return ""
	}

	return strings.TrimSpace(d.Notes[shortName])
}

// validate checks the definition before registration.
func (d *Definition) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}

	seen := make(map[string]struct{}, len(d.Params))
	for _, param := range d.Params {
		if strings.TrimSpace(param.Name) == "" {
			return fmt.Errorf("%w: %s has a parameter without name", ErrInvalidDefinition, d.Name)
		}

		if _, exists := seen[param.Name]; exists {
			return fmt.Errorf("%w: %s declares parameter %q twice", ErrInvalidDefinition, d.Name, param.Name)
		}

		seen[param.Name] = struct{}{}
	}

	return nil
}
