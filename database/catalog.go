// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package database

import (
	"fmt"
	"slices"
	"strings"
)

// UnsupportedShortName identifies the placeholder engine.
const UnsupportedShortName = "unsupported"

// Catalog is an ordered set of database descriptors.
type Catalog struct {
	databases []*Database
}

// NewCatalog creates a catalog in the given registration order.
func NewCatalog(databases ...*Database) *Catalog {
	return &Catalog{databases: slices.Clone(databases)}
}

// DefaultCatalog returns all built-in engines.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		MySQL(),
		MSSQL(),
		Oracle(),
		HSQL(),
		Postgres(),
		SQLite(),
		H2(),
		DB2(),
		Derby(),
		Firebird(),
		Sybase(),
		Informix(),
		Unsupported(),
	)
}

// All returns databases in registration order.
func (c *Catalog) All() []*Database {
	return slices.Clone(c.databases)
}

// Len returns the number of registered databases.
func (c *Catalog) Len() int {
	return len(c.databases)
}

// SortedByProductName returns databases ordered by display name.
func (c *Catalog) SortedByProductName() []*Database {
	out := slices.Clone(c.databases)
	slices.SortStableFunc(out, func(a, b *Database) int {
		return strings.Compare(a.ProductName, b.ProductName)
	})

	return out
}

// Lookup finds a database by short name.
func (c *Catalog) Lookup(shortName string) (*Database, bool) {
	shortName = strings.ToLower(strings.TrimSpace(shortName))
	for _, db := range c.databases {
		if db.ShortName == shortName {
			return db, true
		}
	}

	return nil, false
}

// Get finds a database by short name or returns ErrUnknownDatabase.
func (c *Catalog) Get(shortName string) (*Database, error) {
	db, ok := c.Lookup(shortName)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDatabase, shortName)
	}

	return db, nil
}

// ShortNames returns short names in registration order.
func (c *Catalog) ShortNames() []string {
	out := make([]string, 0, len(c.databases))
	for _, db := range c.databases {
		out = append(out, db.ShortName)
	}

	return out
}
