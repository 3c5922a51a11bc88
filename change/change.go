// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

// Change is one populated instance of a change type.
type Change struct {
	// Resources resolves files referenced by parameters such as loadData file.
	Resources fs.FS

	def      *Definition
	registry *Registry
	values   map[string]any
}

// Value pairs a set parameter with its value.
type Value struct {
	Param Parameter
	Value any
}

// newChange creates an empty change bound to its definition.
func newChange(def *Definition, registry *Registry) *Change {
	return &Change{
		def:      def,
		registry: registry,
		values:   make(map[string]any, len(def.Params)),
	}
}

// Name returns the change type name.
func (c *Change) Name() string {
	return c.def.Name
}

// Definition returns the change type definition.
func (c *Change) Definition() *Definition {
	return c.def
}

// Get returns the value set for name.
func (c *Change) Get(name string) (any, bool) {
	value, ok := c.values[name]
	return value, ok
}

// Set assigns a parameter value; nil unsets it.
func (c *Change) Set(name string, value any) error {
	param, ok := c.def.Param(name)
	if !ok {
		return fmt.Errorf("%w %q for %s", ErrUnknownParameter, name, c.def.Name)
	}

	if value == nil {
		delete(c.values, name)
		return nil
	}

	if param.Type == ColumnConfigType && param.Nested() {
		if _, ok := value.([]ColumnConfig); !ok {
			return fmt.Errorf("%w: %s.%s expects []ColumnConfig, got %T", ErrInvalidValue, c.def.Name, name, value)
		}
	}

	c.values[name] = value
	return nil
}

// Unset removes a parameter value.
func (c *Change) Unset(name string) {
	delete(c.values, name)
}

// Values returns every set parameter ordered by name.
func (c *Change) Values() []Value {
	out := make([]Value, 0, len(c.values))
	for _, param := range c.def.SortedParams() {
		value, ok := c.values[param.Name]
		if !ok {
			continue
		}

		out = append(out, Value{Param: param, Value: value})
	}

	return out
}

// StringParam returns a parameter as trimmed text; unset yields "".
func (c *Change) StringParam(name string) string {
	value, ok := c.values[name]
	if !ok || value == nil {
		return ""
	}

	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(fmt.Sprint(value))
}

// BoolParam returns a parameter as bool; unset and unparsable values yield false.
func (c *Change) BoolParam(name string) bool {
	switch typed := c.values[name].(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return false
	}
}

// IntParam returns a parameter as int64; unset and unparsable values yield nil.
func (c *Change) IntParam(name string) *int64 {
	var out int64
	switch typed := c.values[name].(type) {
	case int:
		out = int64(typed)
	case int64:
		out = typed
	case float64:
		out = int64(typed)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return nil
		}

		out = parsed
	default:
		return nil
	}

	return &out
}

// ColumnsParam returns nested column configs.
func (c *Change) ColumnsParam(name string) []ColumnConfig {
	columns, _ := c.values[name].([]ColumnConfig)
	return columns
}

// ListParam splits a comma-separated parameter into trimmed items.
func (c *Change) ListParam(name string) []string {
	text := c.StringParam(name)
	if text == "" {
		return nil
	}

	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// qualified builds a table reference from three parameter names.
func (c *Change) qualified(catalogParam, schemaParam, nameParam string) sqlgen.Table {
	return sqlgen.Table{
		Catalog: c.StringParam(catalogParam),
		Schema:  c.StringParam(schemaParam),
		Name:    c.StringParam(nameParam),
	}
}

// table builds the common catalogName/schemaName/<nameParam> reference.
func (c *Change) table(nameParam string) sqlgen.Table {
	return c.qualified("catalogName", "schemaName", nameParam)
}

// Validate checks that every parameter required on all databases is set.
func (c *Change) Validate() error {
	return c.validateFor(AllDatabases)
}

// validateFor checks parameters required for shortName.
func (c *Change) validateFor(shortName string) error {
	for _, param := range c.def.Params {
		if !param.RequiredOn(shortName) {
			continue
		}

		if _, ok := c.values[param.Name]; !ok {
			return fmt.Errorf("%w %s.%s", ErrMissingParameter, c.def.Name, param.Name)
		}
	}

	return nil
}

// StatementsVolatile reports whether statements cannot be previewed offline.
func (c *Change) StatementsVolatile(db *database.Database) bool {
	if c.def.Volatile == nil {
		return false
	}

	return c.def.Volatile(c, db)
}

// GenerateStatements builds the statements for db.
func (c *Change) GenerateStatements(db *database.Database) ([]sqlgen.Statement, error) {
	if c.StatementsVolatile(db) {
		return nil, fmt.Errorf("%w: %s", ErrVolatileStatements, c.def.Name)
	}

	if c.def.Generate == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoGenerator, c.def.Name)
	}

	shortName := AllDatabases
	if db != nil {
		shortName = db.ShortName
	}

	if err := c.validateFor(shortName); err != nil {
		return nil, err
	}

	return c.def.Generate(c, db)
}

// GenerateSQL builds statements and renders them for db.
func (c *Change) GenerateSQL(db *database.Database) ([]sqlgen.SQL, error) {
	stmts, err := c.GenerateStatements(db)
	if err != nil {
		return nil, err
	}

	return sqlgen.GenerateAll(stmts, db)
}

// Supports reports whether db can apply the change.
func (c *Change) Supports(db *database.Database) bool {
	if db == nil {
		return false
	}

	if c.def.Supports != nil {
		return c.def.Supports(c, db)
	}

	if c.StatementsVolatile(db) {
		return true
	}

	stmts, err := c.GenerateStatements(db)
	if err != nil {
		return false
	}

	for _, stmt := range stmts {
		if !sqlgen.Supports(stmt, db) {
			return false
		}
	}

	return true
}

// SupportsRollback reports whether db can automatically undo the change.
func (c *Change) SupportsRollback(db *database.Database) bool {
	if c.def.Inverse == nil || c.registry == nil {
		return false
	}

	if !c.Supports(db) {
		return false
	}

	inverses, err := c.def.Inverse(c, c.registry)
	if err != nil {
		return false
	}

	for _, inverse := range inverses {
		if !inverse.Supports(db) {
			return false
		}
	}

	return true
}

// Inverse builds the changes that undo c.
func (c *Change) Inverse() ([]*Change, error) {
	if c.def.Inverse == nil || c.registry == nil {
		return nil, nil
	}

	return c.def.Inverse(c, c.registry)
}
