// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import "github.com/woozymasta/changedoc/sqlgen"

// ColumnConfig is one nested column element.
type ColumnConfig struct {
	Name          string
	Type          string
	Value         any
	DefaultValue  any
	Remarks       string
	AutoIncrement bool
	Constraints   *Constraints
}

// Constraints holds inline column constraints.
type Constraints struct {
	// Nullable is nil when nullability is not declared.
	Nullable   *bool
	PrimaryKey bool
	Unique     bool
}

// NotNull reports an explicit NOT NULL constraint.
func (c *Constraints) NotNull() bool {
	return c != nil && c.Nullable != nil && !*c.Nullable
}

// Column converts the config into a statement column definition.
func (col ColumnConfig) Column() sqlgen.Column {
	out := sqlgen.Column{
		Name:          col.Name,
		Type:          col.Type,
		DefaultValue:  col.DefaultValue,
		AutoIncrement: col.AutoIncrement,
		Remarks:       col.Remarks,
	}

	if col.Constraints != nil {
		out.NotNull = col.Constraints.NotNull()
		out.PrimaryKey = col.Constraints.PrimaryKey
		out.Unique = col.Constraints.Unique
	}

	return out
}

// ColumnValue converts the config into a column assignment.
func (col ColumnConfig) ColumnValue() sqlgen.ColumnValue {
	return sqlgen.ColumnValue{Name: col.Name, Value: col.Value}
}
