// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

// Package database describes target database engines: their names, dialect
// rules and the capabilities used to decide which changes they support.
package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Qualification selects which name parts prefix an object name.
type Qualification int

const (
	// QualifyNone renders bare object names.
	QualifyNone Qualification = iota
	// QualifySchema renders schema.name.
	QualifySchema
	// QualifyCatalog renders catalog.name.
	QualifyCatalog
	// QualifyCatalogSchema renders catalog.schema.name.
	QualifyCatalogSchema
)

// Computed is a database expression rendered without quoting, such as NOW().
type Computed string

// defaultDelimiter terminates every generated statement.
const defaultDelimiter = ";"

// Database is one target engine descriptor.
type Database struct {
	// ShortName is the stable identifier used in metadata and file output.
	ShortName string
	// ProductName is the display name shown in documentation.
	ProductName string
	// DriverName is the database/sql driver used to check generated SQL.
	DriverName string

	// Sequences reports CREATE/DROP SEQUENCE support.
	Sequences bool
	// AutoIncrement reports auto-increment column support.
	AutoIncrement bool
	// AlterConstraints reports adding and dropping constraints with ALTER TABLE.
	AlterConstraints bool
	// RenameColumn reports column rename support.
	RenameColumn bool
	// DropColumn reports column drop support.
	DropColumn bool
	// RenameView reports view rename support.
	RenameView bool
	// Deferrable reports deferrable constraint support.
	Deferrable bool
	// Placeholder marks the catch-all engine that generates no SQL.
	Placeholder bool

	// QuoteOpen and QuoteClose wrap identifiers; empty means unquoted.
	QuoteOpen  string
	QuoteClose string
	// Qualify selects object name qualification.
	Qualify Qualification
	// AutoIncrementClause is appended to auto-increment column definitions.
	AutoIncrementClause string
	// TrueLiteral and FalseLiteral render boolean values.
	TrueLiteral  string
	FalseLiteral string
	// Types maps lower-case declared type names to engine type names.
	Types map[string]string
}

// String returns the short name.
func (db *Database) String() string {
	return db.ShortName
}

// EndDelimiter returns the statement terminator.
func (db *Database) EndDelimiter() string {
	return defaultDelimiter
}

// EscapeName quotes one identifier.
func (db *Database) EscapeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	return db.QuoteOpen + name + db.QuoteClose
}

// EscapeObjectName renders a qualified, quoted object name.
func (db *Database) EscapeObjectName(catalog, schema, name string) string {
	parts := make([]string, 0, 3)
	switch db.Qualify {
	case QualifyCatalog:
		parts = appendNonEmpty(parts, catalog)
	case QualifySchema:
		parts = appendNonEmpty(parts, schema)
	case QualifyCatalogSchema:
		parts = appendNonEmpty(parts, catalog)
		parts = appendNonEmpty(parts, schema)
	}

	parts = append(parts, name)
	for i, part := range parts {
		parts[i] = db.EscapeName(part)
	}

	return strings.Join(parts, ".")
}

// EscapeNames quotes and joins a comma-separated column list.
func (db *Database) EscapeNames(names []string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if escaped := db.EscapeName(name); escaped != "" {
			out = append(out, escaped)
		}
	}

	return strings.Join(out, ", ")
}

// DataType translates a declared type such as "varchar(255)" into the engine type.
func (db *Database) DataType(declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return ""
	}

	base, args := declared, ""
	if index := strings.Index(declared, "("); index > 0 {
		base, args = strings.TrimSpace(declared[:index]), declared[index:]
	}

	mapped, ok := db.Types[strings.ToLower(base)]
	if !ok {
		return strings.ToUpper(base) + args
	}

	if strings.Contains(mapped, "(") {
		return mapped
	}

	return mapped + args
}

// Literal renders a Go value as an SQL literal.
func (db *Database) Literal(value any) string {
	switch typed := value.(type) {
	case nil:
		return "NULL"
	case Computed:
		return string(typed)
	case string:
		return "'" + strings.ReplaceAll(typed, "'", "''") + "'"
	case bool:
		if typed {
			return db.booleanLiteral(db.TrueLiteral, "TRUE")
		}

		return db.booleanLiteral(db.FalseLiteral, "FALSE")
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(typed), "'", "''") + "'"
	}
}

// booleanLiteral returns configured literal or fallback.
func (db *Database) booleanLiteral(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// appendNonEmpty appends trimmed value when it is not blank.
func appendNonEmpty(parts []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return parts
	}

	return append(parts, value)
}
