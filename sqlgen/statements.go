// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

// Package sqlgen turns typed migration statements into dialect specific SQL.
//
// Each statement is a plain struct. Supports reports whether a database can
// execute a statement and Generate renders it:
//
//	stmt := sqlgen.AddColumn{Table: sqlgen.Table{Name: "person"}, Column: sqlgen.Column{Name: "address", Type: "varchar(255)"}}
//	out, err := sqlgen.Generate(stmt, database.MySQL())
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(out[0]) // ALTER TABLE person ADD address VARCHAR(255);
package sqlgen

// Statement is one database-independent migration statement.
type Statement interface {
	// StatementName returns a stable statement identifier for logs and errors.
	StatementName() string
}

// Table identifies a table, view or sequence by catalog, schema and name.
type Table struct {
	Catalog string
	Schema  string
	Name    string
}

// Column describes one column definition.
type Column struct {
	Name          string
	Type          string
	DefaultValue  any
	AutoIncrement bool
	PrimaryKey    bool
	NotNull       bool
	Unique        bool
	Remarks       string
}

// ColumnValue pairs a column with a value for data statements.
type ColumnValue struct {
	Name  string
	Value any
}

// CreateTable creates a table.
type CreateTable struct {
	Table      Table
	Columns    []Column
	Tablespace string
	Remarks    string
}

// DropTable drops a table.
type DropTable struct {
	Table   Table
	Cascade bool
}

// RenameTable renames a table.
type RenameTable struct {
	Table   Table
	NewName string
}

// AddColumn adds a column to an existing table.
type AddColumn struct {
	Table  Table
	Column Column
}

// DropColumn removes a column.
type DropColumn struct {
	Table  Table
	Column string
}

// RenameColumn renames a column.
type RenameColumn struct {
	Table    Table
	Column   string
	NewName  string
	DataType string
	Remarks  string
}

// CreateIndex creates an index.
type CreateIndex struct {
	Table      Table
	Name       string
	Columns    []string
	Unique     bool
	Tablespace string
}

// DropIndex drops an index.
type DropIndex struct {
	Table Table
	Name  string
}

// AddPrimaryKey adds a primary key constraint.
type AddPrimaryKey struct {
	Table      Table
	Columns    []string
	Constraint string
	Tablespace string
}

// DropPrimaryKey drops a primary key constraint.
type DropPrimaryKey struct {
	Table      Table
	Constraint string
}

// AddForeignKey adds a foreign key constraint.
type AddForeignKey struct {
	Table             Table
	Columns           []string
	Referenced        Table
	ReferencedColumns []string
	Constraint        string
	OnDelete          string
	OnUpdate          string
	Deferrable        bool
	InitiallyDeferred bool
}

// DropForeignKey drops a foreign key constraint.
type DropForeignKey struct {
	Table      Table
	Constraint string
}

// AddUniqueConstraint adds a unique constraint.
type AddUniqueConstraint struct {
	Table             Table
	Columns           []string
	Constraint        string
	Tablespace        string
	Deferrable        bool
	InitiallyDeferred bool
}

// DropUniqueConstraint drops a unique constraint.
type DropUniqueConstraint struct {
	Table      Table
	Constraint string
	Columns    []string
}

// SetNullable adds or drops a NOT NULL constraint.
type SetNullable struct {
	Table      Table
	Column     string
	DataType   string
	Nullable   bool
	Constraint string
}

// AddDefaultValue sets a column default.
type AddDefaultValue struct {
	Table    Table
	Column   string
	DataType string
	Value    any
}

// DropDefaultValue removes a column default.
type DropDefaultValue struct {
	Table    Table
	Column   string
	DataType string
}

// AddAutoIncrement converts a column to auto-increment.
type AddAutoIncrement struct {
	Table       Table
	Column      string
	DataType    string
	StartWith   *int64
	IncrementBy *int64
}

// CreateSequence creates a sequence.
type CreateSequence struct {
	Sequence    Table
	StartValue  *int64
	IncrementBy *int64
	MinValue    *int64
	MaxValue    *int64
	CacheSize   *int64
	Cycle       bool
	Ordered     bool
}

// DropSequence drops a sequence.
type DropSequence struct {
	Sequence Table
}

// CreateView creates a view.
type CreateView struct {
	View        Table
	SelectQuery string
	Replace     bool
}

// DropView drops a view.
type DropView struct {
	View Table
}

// RenameView renames a view.
type RenameView struct {
	View    Table
	NewName string
}

// Insert inserts one row.
type Insert struct {
	Table   Table
	Columns []ColumnValue
}

// Update updates rows.
type Update struct {
	Table   Table
	Columns []ColumnValue
	Where   string
}

// Delete deletes rows.
type Delete struct {
	Table Table
	Where string
}

// RawSQL passes SQL text through unchanged.
type RawSQL struct {
	SQL string
	// EndDelimiter overrides the database terminator when set; "" means none.
	EndDelimiter *string
}

// TagDatabase tags the last applied change set in the changelog table.
type TagDatabase struct {
	Tag            string
	ChangelogTable string
}

func (CreateTable) StatementName() string          { return "createTable" }
func (DropTable) StatementName() string            { return "dropTable" }
func (RenameTable) StatementName() string          { return "renameTable" }
func (AddColumn) StatementName() string            { return "addColumn" }
func (DropColumn) StatementName() string           { return "dropColumn" }
func (RenameColumn) StatementName() string         { return "renameColumn" }
func (CreateIndex) StatementName() string          { return "createIndex" }
func (DropIndex) StatementName() string            { return "dropIndex" }
func (AddPrimaryKey) StatementName() string        { return "addPrimaryKey" }
func (DropPrimaryKey) StatementName() string       { return "dropPrimaryKey" }
func (AddForeignKey) StatementName() string        { return "addForeignKey" }
func (DropForeignKey) StatementName() string       { return "dropForeignKey" }
func (AddUniqueConstraint) StatementName() string  { return "addUniqueConstraint" }
func (DropUniqueConstraint) StatementName() string { return "dropUniqueConstraint" }
func (SetNullable) StatementName() string          { return "setNullable" }
func (AddDefaultValue) StatementName() string      { return "addDefaultValue" }
func (DropDefaultValue) StatementName() string     { return "dropDefaultValue" }
func (AddAutoIncrement) StatementName() string     { return "addAutoIncrement" }
func (CreateSequence) StatementName() string       { return "createSequence" }
func (DropSequence) StatementName() string         { return "dropSequence" }
func (CreateView) StatementName() string           { return "createView" }
func (DropView) StatementName() string             { return "dropView" }
func (RenameView) StatementName() string           { return "renameView" }
func (Insert) StatementName() string               { return "insert" }
func (Update) StatementName() string               { return "update" }
func (Delete) StatementName() string               { return "delete" }
func (RawSQL) StatementName() string               { return "sql" }
func (TagDatabase) StatementName() string          { return "tagDatabase" }
