// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlgen

import (
	"strings"

	"github.com/woozymasta/changedoc/database"
)

// generateAddPrimaryKey renders ALTER TABLE ... ADD PRIMARY KEY.
func generateAddPrimaryKey(stmt AddPrimaryKey, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("ALTER TABLE ")
	builder.WriteString(objectName(db, stmt.Table))
	builder.WriteString(" ADD ")
	if stmt.Constraint != "" {
		builder.WriteString("CONSTRAINT ")
		builder.WriteString(db.EscapeName(stmt.Constraint))
		builder.WriteString(" ")
	}

	builder.WriteString("PRIMARY KEY (")
	builder.WriteString(db.EscapeNames(stmt.Columns))
	builder.WriteString(")")

	if stmt.Tablespace != "" && supportsTablespace(db) {
		builder.WriteString(" USING INDEX TABLESPACE ")
		builder.WriteString(stmt.Tablespace)
	}

	return single(db, builder.String())
}

// generateDropPrimaryKey renders the primary key drop.
func generateDropPrimaryKey(stmt DropPrimaryKey, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	if db.ShortName == "mysql" {
		return single(db, "ALTER TABLE "+table+" DROP PRIMARY KEY")
	}

	constraint := stmt.Constraint
	if constraint == "" {
		constraint = "PK_" + strings.ToUpper(stmt.Table.Name)
	}

	return single(db, "ALTER TABLE "+table+" DROP CONSTRAINT "+db.EscapeName(constraint))
}

// generateAddForeignKey renders ALTER TABLE ... ADD CONSTRAINT ... FOREIGN KEY.
func generateAddForeignKey(stmt AddForeignKey, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("ALTER TABLE ")
	builder.WriteString(objectName(db, stmt.Table))
	builder.WriteString(" ADD CONSTRAINT ")
	builder.WriteString(db.EscapeName(stmt.Constraint))
	builder.WriteString(" FOREIGN KEY (")
	builder.WriteString(db.EscapeNames(stmt.Columns))
	builder.WriteString(") REFERENCES ")
	builder.WriteString(objectName(db, stmt.Referenced))
	builder.WriteString(" (")
	builder.WriteString(db.EscapeNames(stmt.ReferencedColumns))
	builder.WriteString(")")

	if action := referentialAction(stmt.OnUpdate, db); action != "" && db.ShortName != "oracle" {
		builder.WriteString(" ON UPDATE ")
		builder.WriteString(action)
	}

	if action := referentialAction(stmt.OnDelete, db); action != "" {
		builder.WriteString(" ON DELETE ")
		builder.WriteString(action)
	}

	writeDeferrable(&builder, stmt.Deferrable, stmt.InitiallyDeferred)
	return single(db, builder.String())
}

// referentialAction normalizes ON UPDATE / ON DELETE actions per engine.
func referentialAction(action string, db *database.Database) string {
	action = strings.ToUpper(strings.TrimSpace(action))
	if action == "RESTRICT" && db.ShortName == "mssql" {
		return "NO ACTION"
	}

	return action
}

// writeDeferrable appends constraint deferral clauses.
func writeDeferrable(builder *strings.Builder, deferrable, initiallyDeferred bool) {
	if deferrable {
		builder.WriteString(" DEFERRABLE")
	}

	if initiallyDeferred {
		builder.WriteString(" INITIALLY DEFERRED")
	}
}

// generateDropForeignKey renders the foreign key drop.
func generateDropForeignKey(stmt DropForeignKey, db *database.Database) []SQL {
	keyword := " DROP CONSTRAINT "
	if db.ShortName == "mysql" {
		keyword = " DROP FOREIGN KEY "
	}

	return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+keyword+db.EscapeName(stmt.Constraint))
}

// generateAddUniqueConstraint renders ALTER TABLE ... ADD CONSTRAINT ... UNIQUE.
func generateAddUniqueConstraint(stmt AddUniqueConstraint, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("ALTER TABLE ")
	builder.WriteString(objectName(db, stmt.Table))
	builder.WriteString(" ADD ")
	if stmt.Constraint != "" {
		builder.WriteString("CONSTRAINT ")
		builder.WriteString(db.EscapeName(stmt.Constraint))
		builder.WriteString(" ")
	}

	builder.WriteString("UNIQUE (")
	builder.WriteString(db.EscapeNames(stmt.Columns))
	builder.WriteString(")")

	writeDeferrable(&builder, stmt.Deferrable, stmt.InitiallyDeferred)

	if stmt.Tablespace != "" && supportsTablespace(db) {
		builder.WriteString(" USING INDEX TABLESPACE ")
		builder.WriteString(stmt.Tablespace)
	}

	return single(db, builder.String())
}

// generateDropUniqueConstraint renders the unique constraint drop.
func generateDropUniqueConstraint(stmt DropUniqueConstraint, db *database.Database) []SQL {
	keyword := " DROP CONSTRAINT "
	if db.ShortName == "mysql" {
		keyword = " DROP KEY "
	}

	return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+keyword+db.EscapeName(stmt.Constraint))
}

// generateSetNullable renders NOT NULL add/drop.
func generateSetNullable(stmt SetNullable, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	column := db.EscapeName(stmt.Column)

	nullClause := "NOT NULL"
	if stmt.Nullable {
		nullClause = "NULL"
	}

	switch db.ShortName {
	case "mysql":
		return single(db, "ALTER TABLE "+table+" MODIFY "+column+" "+db.DataType(stmt.DataType)+" "+nullClause)
	case "mssql", "sybase":
		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+column+" "+db.DataType(stmt.DataType)+" "+nullClause)
	case "oracle":
		text := "ALTER TABLE " + table + " MODIFY " + column
		if stmt.Constraint != "" && !stmt.Nullable {
			text += " CONSTRAINT " + db.EscapeName(stmt.Constraint)
		}

		return single(db, text+" "+nullClause)
	case "informix":
		return single(db, "ALTER TABLE "+table+" MODIFY ("+column+" "+db.DataType(stmt.DataType)+" "+nullClause+")")
	default:
		action := " SET NOT NULL"
		if stmt.Nullable {
			action = " DROP NOT NULL"
		}

		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+column+action)
	}
}

// defaultConstraintName names SQL Server default constraints.
func defaultConstraintName(table Table, column string) string {
	return "DF_" + table.Name + "_" + column
}

// generateAddDefaultValue renders the column default assignment.
func generateAddDefaultValue(stmt AddDefaultValue, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	column := db.EscapeName(stmt.Column)
	value := db.Literal(stmt.Value)

	switch db.ShortName {
	case "mysql":
		return single(db, "ALTER TABLE "+table+" ALTER "+column+" SET DEFAULT "+value)
	case "mssql":
		constraint := db.EscapeName(defaultConstraintName(stmt.Table, stmt.Column))
		return single(db, "ALTER TABLE "+table+" ADD CONSTRAINT "+constraint+" DEFAULT "+value+" FOR "+column)
	case "oracle":
		return single(db, "ALTER TABLE "+table+" MODIFY "+column+" DEFAULT "+value)
	case "sybase":
		return single(db, "ALTER TABLE "+table+" REPLACE "+column+" DEFAULT "+value)
	default:
		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+column+" SET DEFAULT "+value)
	}
}

// generateDropDefaultValue renders the column default removal.
func generateDropDefaultValue(stmt DropDefaultValue, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	column := db.EscapeName(stmt.Column)

	switch db.ShortName {
	case "mysql":
		return single(db, "ALTER TABLE "+table+" ALTER "+column+" DROP DEFAULT")
	case "mssql":
		return single(db, "ALTER TABLE "+table+" DROP CONSTRAINT "+db.EscapeName(defaultConstraintName(stmt.Table, stmt.Column)))
	case "oracle":
		return single(db, "ALTER TABLE "+table+" MODIFY "+column+" DEFAULT NULL")
	case "sybase":
		return single(db, "ALTER TABLE "+table+" REPLACE "+column+" DEFAULT NULL")
	default:
		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+column+" DROP DEFAULT")
	}
}
