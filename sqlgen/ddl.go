// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlgen

import (
	"strconv"
	"strings"

	"github.com/woozymasta/changedoc/database"
)

// generateCreateTable renders CREATE TABLE with inline column definitions.
func generateCreateTable(stmt CreateTable, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("CREATE TABLE ")
	builder.WriteString(objectName(db, stmt.Table))
	builder.WriteString(" (")

	primaryKeys := make([]string, 0, 1)
	for i, column := range stmt.Columns {
		if i > 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(columnDefinition(column, db))
		if column.PrimaryKey {
			primaryKeys = append(primaryKeys, column.Name)
		}
	}

	if len(primaryKeys) > 0 {
		builder.WriteString(", CONSTRAINT ")
		builder.WriteString(db.EscapeName("PK_" + strings.ToUpper(stmt.Table.Name)))
		builder.WriteString(" PRIMARY KEY (")
		builder.WriteString(db.EscapeNames(primaryKeys))
		builder.WriteString(")")
	}

	builder.WriteString(")")

	if stmt.Remarks != "" && db.ShortName == "mysql" {
		builder.WriteString(" COMMENT=")
		builder.WriteString(db.Literal(stmt.Remarks))
	}

	if stmt.Tablespace != "" && supportsTablespace(db) {
		builder.WriteString(" TABLESPACE ")
		builder.WriteString(stmt.Tablespace)
	}

	out := single(db, builder.String())
	if stmt.Remarks != "" && supportsCommentOn(db) {
		out = append(out, single(db, "COMMENT ON TABLE "+objectName(db, stmt.Table)+" IS "+db.Literal(stmt.Remarks))...)
	}

	return out
}

// columnDefinition renders one column for CREATE TABLE and ADD COLUMN.
func columnDefinition(column Column, db *database.Database) string {
	parts := []string{db.EscapeName(column.Name)}
	if dataType := db.DataType(column.Type); dataType != "" {
		parts = append(parts, dataType)
	}

	if column.AutoIncrement && db.AutoIncrementClause != "" {
		parts = append(parts, db.AutoIncrementClause)
	}

	if column.DefaultValue != nil {
		parts = append(parts, "DEFAULT "+db.Literal(column.DefaultValue))
	}

	if column.NotNull || column.PrimaryKey {
		parts = append(parts, "NOT NULL")
	}

	if column.Unique {
		parts = append(parts, "UNIQUE")
	}

	if column.Remarks != "" && db.ShortName == "mysql" {
		parts = append(parts, "COMMENT "+db.Literal(column.Remarks))
	}

	return strings.Join(parts, " ")
}

// generateDropTable renders DROP TABLE with optional cascade.
func generateDropTable(stmt DropTable, db *database.Database) []SQL {
	text := "DROP TABLE " + objectName(db, stmt.Table)
	if stmt.Cascade {
		switch db.ShortName {
		case "oracle":
			text += " CASCADE CONSTRAINTS"
		case "postgresql", "hsqldb", "h2":
			text += " CASCADE"
		}
	}

	return single(db, text)
}

// generateRenameTable renders the engine specific table rename.
func generateRenameTable(stmt RenameTable, db *database.Database) []SQL {
	switch db.ShortName {
	case "mysql":
		renamed := stmt.Table
		renamed.Name = stmt.NewName
		return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+" RENAME "+objectName(db, renamed))
	case "mssql", "sybase":
		return single(db, "EXEC sp_rename '"+objectName(db, stmt.Table)+"', '"+stmt.NewName+"'")
	case "db2", "derby", "informix":
		return single(db, "RENAME TABLE "+objectName(db, stmt.Table)+" TO "+db.EscapeName(stmt.NewName))
	default:
		return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+" RENAME TO "+db.EscapeName(stmt.NewName))
	}
}

// generateAddColumn renders ALTER TABLE ... ADD.
func generateAddColumn(stmt AddColumn, db *database.Database) []SQL {
	return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+" ADD "+columnDefinition(stmt.Column, db))
}

// generateDropColumn renders ALTER TABLE ... DROP COLUMN.
func generateDropColumn(stmt DropColumn, db *database.Database) []SQL {
	return single(db, "ALTER TABLE "+objectName(db, stmt.Table)+" DROP COLUMN "+db.EscapeName(stmt.Column))
}

// generateRenameColumn renders the engine specific column rename.
func generateRenameColumn(stmt RenameColumn, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	oldName := db.EscapeName(stmt.Column)
	newName := db.EscapeName(stmt.NewName)

	switch db.ShortName {
	case "mysql":
		text := "ALTER TABLE " + table + " CHANGE " + oldName + " " + newName + " " + db.DataType(stmt.DataType)
		if stmt.Remarks != "" {
			text += " COMMENT " + db.Literal(stmt.Remarks)
		}

		return single(db, text)
	case "mssql", "sybase":
		return single(db, "EXEC sp_rename '"+table+"."+oldName+"', '"+stmt.NewName+"', 'COLUMN'")
	case "hsqldb", "h2":
		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+oldName+" RENAME TO "+newName)
	case "derby", "informix":
		return single(db, "RENAME COLUMN "+table+"."+oldName+" TO "+newName)
	case "firebird":
		return single(db, "ALTER TABLE "+table+" ALTER COLUMN "+oldName+" TO "+newName)
	default:
		return single(db, "ALTER TABLE "+table+" RENAME COLUMN "+oldName+" TO "+newName)
	}
}

// generateCreateIndex renders CREATE [UNIQUE] INDEX.
func generateCreateIndex(stmt CreateIndex, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("CREATE ")
	if stmt.Unique {
		builder.WriteString("UNIQUE ")
	}

	builder.WriteString("INDEX ")
	builder.WriteString(db.EscapeName(stmt.Name))
	builder.WriteString(" ON ")
	builder.WriteString(objectName(db, stmt.Table))
	builder.WriteString("(")
	builder.WriteString(db.EscapeNames(stmt.Columns))
	builder.WriteString(")")

	if stmt.Tablespace != "" && supportsTablespace(db) {
		builder.WriteString(" TABLESPACE ")
		builder.WriteString(stmt.Tablespace)
	}

	return single(db, builder.String())
}

// generateDropIndex renders DROP INDEX.
func generateDropIndex(stmt DropIndex, db *database.Database) []SQL {
	switch db.ShortName {
	case "mysql", "mssql":
		return single(db, "DROP INDEX "+db.EscapeName(stmt.Name)+" ON "+objectName(db, stmt.Table))
	case "sybase":
		return single(db, "DROP INDEX "+db.EscapeName(stmt.Table.Name)+"."+db.EscapeName(stmt.Name))
	default:
		return single(db, "DROP INDEX "+db.EscapeObjectName(stmt.Table.Catalog, stmt.Table.Schema, stmt.Name))
	}
}

// generateAddAutoIncrement renders the column identity conversion.
func generateAddAutoIncrement(stmt AddAutoIncrement, db *database.Database) []SQL {
	table := objectName(db, stmt.Table)
	column := db.EscapeName(stmt.Column)

	switch db.ShortName {
	case "mysql":
		out := single(db, "ALTER TABLE "+table+" MODIFY "+column+" "+db.DataType(stmt.DataType)+" AUTO_INCREMENT")
		if stmt.StartWith != nil {
			out = append(out, single(db, "ALTER TABLE "+table+" AUTO_INCREMENT="+strconv.FormatInt(*stmt.StartWith, 10))...)
		}

		return out
	case "postgresql":
		text := "ALTER TABLE " + table + " ALTER COLUMN " + column + " ADD GENERATED BY DEFAULT AS IDENTITY"
		if options := identityOptions(stmt.StartWith, stmt.IncrementBy); options != "" {
			text += " (" + options + ")"
		}

		return single(db, text)
	default:
		text := "ALTER TABLE " + table + " ALTER COLUMN " + column + " " + db.DataType(stmt.DataType) + " " + db.AutoIncrementClause
		if options := identityOptions(stmt.StartWith, stmt.IncrementBy); options != "" {
			text += " (" + options + ")"
		}

		return single(db, text)
	}
}

// identityOptions renders START WITH / INCREMENT BY options.
func identityOptions(startWith, incrementBy *int64) string {
	parts := make([]string, 0, 2)
	if startWith != nil {
		parts = append(parts, "START WITH "+strconv.FormatInt(*startWith, 10))
	}

	if incrementBy != nil {
		parts = append(parts, "INCREMENT BY "+strconv.FormatInt(*incrementBy, 10))
	}

	return strings.Join(parts, " ")
}

// generateCreateSequence renders CREATE SEQUENCE with options.
func generateCreateSequence(stmt CreateSequence, db *database.Database) []SQL {
	var builder strings.Builder
	builder.WriteString("CREATE SEQUENCE ")
	builder.WriteString(objectName(db, stmt.Sequence))

	writeOption := func(keyword string, value *int64) {
		if value == nil {
			return
		}

		builder.WriteString(" ")
		builder.WriteString(keyword)
		builder.WriteString(" ")
		builder.WriteString(strconv.FormatInt(*value, 10))
	}

	writeOption("START WITH", stmt.StartValue)
	writeOption("INCREMENT BY", stmt.IncrementBy)
	writeOption("MINVALUE", stmt.MinValue)
	writeOption("MAXVALUE", stmt.MaxValue)
	writeOption("CACHE", stmt.CacheSize)

	if stmt.Cycle {
		builder.WriteString(" CYCLE")
	}

	if stmt.Ordered && db.ShortName == "oracle" {
		builder.WriteString(" ORDER")
	}

	return single(db, builder.String())
}

// generateCreateView renders CREATE [OR REPLACE] VIEW.
func generateCreateView(stmt CreateView, db *database.Database) []SQL {
	prefix := "CREATE VIEW "
	if stmt.Replace {
		switch db.ShortName {
		case "mysql", "oracle", "postgresql", "h2", "db2":
			prefix = "CREATE OR REPLACE VIEW "
		case "mssql":
			prefix = "CREATE OR ALTER VIEW "
		}
	}

	return single(db, prefix+objectName(db, stmt.View)+" AS "+strings.TrimSpace(stmt.SelectQuery))
}

// generateRenameView renders the engine specific view rename.
func generateRenameView(stmt RenameView, db *database.Database) []SQL {
	renamed := stmt.View
	renamed.Name = stmt.NewName

	switch db.ShortName {
	case "mysql":
		return single(db, "RENAME TABLE "+objectName(db, stmt.View)+" TO "+objectName(db, renamed))
	case "mssql", "sybase":
		return single(db, "EXEC sp_rename '"+objectName(db, stmt.View)+"', '"+stmt.NewName+"'")
	case "oracle":
		return single(db, "RENAME "+objectName(db, stmt.View)+" TO "+db.EscapeName(stmt.NewName))
	default:
		return single(db, "ALTER VIEW "+objectName(db, stmt.View)+" RENAME TO "+db.EscapeName(stmt.NewName))
	}
}

// supportsTablespace reports whether TABLESPACE clauses are rendered.
func supportsTablespace(db *database.Database) bool {
	switch db.ShortName {
	case "oracle", "postgresql", "db2":
		return true
	default:
		return false
	}
}

// supportsCommentOn reports whether COMMENT ON statements are rendered.
func supportsCommentOn(db *database.Database) bool {
	switch db.ShortName {
	case "oracle", "postgresql", "h2", "db2":
		return true
	default:
		return false
	}
}
