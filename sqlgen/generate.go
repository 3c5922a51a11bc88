// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlgen

import (
	"fmt"

	"github.com/woozymasta/changedoc/database"
)

// SQL is one generated statement text with its terminator.
type SQL struct {
	Text         string
	EndDelimiter string
}

// String returns the statement text followed by its end delimiter.
func (s SQL) String() string {
	return s.Text + s.EndDelimiter
}

// Supports reports whether db can execute stmt.
func Supports(stmt Statement, db *database.Database) bool {
	if db == nil || db.Placeholder {
		return false
	}

	switch typed := stmt.(type) {
	case CreateTable:
		for _, column := range typed.Columns {
			if column.AutoIncrement && !db.AutoIncrement {
				return false
			}
		}

		return true
	case AddColumn:
		return !typed.Column.AutoIncrement || db.AutoIncrement
	case RenameColumn:
		return db.RenameColumn
	case DropColumn:
		return db.DropColumn
	case AddPrimaryKey, DropPrimaryKey, DropForeignKey, DropUniqueConstraint,
		SetNullable, AddDefaultValue, DropDefaultValue:
		return db.AlterConstraints
	case AddForeignKey:
		if (typed.Deferrable || typed.InitiallyDeferred) && !db.Deferrable {
			return false
		}

		return db.AlterConstraints
	case AddUniqueConstraint:
		if (typed.Deferrable || typed.InitiallyDeferred) && !db.Deferrable {
			return false
		}

		return db.AlterConstraints
	case AddAutoIncrement:
		// SQL Server cannot turn an existing column into an identity column.
		return db.AutoIncrement && db.AlterConstraints && db.ShortName != "mssql"
	case CreateSequence, DropSequence:
		return db.Sequences
	case RenameView:
		return db.RenameView
	case RenameTable:
		return db.ShortName != "firebird"
	default:
		return true
	}
}

// Generate renders stmt for db.
func Generate(stmt Statement, db *database.Database) ([]SQL, error) {
	if !Supports(stmt, db) {
		name := "(nil)"
		if db != nil {
			name = db.ShortName
		}

		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedStatement, stmt.StatementName(), name)
	}

	switch typed := stmt.(type) {
	case CreateTable:
		return generateCreateTable(typed, db), nil
	case DropTable:
		return generateDropTable(typed, db), nil
	case RenameTable:
		return generateRenameTable(typed, db), nil
	case AddColumn:
		return generateAddColumn(typed, db), nil
	case DropColumn:
		return generateDropColumn(typed, db), nil
	case RenameColumn:
		return generateRenameColumn(typed, db), nil
	case CreateIndex:
		return generateCreateIndex(typed, db), nil
	case DropIndex:
		return generateDropIndex(typed, db), nil
	case AddPrimaryKey:
		return generateAddPrimaryKey(typed, db), nil
	case DropPrimaryKey:
		return generateDropPrimaryKey(typed, db), nil
	case AddForeignKey:
		return generateAddForeignKey(typed, db), nil
	case DropForeignKey:
		return generateDropForeignKey(typed, db), nil
	case AddUniqueConstraint:
		return generateAddUniqueConstraint(typed, db), nil
	case DropUniqueConstraint:
		return generateDropUniqueConstraint(typed, db), nil
	case SetNullable:
		return generateSetNullable(typed, db), nil
	case AddDefaultValue:
		return generateAddDefaultValue(typed, db), nil
	case DropDefaultValue:
		return generateDropDefaultValue(typed, db), nil
	case AddAutoIncrement:
		return generateAddAutoIncrement(typed, db), nil
	case CreateSequence:
		return generateCreateSequence(typed, db), nil
	case DropSequence:
		return single(db, "DROP SEQUENCE "+objectName(db, typed.Sequence)), nil
	case CreateView:
		return generateCreateView(typed, db), nil
	case DropView:
		return single(db, "DROP VIEW "+objectName(db, typed.View)), nil
	case RenameView:
		return generateRenameView(typed, db), nil
	case Insert:
		return generateInsert(typed, db), nil
	case Update:
		return generateUpdate(typed, db), nil
	case Delete:
		return generateDelete(typed, db), nil
	case RawSQL:
		return generateRawSQL(typed, db), nil
	case TagDatabase:
		return generateTagDatabase(typed, db), nil
	default:
		return nil, fmt.Errorf("%w %T", ErrUnknownStatement, stmt)
	}
}

// GenerateAll renders every statement in order.
func GenerateAll(stmts []Statement, db *database.Database) ([]SQL, error) {
	out := make([]SQL, 0, len(stmts))
	for _, stmt := range stmts {
		generated, err := Generate(stmt, db)
		if err != nil {
			return nil, err
		}

		out = append(out, generated...)
	}

	return out, nil
}

// single wraps one statement text with the database end delimiter.
func single(db *database.Database, text string) []SQL {
	return []SQL{{Text: text, EndDelimiter: db.EndDelimiter()}}
}

// objectName renders a qualified table-like name.
func objectName(db *database.Database, table Table) string {
	return db.EscapeObjectName(table.Catalog, table.Schema, table.Name)
}
