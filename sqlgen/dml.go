// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlgen

import (
	"strings"

	"github.com/woozymasta/changedoc/database"
)

// defaultChangelogTable is the table tagged by TagDatabase.
const defaultChangelogTable = "DATABASECHANGELOG"

// generateInsert renders INSERT INTO ... VALUES.
func generateInsert(stmt Insert, db *database.Database) []SQL {
	names := make([]string, 0, len(stmt.Columns))
	values := make([]string, 0, len(stmt.Columns))
	for _, column := range stmt.Columns {
		names = append(names, db.EscapeName(column.Name))
		values = append(values, db.Literal(column.Value))
	}

	return single(db, "INSERT INTO "+objectName(db, stmt.Table)+" ("+strings.Join(names, ", ")+") VALUES ("+strings.Join(values, ", ")+")")
}

// generateUpdate renders UPDATE ... SET ... [WHERE].
func generateUpdate(stmt Update, db *database.Database) []SQL {
	assignments := make([]string, 0, len(stmt.Columns))
	for _, column := range stmt.Columns {
		assignments = append(assignments, db.EscapeName(column.Name)+" = "+db.Literal(column.Value))
	}

	text := "UPDATE " + objectName(db, stmt.Table) + " SET " + strings.Join(assignments, ", ")
	if where := strings.TrimSpace(stmt.Where); where != "" {
		text += " WHERE " + where
	}

	return single(db, text)
}

// generateDelete renders DELETE FROM ... [WHERE].
func generateDelete(stmt Delete, db *database.Database) []SQL {
	text := "DELETE FROM " + objectName(db, stmt.Table)
	if where := strings.TrimSpace(stmt.Where); where != "" {
		text += " WHERE " + where
	}

	return single(db, text)
}

// generateRawSQL passes SQL text through with its own terminator.
func generateRawSQL(stmt RawSQL, db *database.Database) []SQL {
	delimiter := db.EndDelimiter()
	if stmt.EndDelimiter != nil {
		delimiter = *stmt.EndDelimiter
	}

	return []SQL{{Text: strings.TrimSpace(stmt.SQL), EndDelimiter: delimiter}}
}

// generateTagDatabase renders the changelog tag update.
func generateTagDatabase(stmt TagDatabase, db *database.Database) []SQL {
	table := stmt.ChangelogTable
	if table == "" {
		table = defaultChangelogTable
	}

	escapedTable := db.EscapeName(table)
	dateColumn := db.EscapeName("DATEEXECUTED")
	latest := "(SELECT MAX(" + dateColumn + ") FROM " + escapedTable + ")"
	if db.ShortName == "mysql" {
		// MySQL refuses to select from the table being updated.
		latest = "(SELECT * FROM (SELECT MAX(" + dateColumn + ") FROM " + escapedTable + ") AS X)"
	}

	return single(db, "UPDATE "+escapedTable+" SET "+db.EscapeName("TAG")+" = "+db.Literal(stmt.Tag)+" WHERE "+dateColumn+" = "+latest)
}
