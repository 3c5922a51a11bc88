// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

func insertDefinition() *Definition {
	return &Definition{
		Name:        "insert",
		Description: "Inserts data into an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to insert data into", "person").Required(),
			columnsParam("Data to insert into columns").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.Insert{
				Table:   c.table("tableName"),
				Columns: columnValues(c.ColumnsParam("columns")),
			}}, nil
		},
	}
}

func updateDefinition() *Definition {
	return &Definition{
		Name:        "update",
		Description: "Updates data in an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to update data in", "person").Required(),
			Scalar("where", "string", "Condition limiting updated rows", "name='Bob'"),
			columnsParam("Data to update").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.Update{
				Table:   c.table("tableName"),
				Columns: columnValues(c.ColumnsParam("columns")),
				Where:   c.StringParam("where"),
			}}, nil
		},
	}
}

func deleteDefinition() *Definition {
	return &Definition{
		Name:        "delete",
		Description: "Deletes data from an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to delete data from", "person").Required(),
			Scalar("where", "string", "Condition limiting deleted rows", "name='Bob'"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.Delete{
				Table: c.table("tableName"),
				Where: c.StringParam("where"),
			}}, nil
		},
	}
}

// columnValues converts column configs into assignments.
func columnValues(configs []ColumnConfig) []sqlgen.ColumnValue {
	out := make([]sqlgen.ColumnValue, 0, len(configs))
	for _, config := range configs {
		out = append(out, config.ColumnValue())
	}

	return out
}

func loadDataDefinition() *Definition {
	return &Definition{
		Name: "loadData",
		Description: "Loads data from a CSV file into an existing table. A value of NULL in a cell will be converted to a database NULL rather than the string 'NULL'.\n\n" +
			"The first row of the file names the target columns. Cells holding whole numbers are inserted as numbers, everything else as text.",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to insert data into", "person").Required(),
			Scalar("file", "string", "CSV file to load", "com/example/users.csv").Required(),
			Scalar("encoding", "string", "Encoding of the CSV file (defaults to UTF-8)", "UTF-8"),
			Scalar("separator", "string", "Character separating cells", ","),
			Scalar("quotchar", "string", "Character quoting cells", "\""),
			List("columns", "loadDataColumnConfig", "Column mapping and types of the CSV cells"),
		},
		Volatile: func(c *Change, _ *database.Database) bool {
			return !resourceReadable(c, c.StringParam("file"))
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			rows, err := readCSV(c)
			if err != nil {
				return nil, err
			}

			table := c.table("tableName")
			stmts := make([]sqlgen.Statement, 0, len(rows))
			for _, row := range rows {
				stmts = append(stmts, sqlgen.Insert{Table: table, Columns: row})
			}

			return stmts, nil
		},
	}
}

// resourceReadable reports whether name resolves to a regular file in the change resources.
func resourceReadable(c *Change, name string) bool {
	if c.Resources == nil || name == "" {
		return false
	}

	info, err := fs.Stat(c.Resources, name)
	return err == nil && info.Mode().IsRegular()
}

// readCSV parses the loadData resource into insert rows.
func readCSV(c *Change) ([][]sqlgen.ColumnValue, error) {
	name := c.StringParam("file")
	if encoding := c.StringParam("encoding"); encoding != "" && !strings.EqualFold(strings.ReplaceAll(encoding, "-", ""), "utf8") {
		return nil, fmt.Errorf("%w: encoding %q is not supported", ErrInvalidValue, encoding)
	}

	if quote := c.StringParam("quotchar"); quote != "" && quote != "\"" {
		return nil, fmt.Errorf("%w: quotchar %q is not supported", ErrInvalidValue, quote)
	}

	data, err := fs.ReadFile(c.Resources, name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadResource, name, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	if separator, _ := c.values["separator"].(string); separator != "" {
		r, size := utf8.DecodeRuneInString(separator)
		if size != len(separator) {
			return nil, fmt.Errorf("%w: separator %q must be one character", ErrInvalidValue, separator)
		}

		reader.Comma = r
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadResource, name, err)
	}

	var rows [][]sqlgen.ColumnValue
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadResource, name, err)
		}

		row := make([]sqlgen.ColumnValue, 0, len(header))
		for i, column := range header {
			var cell string
			if i < len(record) {
				cell = record[i]
			}

			row = append(row, sqlgen.ColumnValue{Name: strings.TrimSpace(column), Value: csvValue(cell)})
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// csvValue converts one CSV cell into a literal value.
func csvValue(cell string) any {
	if strings.EqualFold(cell, "NULL") {
		return nil
	}

	if parsed, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return parsed
	}

	return cell
}
