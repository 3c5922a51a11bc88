// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"strconv"

	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

func addColumnDefinition() *Definition {
	return &Definition{
		Name:        "addColumn",
		Description: "Adds a new column to an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to add the column to", "person").Required(),
			columnsParam("Columns to add to the table").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			table := c.table("tableName")
			configs := c.ColumnsParam("columns")

			stmts := make([]sqlgen.Statement, 0, len(configs))
			for _, config := range configs {
				stmts = append(stmts, sqlgen.AddColumn{Table: table, Column: config.Column()})
			}

			for _, config := range configs {
				if config.Value == nil {
					continue
				}

				stmts = append(stmts, sqlgen.Update{Table: table, Columns: []sqlgen.ColumnValue{config.ColumnValue()}})
			}

			return stmts, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			configs := c.ColumnsParam("columns")
			out := make([]*Change, 0, len(configs))
			for _, config := range configs {
				values := inherit(c, "catalogName", "schemaName", "tableName")
				values["columnName"] = config.Name

				created, err := r.create("dropColumn", values)
				if err != nil {
					return nil, err
				}

				out = append(out, created)
			}

			return out, nil
		},
	}
}

func dropColumnDefinition() *Definition {
	return &Definition{
		Name:        "dropColumn",
		Description: "Drop an existing column",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to drop the column from", "person").Required(),
			Scalar("columnName", "string", "Name of the column to drop", "id").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropColumn{
				Table:  c.table("tableName"),
				Column: c.StringParam("columnName"),
			}}, nil
		},
	}
}

func renameColumnDefinition() *Definition {
	return &Definition{
		Name:        "renameColumn",
		Description: "Renames an existing column",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table containing that the column to rename", "person").Required(),
			Scalar("oldColumnName", "string", "Name of the existing column to rename", "name").Required(),
			Scalar("newColumnName", "string", "Name to rename the column to", "full_name").Required(),
			Scalar("columnDataType", "string", "Data type of the column", "varchar(255)").RequiredForDatabases("mysql"),
			Scalar("remarks", "string", "Remarks of the column", "A String").SupportedOnly("mysql"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.RenameColumn{
				Table:    c.table("tableName"),
				Column:   c.StringParam("oldColumnName"),
				NewName:  c.StringParam("newColumnName"),
				DataType: c.StringParam("columnDataType"),
				Remarks:  c.StringParam("remarks"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			values := inherit(c, "catalogName", "schemaName", "tableName", "columnDataType", "remarks")
			values["oldColumnName"] = c.values["newColumnName"]
			values["newColumnName"] = c.values["oldColumnName"]

			return single(r.create("renameColumn", values))
		},
	}
}

func addAutoIncrementDefinition() *Definition {
	return &Definition{
		Name:        "addAutoIncrement",
		Description: "Converts an existing column to be an auto-increment (a.k.a 'identity') column",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table", "person").Required(),
			Scalar("columnName", "string", "Name of the column", "id").Required(),
			Scalar("columnDataType", "string", "Current data type of the column", "int").Required(),
			Scalar("startWith", "bigInteger", "Initial value of the increment", 100).SinceVersion("3.0"),
			Scalar("incrementBy", "bigInteger", "Amount to increment by at each call", 1).SinceVersion("3.0"),
		},
		Notes: map[string]string{
			"mssql": "Existing columns cannot be converted to identity columns",
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.AddAutoIncrement{
				Table:       c.table("tableName"),
				Column:      c.StringParam("columnName"),
				DataType:    c.StringParam("columnDataType"),
				StartWith:   c.IntParam("startWith"),
				IncrementBy: c.IntParam("incrementBy"),
			}}, nil
		},
	}
}

func addDefaultValueDefinition() *Definition {
	return &Definition{
		Name: "addDefaultValue",
		Description: "Adds a default value to the database definition for the specified column.\n" +
			"One of defaultValue, defaultValueNumeric, defaultValueBoolean or defaultValueDate must be set",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to containing the column", "file").Required(),
			Scalar("columnName", "string", "Name of the column to add a default value to", "fileName").Required(),
			Scalar("columnDataType", "string", "Current data type of the column to add default value to", "varchar(255)").RequiredForDatabases("informix"),
			Scalar("defaultValue", "string", "Default value. Either this property or one of the other defaultValue* properties are required.", "Something Else"),
			Scalar("defaultValueNumeric", "string", "Numeric default value", nil),
			Scalar("defaultValueBoolean", "boolean", "Boolean default value", nil),
			Scalar("defaultValueDate", "string", "Date or timestamp default value in ISO format", nil),
			Scalar("defaultValueComputed", "string", "Database expression computing the default value", nil),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.AddDefaultValue{
				Table:    c.table("tableName"),
				Column:   c.StringParam("columnName"),
				DataType: c.StringParam("columnDataType"),
				Value:    defaultValue(c),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropDefaultValue", inherit(c, "catalogName", "schemaName", "tableName", "columnName", "columnDataType")))
		},
	}
}

// defaultValue picks the first declared default value variant.
func defaultValue(c *Change) any {
	if _, ok := c.values["defaultValue"]; ok {
		return c.StringParam("defaultValue")
	}

	if text := c.StringParam("defaultValueNumeric"); text != "" {
		if parsed, err := strconv.ParseInt(text, 10, 64); err == nil {
			return parsed
		}

		if parsed, err := strconv.ParseFloat(text, 64); err == nil {
			return parsed
		}

		return database.Computed(text)
	}

	if _, ok := c.values["defaultValueBoolean"]; ok {
		return c.BoolParam("defaultValueBoolean")
	}

	if text := c.StringParam("defaultValueDate"); text != "" {
		return text
	}

	if text := c.StringParam("defaultValueComputed"); text != "" {
		return database.Computed(text)
	}

	return nil
}

func dropDefaultValueDefinition() *Definition {
	return &Definition{
		Name:        "dropDefaultValue",
		Description: "Removes the database default value for a column",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to containing the column", "person").Required(),
			Scalar("columnName", "string", "Name of column to drop the default value from", "id").Required(),
			Scalar("columnDataType", "string", "Current data type of the column", "int").RequiredForDatabases("informix"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropDefaultValue{
				Table:    c.table("tableName"),
				Column:   c.StringParam("columnName"),
				DataType: c.StringParam("columnDataType"),
			}}, nil
		},
	}
}
