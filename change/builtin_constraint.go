// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

func addForeignKeyConstraintDefinition() *Definition {
	return &Definition{
		Name:        "addForeignKeyConstraint",
		Description: "Adds a foreign key constraint to an existing column",
		Params: []Parameter{
			Scalar("baseTableCatalogName", "string", "Catalog of the base table", "cat").SinceVersion("3.0"),
			Scalar("baseTableSchemaName", "string", "Schema of the base table", "public"),
			Scalar("baseTableName", "string", "Name of the table containing the column to constraint", "address").Required(),
			Scalar("baseColumnNames", "string", "Name of column(s) to place the foreign key constraint on. Comma-separate if multiple", "person_id").Required(),
			Scalar("constraintName", "string", "Name of the new foreign key constraint", "fk_address_person").Required(),
			Scalar("referencedTableCatalogName", "string", "Catalog of the referenced table", "cat").SinceVersion("3.0"),
			Scalar("referencedTableSchemaName", "string", "Schema of the referenced table", "public"),
			Scalar("referencedTableName", "string", "Name of the table the foreign key points to", "person").Required(),
			Scalar("referencedColumnNames", "string", "Column(s) the foreign key points to. Comma-separate if multiple", "id").Required(),
			Scalar("deferrable", "boolean", "Is the foreign key deferrable", true),
			Scalar("initiallyDeferred", "boolean", "Is the foreign key initially deferred", true),
			Scalar("onDelete", "string", "ON DELETE functionality. Possible values: 'CASCADE', 'SET NULL', 'SET DEFAULT', 'RESTRICT', 'NO ACTION'", "CASCADE"),
			Scalar("onUpdate", "string", "ON UPDATE functionality. Possible values: 'CASCADE', 'SET NULL', 'SET DEFAULT', 'RESTRICT', 'NO ACTION'", "RESTRICT"),
		},
		Notes: map[string]string{
			"oracle": "ON UPDATE actions are ignored",
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.AddForeignKey{
				Table:             c.qualified("baseTableCatalogName", "baseTableSchemaName", "baseTableName"),
				Columns:           c.ListParam("baseColumnNames"),
				Referenced:        c.qualified("referencedTableCatalogName", "referencedTableSchemaName", "referencedTableName"),
				ReferencedColumns: c.ListParam("referencedColumnNames"),
				Constraint:        c.StringParam("constraintName"),
				OnDelete:          c.StringParam("onDelete"),
				OnUpdate:          c.StringParam("onUpdate"),
				Deferrable:        c.BoolParam("deferrable"),
				InitiallyDeferred: c.BoolParam("initiallyDeferred"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropForeignKeyConstraint", inherit(c, "baseTableCatalogName", "baseTableSchemaName", "baseTableName", "constraintName")))
		},
	}
}

func dropForeignKeyConstraintDefinition() *Definition {
	return &Definition{
		Name:        "dropForeignKeyConstraint",
		Description: "Drops an existing foreign key",
		Params: []Parameter{
			Scalar("baseTableCatalogName", "string", "Catalog of the base table", "cat").SinceVersion("3.0"),
			Scalar("baseTableSchemaName", "string", "Schema of the base table", "public"),
			Scalar("baseTableName", "string", "Name of the table containing the column constrained by the foreign key", "address").Required(),
			Scalar("constraintName", "string", "Name of the foreign key constraint to drop", "fk_address_person").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropForeignKey{
				Table:      c.qualified("baseTableCatalogName", "baseTableSchemaName", "baseTableName"),
				Constraint: c.StringParam("constraintName"),
			}}, nil
		},
	}
}

func dropAllForeignKeyConstraintsDefinition() *Definition {
	return &Definition{
		Name:        "dropAllForeignKeyConstraints",
		Description: "Drops all foreign key constraints for a table",
		Params: []Parameter{
			Scalar("baseTableCatalogName", "string", "Catalog of the base table", "cat").SinceVersion("3.0"),
			Scalar("baseTableSchemaName", "string", "Schema of the base table", "public"),
			Scalar("baseTableName", "string", "Name of the table containing columns constrained by foreign keys", "person").Required(),
		},
		// Constraint names come from a live database snapshot.
		Volatile: func(*Change, *database.Database) bool {
			return true
		},
	}
}

func addPrimaryKeyDefinition() *Definition {
	return &Definition{
		Name:        "addPrimaryKey",
		Description: "Adds creates a primary key out of an existing column or set of columns.",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to create the primary key on", "person").Required(),
			Scalar("columnNames", "string", "Name of the column(s) to create the primary key on. Comma separated if multiple", "id, name").Required(),
			Scalar("constraintName", "string", "Name of primary key constraint", "pk_person"),
			Scalar("tablespace", "string", "Tablespace of the primary key index", "A String"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.AddPrimaryKey{
				Table:      c.table("tableName"),
				Columns:    c.ListParam("columnNames"),
				Constraint: c.StringParam("constraintName"),
				Tablespace: c.StringParam("tablespace"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropPrimaryKey", inherit(c, "catalogName", "schemaName", "tableName", "constraintName")))
		},
	}
}

func dropPrimaryKeyDefinition() *Definition {
	return &Definition{
		Name:        "dropPrimaryKey",
		Description: "Drops an existing primary key",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to drop the primary key of", "person").Required(),
			Scalar("constraintName", "string", "Name of the primary key", "pk_person"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropPrimaryKey{
				Table:      c.table("tableName"),
				Constraint: c.StringParam("constraintName"),
			}}, nil
		},
	}
}

func addUniqueConstraintDefinition() *Definition {
	return &Definition{
		Name:        "addUniqueConstraint",
		Description: "Adds a unique constrant to an existing column or set of columns.",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to create the unique constraint on", "person").Required(),
			Scalar("columnNames", "string", "Name of the column(s) to create the unique constraint on. Comma separated if multiple", "id, name").Required(),
			Scalar("constraintName", "string", "Name of the unique constraint", "const_name"),
			Scalar("tablespace", "string", "Tablespace of the constraint index", "A String"),
			Scalar("deferrable", "boolean", "Is the constraint deferrable", true),
			Scalar("initiallyDeferred", "boolean", "Is the constraint initially deferred", true),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.AddUniqueConstraint{
				Table:             c.table("tableName"),
				Columns:           c.ListParam("columnNames"),
				Constraint:        c.StringParam("constraintName"),
				Tablespace:        c.StringParam("tablespace"),
				Deferrable:        c.BoolParam("deferrable"),
				InitiallyDeferred: c.BoolParam("initiallyDeferred"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			values := inherit(c, "catalogName", "schemaName", "tableName", "constraintName")
			values["uniqueColumns"] = c.values["columnNames"]

			return single(r.create("dropUniqueConstraint", values))
		},
	}
}

func dropUniqueConstraintDefinition() *Definition {
	return &Definition{
		Name:        "dropUniqueConstraint",
		Description: "Drops an existing unique constraint",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to drop the unique constraint from", "person").Required(),
			Scalar("constraintName", "string", "Name of the unique constraint to drop", "const_name").Required(),
			Scalar("uniqueColumns", "string", "Columns of the unique constraint, used where constraints are unnamed", "id, name").SupportedOnly("sybase"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropUniqueConstraint{
				Table:      c.table("tableName"),
				Constraint: c.StringParam("constraintName"),
				Columns:    c.ListParam("uniqueColumns"),
			}}, nil
		},
	}
}

func addNotNullConstraintDefinition() *Definition {
	return &Definition{
		Name: "addNotNullConstraint",
		Description: "Adds a not-null constraint to an existing table. If a defaultNullValue attribute is passed, " +
			"all null values for the column will be updated to the passed value before the constraint is applied.",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Adds a not-null constraint to an existing table.", "person").Required(),
			Scalar("columnName", "string", "Name of the column to add the constraint to", "id").Required(),
			Scalar("columnDataType", "string", "Current data type of the column", "int").RequiredForDatabases("informix", "mssql", "mysql"),
			Scalar("defaultNullValue", "string", "Value to set all currently null values to. If not set, change will fail if null values exist", "A String"),
			Scalar("constraintName", "string", "Created constraint name", "const_name").SupportedOnly("oracle"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			table := c.table("tableName")
			column := c.StringParam("columnName")

			stmts := make([]sqlgen.Statement, 0, 2)
			if _, ok := c.values["defaultNullValue"]; ok {
				stmts = append(stmts, sqlgen.Update{
					Table:   table,
					Columns: []sqlgen.ColumnValue{{Name: column, Value: c.StringParam("defaultNullValue")}},
					Where:   column + " IS NULL",
				})
			}

			return append(stmts, sqlgen.SetNullable{
				Table:      table,
				Column:     column,
				DataType:   c.StringParam("columnDataType"),
				Constraint: c.StringParam("constraintName"),
			}), nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropNotNullConstraint", inherit(c, "catalogName", "schemaName", "tableName", "columnName", "columnDataType")))
		},
	}
}

func dropNotNullConstraintDefinition() *Definition {
	return &Definition{
		Name:        "dropNotNullConstraint",
		Description: "Makes a column nullable",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table containing that the column to drop the constraint from", "person").Required(),
			Scalar("columnName", "string", "Name of the column to drop the constraint from", "id").Required(),
			Scalar("columnDataType", "string", "Current data type of the column", "int").RequiredForDatabases("informix", "mssql", "mysql"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.SetNullable{
				Table:    c.table("tableName"),
				Column:   c.StringParam("columnName"),
				DataType: c.StringParam("columnDataType"),
				Nullable: true,
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("addNotNullConstraint", inherit(c, "catalogName", "schemaName", "tableName", "columnName", "columnDataType")))
		},
	}
}
