// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

func createTableDefinition() *Definition {
	return &Definition{
		Name:        "createTable",
		Description: "Create Table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to create", "person").Required(),
			Scalar("tablespace", "string", "Name of the tablespace to create the table in", "A String"),
			Scalar("remarks", "string", "Comment to store with the table", "A String"),
			columnsParam("Columns of the new table").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			configs := c.ColumnsParam("columns")
			columns := make([]sqlgen.Column, 0, len(configs))
			for _, config := range configs {
				columns = append(columns, config.Column())
			}

			return []sqlgen.Statement{sqlgen.CreateTable{
				Table:      c.table("tableName"),
				Columns:    columns,
				Tablespace: c.StringParam("tablespace"),
				Remarks:    c.StringParam("remarks"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropTable", inherit(c, "catalogName", "schemaName", "tableName")))
		},
	}
}

func dropTableDefinition() *Definition {
	return &Definition{
		Name:        "dropTable",
		Description: "Drops an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to drop", "person").Required(),
			Scalar("cascadeConstraints", "boolean", "Also drop constraints referencing the table", true),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropTable{
				Table:   c.table("tableName"),
				Cascade: c.BoolParam("cascadeConstraints"),
			}}, nil
		},
	}
}

func renameTableDefinition() *Definition {
	return &Definition{
		Name:        "renameTable",
		Description: "Renames an existing table",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("oldTableName", "string", "Name of the table to rename", "person").Required(),
			Scalar("newTableName", "string", "New name for the table", "employee").Required(),
		},
		Notes: map[string]string{
			"firebird": "Tables must be recreated to change their name",
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.RenameTable{
				Table:   c.table("oldTableName"),
				NewName: c.StringParam("newTableName"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			values := inherit(c, "catalogName", "schemaName")
			values["oldTableName"] = c.values["newTableName"]
			values["newTableName"] = c.values["oldTableName"]

			return single(r.create("renameTable", values))
		},
	}
}

func createIndexDefinition() *Definition {
	return &Definition{
		Name:        "createIndex",
		Description: "Creates an index on an existing column or set of columns.",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name of the table to add the index to", "person").Required(),
			Scalar("indexName", "string", "Name of the index to create", "idx_address"),
			Scalar("unique", "boolean", "Unique values index", true),
			Scalar("tablespace", "string", "Tablepace to create the index in.", "A String"),
			columnsParam("Columns to add to the index").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			configs := c.ColumnsParam("columns")
			names := make([]string, 0, len(configs))
			for _, config := range configs {
				names = append(names, config.Name)
			}

			return []sqlgen.Statement{sqlgen.CreateIndex{
				Table:      c.table("tableName"),
				Name:       c.StringParam("indexName"),
				Columns:    names,
				Unique:     c.BoolParam("unique"),
				Tablespace: c.StringParam("tablespace"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropIndex", inherit(c, "catalogName", "schemaName", "tableName", "indexName")))
		},
	}
}

func dropIndexDefinition() *Definition {
	return &Definition{
		Name:        "dropIndex",
		Description: "Drops an existing index",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("tableName", "string", "Name fo the indexed table.", "person").RequiredForDatabases("mysql", "mssql", "sybase"),
			Scalar("indexName", "string", "Name of the index to drop", "idx_address").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropIndex{
				Table: c.table("tableName"),
				Name:  c.StringParam("indexName"),
			}}, nil
		},
	}
}

func createViewDefinition() *Definition {
	return &Definition{
		Name:        "createView",
		Description: "Create a new database view",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("viewName", "string", "Name of the view to create", "v_person").Required(),
			Scalar("replaceIfExists", "boolean", "Use 'create or replace' syntax", false),
			Scalar("selectQuery", "string", "SQL for generating the view", "select id, name from person where id > 10").Required().AsText(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.CreateView{
				View:        c.table("viewName"),
				SelectQuery: c.StringParam("selectQuery"),
				Replace:     c.BoolParam("replaceIfExists"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropView", inherit(c, "catalogName", "schemaName", "viewName")))
		},
	}
}

func dropViewDefinition() *Definition {
	return &Definition{
		Name:        "dropView",
		Description: "Drops an existing view",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("viewName", "string", "Name of the view to drop", "v_person").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropView{View: c.table("viewName")}}, nil
		},
	}
}

func renameViewDefinition() *Definition {
	return &Definition{
		Name:        "renameView",
		Description: "Renames an existing view",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("oldViewName", "string", "Name of the view to rename", "v_person").Required(),
			Scalar("newViewName", "string", "Name to rename the view to", "v_employee").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.RenameView{
				View:    c.table("oldViewName"),
				NewName: c.StringParam("newViewName"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			values := inherit(c, "catalogName", "schemaName")
			values["oldViewName"] = c.values["newViewName"]
			values["newViewName"] = c.values["oldViewName"]

			return single(r.create("renameView", values))
		},
	}
}
