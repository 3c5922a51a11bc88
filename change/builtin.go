// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

// Builtins returns fresh definitions of every bundled change type.
func Builtins() []*Definition {
	return []*Definition{
		addAutoIncrementDefinition(),
		addColumnDefinition(),
		addDefaultValueDefinition(),
		addForeignKeyConstraintDefinition(),
		addNotNullConstraintDefinition(),
		addPrimaryKeyDefinition(),
		addUniqueConstraintDefinition(),
		createIndexDefinition(),
		createSequenceDefinition(),
		createTableDefinition(),
		createViewDefinition(),
		deleteDefinition(),
		dropAllForeignKeyConstraintsDefinition(),
		dropColumnDefinition(),
		dropDefaultValueDefinition(),
		dropForeignKeyConstraintDefinition(),
		dropIndexDefinition(),
		dropNotNullConstraintDefinition(),
		dropPrimaryKeyDefinition(),
		dropSequenceDefinition(),
		dropTableDefinition(),
		dropUniqueConstraintDefinition(),
		dropViewDefinition(),
		insertDefinition(),
		loadDataDefinition(),
		renameColumnDefinition(),
		renameTableDefinition(),
		renameViewDefinition(),
		sqlDefinition(),
		tagDatabaseDefinition(),
		updateDefinition(),
	}
}

// catalogParam is the optional catalog qualifier shared by most change types.
func catalogParam() Parameter {
	return Scalar("catalogName", "string", "Name of the catalog", "cat").SinceVersion("3.0")
}

// schemaParam is the optional schema qualifier shared by most change types.
func schemaParam() Parameter {
	return Scalar("schemaName", "string", "Name of the schema", "public")
}

// columnsParam is a list of column configs.
func columnsParam(description string) Parameter {
	return List("columns", ColumnConfigType, description)
}

// inherit copies the named values of c into a value map for a related change.
func inherit(c *Change, names ...string) map[string]any {
	out := make(map[string]any, len(names))
	for _, name := range names {
		if value, ok := c.values[name]; ok {
			out[name] = value
		}
	}

	return out
}

// single wraps one change into an inverse result.
func single(created *Change, err error) ([]*Change, error) {
	if err != nil {
		return nil, err
	}

	return []*Change{created}, nil
}
