// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/woozymasta/changedoc/database"
)

func TestDefaultRegistryNamesSorted(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()
	names := registry.Names()
	if len(names) != 31 {
		t.Fatalf("expected 31 builtin change types, got %d", len(names))
	}

	if names[0] != "addAutoIncrement" || names[len(names)-1] != "update" {
		t.Fatalf("unexpected name order: first=%q last=%q", names[0], names[len(names)-1])
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestRegistryRejectsDuplicatesAndUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(&Definition{Name: "same"}, &Definition{Name: "same"})
	if !errors.Is(err, ErrDuplicateChange) {
		t.Fatalf("expected ErrDuplicateChange, got %v", err)
	}

	_, err = NewRegistry(&Definition{Name: " "})
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("expected ErrInvalidDefinition, got %v", err)
	}

	_, err = DefaultRegistry().Create("mergeColumns")
	if !errors.Is(err, ErrUnknownChange) {
		t.Fatalf("expected ErrUnknownChange, got %v", err)
	}
}

func TestChangeSetRejectsUnknownParameter(t *testing.T) {
	t.Parallel()

	created := mustCreate(t, DefaultRegistry(), "dropTable")
	if err := created.Set("viewName", "v_person"); !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("expected ErrUnknownParameter, got %v", err)
	}

	if err := created.Set("tableName", "person"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := created.Set("tableName", nil); err != nil {
		t.Fatalf("Set nil: %v", err)
	}

	if _, ok := created.Get("tableName"); ok {
		t.Fatal("nil value should unset the parameter")
	}
}

func TestChangeValidateRequiresParameters(t *testing.T) {
	t.Parallel()

	created := mustCreate(t, DefaultRegistry(), "createTable")
	if err := created.Validate(); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}

	if created.Supports(database.Postgres()) {
		t.Fatal("change with missing parameters should not be supported")
	}
}

func TestValuesSortedByName(t *testing.T) {
	t.Parallel()

	created := mustCreate(t, DefaultRegistry(), "dropTable")
	mustSet(t, created, "tableName", "person")
	mustSet(t, created, "cascadeConstraints", true)
	mustSet(t, created, "catalogName", "cat")

	var got []string
	for _, value := range created.Values() {
		got = append(got, value.Param.Name)
	}

	want := []string{"cascadeConstraints", "catalogName", "tableName"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value order mismatch (-want +got):\n%s", diff)
	}
}

func TestSupportsRollback(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()

	createTable := mustCreate(t, registry, "createTable")
	mustSet(t, createTable, "tableName", "person")
	mustSet(t, createTable, "columns", []ColumnConfig{{Name: "address", Type: "varchar(255)"}})

	if !createTable.SupportsRollback(database.Postgres()) {
		t.Fatal("createTable should roll back on postgresql")
	}

	if createTable.SupportsRollback(database.Unsupported()) {
		t.Fatal("placeholder database should not support rollback")
	}

	dropTable := mustCreate(t, registry, "dropTable")
	mustSet(t, dropTable, "tableName", "person")
	if dropTable.SupportsRollback(database.Postgres()) {
		t.Fatal("dropTable has no inverse")
	}

	raw := mustCreate(t, registry, "sql")
	mustSet(t, raw, "sql", "select 1")
	if !raw.Supports(database.MySQL()) || raw.SupportsRollback(database.MySQL()) {
		t.Fatal("sql should be supported without rollback")
	}

	tag := mustCreate(t, registry, "tagDatabase")
	mustSet(t, tag, "tag", "v1")
	if !tag.SupportsRollback(database.Postgres()) {
		t.Fatal("tagDatabase should roll back")
	}
}

func TestAddColumnRollbackFollowsDropColumnSupport(t *testing.T) {
	t.Parallel()

	addColumn := mustCreate(t, DefaultRegistry(), "addColumn")
	mustSet(t, addColumn, "tableName", "person")
	mustSet(t, addColumn, "columns", []ColumnConfig{{Name: "address", Type: "varchar(255)"}})

	if !addColumn.SupportsRollback(database.MySQL()) {
		t.Fatal("addColumn should roll back on mysql")
	}

	if !addColumn.Supports(database.SQLite()) {
		t.Fatal("addColumn should be supported on sqlite")
	}

	if addColumn.SupportsRollback(database.SQLite()) {
		t.Fatal("sqlite cannot drop columns so rollback must be unsupported")
	}
}

func TestRenameTableInverseSwapsNames(t *testing.T) {
	t.Parallel()

	rename := mustCreate(t, DefaultRegistry(), "renameTable")
	mustSet(t, rename, "oldTableName", "person")
	mustSet(t, rename, "newTableName", "employee")

	inverses, err := rename.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	if len(inverses) != 1 {
		t.Fatalf("expected one inverse change, got %d", len(inverses))
	}

	if got := inverses[0].StringParam("oldTableName"); got != "employee" {
		t.Fatalf("inverse oldTableName = %q", got)
	}

	if got := inverses[0].StringParam("newTableName"); got != "person" {
		t.Fatalf("inverse newTableName = %q", got)
	}
}

func TestDropAllForeignKeyConstraintsIsVolatile(t *testing.T) {
	t.Parallel()

	dropAll := mustCreate(t, DefaultRegistry(), "dropAllForeignKeyConstraints")
	mustSet(t, dropAll, "baseTableName", "person")

	if !dropAll.StatementsVolatile(database.MySQL()) {
		t.Fatal("expected volatile statements")
	}

	if !dropAll.Supports(database.MySQL()) {
		t.Fatal("volatile changes are supported")
	}

	if _, err := dropAll.GenerateStatements(database.MySQL()); !errors.Is(err, ErrVolatileStatements) {
		t.Fatalf("expected ErrVolatileStatements, got %v", err)
	}
}

func TestLoadDataReadsCSVResource(t *testing.T) {
	t.Parallel()

	loadData := mustCreate(t, DefaultRegistry(), "loadData")
	mustSet(t, loadData, "tableName", "person")
	mustSet(t, loadData, "file", "data/people.csv")

	if !loadData.StatementsVolatile(database.MySQL()) {
		t.Fatal("loadData without resources should be volatile")
	}

	loadData.Resources = fstest.MapFS{
		"data/people.csv": &fstest.MapFile{Data: []byte("id,name\n1,Bob\n2,NULL\n")},
	}

	if loadData.StatementsVolatile(database.MySQL()) {
		t.Fatal("loadData with readable resource should not be volatile")
	}

	out, err := loadData.GenerateSQL(database.MySQL())
	if err != nil {
		t.Fatalf("GenerateSQL: %v", err)
	}

	var got []string
	for _, sql := range out {
		got = append(got, sql.String())
	}

	want := []string{
		"INSERT INTO person (id, name) VALUES (1, 'Bob');",
		"INSERT INTO person (id, name) VALUES (2, NULL);",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generated SQL mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLChangeSplitsAndStripsComments(t *testing.T) {
	t.Parallel()

	raw := mustCreate(t, DefaultRegistry(), "sql")
	mustSet(t, raw, "sql", "create table a (id int);\n/* block */insert into a values (1)\nGO\n-- line comment\nselect 1")
	mustSet(t, raw, "stripComments", true)

	out, err := raw.GenerateSQL(database.Postgres())
	if err != nil {
		t.Fatalf("GenerateSQL: %v", err)
	}

	var got []string
	for _, sql := range out {
		got = append(got, sql.String())
	}

	want := []string{"create table a (id int);", "insert into a values (1);", "select 1;"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generated SQL mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLChangeDBMSRestriction(t *testing.T) {
	t.Parallel()

	raw := mustCreate(t, DefaultRegistry(), "sql")
	mustSet(t, raw, "sql", "select 1 from dual")
	mustSet(t, raw, "dbms", "h2, oracle")

	if !raw.Supports(database.Oracle()) {
		t.Fatal("sql should be supported on listed dbms")
	}

	if raw.Supports(database.MySQL()) {
		t.Fatal("sql should not be supported outside listed dbms")
	}
}

func TestParameterTypeMarker(t *testing.T) {
	t.Parallel()

	cases := []struct {
		param    Parameter
		marker   string
		multiple bool
	}{
		{param: Scalar("tableName", "string", "", nil), marker: "string"},
		{param: List("columns", ColumnConfigType, ""), marker: "list of columnConfig", multiple: true},
		{param: Object("where", "whereClause", ""), marker: "object of whereClause"},
	}

	for _, tc := range cases {
		if got := tc.param.TypeMarker(); got != tc.marker {
			t.Fatalf("%s marker = %q, want %q", tc.param.Name, got, tc.marker)
		}

		if got := tc.param.Multiple(); got != tc.multiple {
			t.Fatalf("%s multiple = %v, want %v", tc.param.Name, got, tc.multiple)
		}

		if tc.param.Nested() == (tc.param.Kind == KindScalar) {
			t.Fatalf("%s nested mismatch for kind %s", tc.param.Name, tc.param.Kind)
		}
	}
}

func TestBuiltinExamplesSatisfyRequiredParameters(t *testing.T) {
	t.Parallel()

	for _, def := range Builtins() {
		for _, param := range def.Params {
			if param.Nested() || !param.RequiredOn(AllDatabases) {
				continue
			}

			if param.Example == nil {
				t.Errorf("%s.%s is required but has no example", def.Name, param.Name)
			}
		}
	}
}

// mustCreate creates a change or fails the test.
func mustCreate(t *testing.T, registry *Registry, name string) *Change {
	t.Helper()

	created, err := registry.Create(name)
	if err != nil {
		t.Fatalf("Create(%s): %v", name, err)
	}

	return created
}

// mustSet assigns a value or fails the test.
func mustSet(t *testing.T, c *Change, name string, value any) {
	t.Helper()

	if err := c.Set(name, value); err != nil {
		t.Fatalf("Set(%s): %v", name, err)
	}
}

func TestSQLChangeEndDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		delimiter any
		want      string
	}{
		{name: "unset", delimiter: nil, want: "select 1;"},
		{name: "empty", delimiter: "", want: "select 1"},
		{name: "custom", delimiter: "\n/", want: "select 1\n/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := mustCreate(t, DefaultRegistry(), "sql")
			mustSet(t, raw, "sql", "select 1")
			mustSet(t, raw, "endDelimiter", tt.delimiter)

			generated, err := raw.GenerateSQL(database.MySQL())
			if err != nil {
				t.Fatalf("GenerateSQL: %v", err)
			}

			if len(generated) != 1 || generated[0].String() != tt.want {
				t.Fatalf("generated = %v, want %q", generated, tt.want)
			}
		})
	}
}
