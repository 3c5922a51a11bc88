// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/database"
)

func TestBuildExampleAssignsDeclaredExamples(t *testing.T) {
	t.Parallel()

	example, err := BuildExample(change.DefaultRegistry(), "addColumn", "")
	if err != nil {
		t.Fatalf("BuildExample: %v", err)
	}

	if example.ChangeSet.ID != "addColumn-example" || example.ChangeSet.Author != DefaultAuthor {
		t.Fatalf("unexpected change set header: %s by %s", example.ChangeSet.ID, example.ChangeSet.Author)
	}

	if got := example.Change.StringParam("tableName"); got != "person" {
		t.Fatalf("tableName = %q", got)
	}

	want := []change.ColumnConfig{{Name: "address", Type: "varchar(255)"}}
	if diff := cmp.Diff(want, example.Change.ColumnsParam("columns")); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}

	if len(example.Skipped) != 0 {
		t.Fatalf("unexpected skipped params: %v", example.Skipped)
	}
}

func TestBuildExampleSkipsUnknownNestedTypes(t *testing.T) {
	t.Parallel()

	example, err := BuildExample(change.DefaultRegistry(), "loadData", "docs")
	if err != nil {
		t.Fatalf("BuildExample: %v", err)
	}

	if example.ChangeSet.Author != "docs" {
		t.Fatalf("author = %q", example.ChangeSet.Author)
	}

	if len(example.Skipped) != 1 || example.Skipped[0].Name != "columns" {
		t.Fatalf("skipped = %v, want columns", example.Skipped)
	}

	if _, ok := example.Change.Get("columns"); ok {
		t.Fatal("columns should stay unset")
	}
}

func TestBuildExampleUnknownChange(t *testing.T) {
	t.Parallel()

	_, err := BuildExample(change.DefaultRegistry(), "nope", "")
	if !errors.Is(err, ErrBuildExample) || !errors.Is(err, change.ErrUnknownChange) {
		t.Fatalf("expected ErrBuildExample wrapping ErrUnknownChange, got %v", err)
	}
}

func TestExampleAttachResourcesMakesLoadDataDeterministic(t *testing.T) {
	t.Parallel()

	example, err := BuildExample(change.DefaultRegistry(), "loadData", "")
	if err != nil {
		t.Fatalf("BuildExample: %v", err)
	}

	mysql := database.MySQL()
	if !example.Change.StatementsVolatile(mysql) {
		t.Fatal("loadData should be volatile before resources are attached")
	}

	if err := example.AttachResources(); err != nil {
		t.Fatalf("AttachResources: %v", err)
	}

	sql, err := example.Change.GenerateSQL(mysql)
	if err != nil {
		t.Fatalf("GenerateSQL: %v", err)
	}

	if len(sql) != 3 {
		t.Fatalf("statements = %d, want one per csv row", len(sql))
	}
}

func TestExampleAttachResourcesIgnoresChangesWithoutFile(t *testing.T) {
	t.Parallel()

	example, err := BuildExample(change.DefaultRegistry(), "dropTable", "")
	if err != nil {
		t.Fatalf("BuildExample: %v", err)
	}

	if err := example.AttachResources(); err != nil {
		t.Fatalf("AttachResources: %v", err)
	}

	if example.Change.Resources != nil {
		t.Fatal("resources attached to change without file parameter")
	}
}

func TestExampleDatabase(t *testing.T) {
	t.Parallel()

	gen, err := New(change.DefaultRegistry(), database.DefaultCatalog(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := map[string]string{
		"createTable":    "mysql",
		"createSequence": "mssql",
	}

	for name, want := range cases {
		db, err := gen.ExampleDatabase(name)
		if err != nil {
			t.Fatalf("ExampleDatabase(%s): %v", name, err)
		}

		if db == nil || db.ShortName != want {
			t.Fatalf("ExampleDatabase(%s) = %v, want %s", name, db, want)
		}
	}
}
