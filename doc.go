// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

/*
Package changedoc renders reference documentation for database change types.

Every change type registered in a [change.Registry] gets one Jekyll markdown
page with its parameter tables, an example change set in XML, YAML and JSON,
the SQL generated for a representative database and a database support
matrix. A navigation include lists every page. Output is deterministic: the
same registry and catalog always produce byte-identical files.

Generate the full documentation tree:

	gen, err := changedoc.New(change.DefaultRegistry(), database.DefaultCatalog(), changedoc.Options{})
	if err != nil {
		return err
	}

	files, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	if err := files.Write(ctx, "docs"); err != nil {
		return err
	}

Check that committed pages are current:

	if err := files.Verify(ctx, "docs"); err != nil {
		return err
	}

Render a single page:

	page, err := gen.RenderPage("addColumn")
	if err != nil {
		return err
	}

	fmt.Println(page)

Build the example change set used on a page:

	example, err := changedoc.BuildExample(change.DefaultRegistry(), "createTable", "docs")
	if err != nil {
		return err
	}

	fmt.Println(example.ChangeSet.ID)

Keep rendering after failures and collect them:

	gen, err := changedoc.New(registry, catalog, changedoc.Options{KeepGoing: true})
	if err != nil {
		return err
	}

	files, err := gen.Generate(ctx)
	// files holds every page that rendered; err lists the failed change types.
*/
package changedoc
