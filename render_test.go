// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

var updateGolden = flag.Bool("update", false, "update golden files")

var errWidgetBroken = errors.New("widget generator broken")

func TestPageFileName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"addColumn":                    "add_column",
		"sql":                          "sql",
		"dropAllForeignKeyConstraints": "drop_all_foreign_key_constraints",
		"loadData":                     "load_data",
	}

	for name, want := range cases {
		if got := PageFileName(name); got != want {
			t.Fatalf("PageFileName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := DisplayName("addForeignKeyConstraint"); got != "add Foreign Key Constraint" {
		t.Fatalf("DisplayName = %q", got)
	}
}

func TestGeneratedBannerWidth(t *testing.T) {
	t.Parallel()

	want := "<!-- ====================================================== -->\n" +
		"<!-- GENERATED BY ChangeDocGenerator DO NOT MODIFY MANUALLY -->\n" +
		"<!-- ====================================================== -->"

	if diff := cmp.Diff(want, generatedBanner(DefaultToolName)); diff != "" {
		t.Fatalf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestEscapeDescription(t *testing.T) {
	t.Parallel()

	got := escapeDescription(`Use <b>*bold*</b> and C:\temp`)
	want := `Use &lt;b&gt;\*bold\*&lt;/b&gt; and C:\\temp`
	if got != want {
		t.Fatalf("escapeDescription = %q, want %q", got, want)
	}
}

func TestFormatSQLBreaksAfterCommas(t *testing.T) {
	t.Parallel()

	got := formatSQL([]sqlgen.SQL{
		{Text: "INSERT INTO person (id, name) VALUES (1, 'Bob')", EndDelimiter: ";"},
		{Text: "DELETE FROM person", EndDelimiter: ";"},
	})

	want := "INSERT INTO person (id,\n name) VALUES (1,\n 'Bob');\n\nDELETE FROM person;\n\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("formatSQL mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNavListsChangesSorted(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition(), &change.Definition{
		Name:        "createThing",
		Description: "Creates a thing",
	})

	got, err := gen.RenderNav()
	if err != nil {
		t.Fatalf("RenderNav: %v", err)
	}

	want := generatedBanner(DefaultToolName) + "\n\n" +
		"{% include subnav_documentation.md %}\n\n" +
		"<hr>\n" +
		"<h3 style='color: #747373'>Bundled Changes</h3>\n\n" +
		"<li><a href='add_widget.html'><span>add Widget</span></a></li>\n" +
		"<li><a href='create_thing.html'><span>create Thing</span></a></li>\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nav mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPageLayout(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition())
	page, err := gen.RenderPage("addWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertHasPrefix(t, page, "---\nlayout: default\ntitle: Change addWidget\n---\n\n"+
		generatedBanner(DefaultToolName)+"\n\n"+
		"  <script>\n  $(function() {\n    $( \"#changelog-tabs\" ).tabs();\n  });\n</script>\n\n"+
		"# Change: 'addWidget'\n\n"+
		"Adds a \\*widget\\* column\n\n"+
		"## Available Attributes ##\n\n")

	assertContains(t, page, "<table>\n"+
		"<tr><th>Name</th><th>Description</th><th>Required&nbsp;For</th><th>Supports</th><th>Since</th></tr>\n"+
		"<tr><td style='vertical-align: top'>tableName</td><td style='vertical-align: top'>Name of the table</td>"+
		"<td style='vertical-align: top'>all</td><td style='vertical-align:top'>all</td><td style='vertical-align: top'>3.0</td></tr>\n"+
		"</table>\n\n## Nested Properties ##\n\n")

	assertContains(t, page, "<tr><th>Name</th><th>Description</th><th>Required&nbsp;For</th><th>Supports</th><th>Multiple&nbsp;Allowed</th><th>Since</th></tr>\n"+
		"<tr><td style='vertical-align: top'>columns</td><td style='vertical-align: top'>Columns to add"+columnTagLink+"</td>"+
		"<td style='vertical-align: top'></td><td style='vertical-align: top'>all</td><td style='vertical-align: top'>yes</td><td style='vertical-align: top'></td></tr>\n"+
		"</table>\n<div id='changelog-tabs'>\n")

	assertContains(t, page, "<ul>\n"+
		"    <li><a href=\"#tab-xml\">XML Sample</a></li>\n"+
		"    <li><a href=\"#tab-yaml\">YAML Sample</a></li>\n"+
		"    <li><a href=\"#tab-json\">JSON Sample</a></li>\n"+
		"  </ul>\n<div id='tab-xml'>\n")

	assertContains(t, page, "<div id='tab-xml'>\n{% highlight xml %}\n"+
		"<changeSet id=\"addWidget-example\" author=\"changedoc-docs\">\n"+
		"    <addWidget tableName=\"person\">\n"+
		"        <column name=\"address\" type=\"varchar(255)\"/>\n"+
		"    </addWidget>\n"+
		"</changeSet>\n{% endhighlight %}\n</div>\n<div id='tab-yaml'>\n{% highlight yaml %}\n")

	assertContains(t, page, "{% endhighlight %}\n</div>\n</div>\n\n\n"+
		"## SQL Generated From Above Sample (MySQL)\n\n"+
		"{% highlight sql %}\nALTER TABLE person ADD address VARCHAR(255);\n\n\n{% endhighlight %}\n\n"+
		"## Database Support\n\n")

	assertHasSuffix(t, page, "<table style='border:1;'>\n"+
		"<tr><th>Database</th><th>Notes</th><th>Auto Rollback</th></tr>\n"+
		"<tr><td>MySQL</td><td><b>Supported</b></td><td>No</td></tr>\n"+
		"<tr><td>PostgreSQL</td><td><b>Supported</b>: Needs superuser</td><td>No</td></tr>\n"+
		"</table>\n")

	assertNotContains(t, page, "Unsupported")
}

func TestRenderPageSingleAttributeAndNestedRow(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition())
	page, err := gen.RenderPage("addWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	attributes := section(t, page, "## Available Attributes ##", "</table>")
	if rows := strings.Count(attributes, "<tr><td"); rows != 1 {
		t.Fatalf("attribute rows = %d, want 1\n%s", rows, attributes)
	}

	nested := section(t, page, "## Nested Properties ##", "</table>")
	if rows := strings.Count(nested, "<tr><td"); rows != 1 {
		t.Fatalf("nested rows = %d, want 1\n%s", rows, nested)
	}

	assertContains(t, page, `"name": "address"`)
	assertContains(t, page, `"type": "varchar(255)"`)
}

func TestRenderPageOmitsNestedSectionWithoutNestedParams(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, &change.Definition{
		Name:        "dropWidget",
		Description: "Drops a widget",
		Params: []change.Parameter{
			change.Scalar("tableName", "string", "Name of the table", "person").Required(),
		},
		Generate: func(c *change.Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropTable{Table: sqlgen.Table{Name: c.StringParam("tableName")}}}, nil
		},
	})

	page, err := gen.RenderPage("dropWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertNotContains(t, page, "Nested Properties")
	assertContains(t, page, "</table>\n\n<div id='changelog-tabs'>\n")
}

func TestRenderPageMultipleAllowedOnlyForLists(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, &change.Definition{
		Name: "mixWidget",
		Params: []change.Parameter{
			change.List("columns", change.ColumnConfigType, "Columns"),
			change.Object("where", "whereConfig", "Filter"),
		},
		Volatile: func(*change.Change, *database.Database) bool { return true },
	})

	page, err := gen.RenderPage("mixWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertContains(t, page, ">columns</td>")
	assertContains(t, page, "<td style='vertical-align: top'>yes</td>")
	assertContains(t, page, ">where</td><td style='vertical-align: top'>Filter</td>")
	assertContains(t, page, "<td style='vertical-align: top'>no</td>")
	assertNotContains(t, page, "## SQL Generated From Above Sample")
}

func TestRenderPageUsesExampleDatabasePriority(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{ExampleDatabases: []string{"postgresql"}}, widgetDefinition())
	page, err := gen.RenderPage("addWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertContains(t, page, "## SQL Generated From Above Sample (PostgreSQL)")
}

func TestRenderPageWithoutSupportingDatabaseOmitsSQL(t *testing.T) {
	t.Parallel()

	def := widgetDefinition()
	def.Supports = func(*change.Change, *database.Database) bool { return false }

	gen := newFixtureGenerator(t, Options{}, def)
	page, err := gen.RenderPage("addWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertNotContains(t, page, "## SQL Generated From Above Sample")
	assertContains(t, page, "<tr><td>MySQL</td><td>Not Supported</td><td>No</td></tr>\n")
	assertContains(t, page, "</div>\n\n\n## Database Support\n\n")
}

func TestRenderPageRollbackColumn(t *testing.T) {
	t.Parallel()

	gen, err := New(change.DefaultRegistry(), database.DefaultCatalog(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page, err := gen.RenderPage("createTable")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertContains(t, page, "<tr><td>PostgreSQL</td><td><b>Supported</b></td><td><b>Yes</b></td></tr>")

	sqlPage, err := gen.RenderPage("sql")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	assertNotContains(t, sqlPage, "<b>Yes</b>")
}

func TestRenderPageUnknownChange(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition())
	_, err := gen.RenderPage("missing")
	if !errors.Is(err, ErrRenderPage) || !errors.Is(err, change.ErrUnknownChange) {
		t.Fatalf("expected ErrRenderPage wrapping ErrUnknownChange, got %v", err)
	}
}

func TestNewRejectsUnknownExampleDatabase(t *testing.T) {
	t.Parallel()

	registry, err := change.NewRegistry(widgetDefinition())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	_, err = New(registry, database.NewCatalog(database.MySQL()), Options{ExampleDatabases: []string{"oracle"}})
	if !errors.Is(err, ErrUnknownExampleDatabase) {
		t.Fatalf("expected ErrUnknownExampleDatabase, got %v", err)
	}

	if _, err := New(nil, database.DefaultCatalog(), Options{}); !errors.Is(err, ErrNilRegistry) {
		t.Fatalf("expected ErrNilRegistry, got %v", err)
	}

	if _, err := New(registry, nil, Options{}); !errors.Is(err, ErrNilCatalog) {
		t.Fatalf("expected ErrNilCatalog, got %v", err)
	}
}

func TestGenerateOneFilePerChangeType(t *testing.T) {
	t.Parallel()

	registry := change.DefaultRegistry()
	gen, err := New(registry, database.DefaultCatalog(), Options{Logger: zaptest.NewLogger(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	files, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if files.Len() != registry.Len()+1 {
		t.Fatalf("files = %d, want %d", files.Len(), registry.Len()+1)
	}

	for _, name := range registry.Names() {
		page, ok := files.Get(DefaultPagesDir + "/" + PageFileName(name) + ".md")
		if !ok {
			t.Fatalf("missing page for %s", name)
		}

		assertNotContains(t, string(page), "<td>Unsupported</td>")
	}

	nav, ok := files.Get(DefaultNavPath)
	if !ok {
		t.Fatal("missing navigation file")
	}

	if links := strings.Count(string(nav), "<li>"); links != registry.Len() {
		t.Fatalf("nav links = %d, want %d", links, registry.Len())
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	first := generateAll(t)
	second := generateAll(t)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("generation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateStopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition(), brokenDefinition())
	files, err := gen.Generate(context.Background())
	if !errors.Is(err, errWidgetBroken) {
		t.Fatalf("expected errWidgetBroken, got %v", err)
	}

	if files != nil {
		t.Fatalf("expected no files without keep going, got %v", files.Paths())
	}
}

func TestGenerateKeepGoingCollectsFailures(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{KeepGoing: true}, widgetDefinition(), brokenDefinition())
	files, err := gen.Generate(context.Background())
	if !errors.Is(err, ErrRenderPage) || !errors.Is(err, errWidgetBroken) {
		t.Fatalf("expected aggregated render error, got %v", err)
	}

	want := []string{DefaultNavPath, DefaultPagesDir + "/add_widget.md"}
	if diff := cmp.Diff(want, files.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := newFixtureGenerator(t, Options{}, widgetDefinition())
	if _, err := gen.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateCustomPaths(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{NavPath: "nav/changes.md", PagesDir: "pages/"}, widgetDefinition())
	files, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []string{"nav/changes.md", "pages/add_widget.md"}
	if diff := cmp.Diff(want, files.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderPageLogsSkippedNestedParameters(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	gen := newFixtureGenerator(t, Options{Logger: zap.New(core)}, &change.Definition{
		Name: "loadWidgets",
		Params: []change.Parameter{
			change.List("columns", "loadDataColumnConfig", "Columns"),
		},
		Volatile: func(*change.Change, *database.Database) bool { return true },
	})

	if _, err := gen.RenderPage("loadWidgets"); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	skipped := logs.FilterMessage("nested parameter left unset").All()
	if len(skipped) != 1 {
		t.Fatalf("skipped log entries = %d, want 1", len(skipped))
	}

	if got := skipped[0].ContextMap()["type"]; got != "list of loadDataColumnConfig" {
		t.Fatalf("logged type = %v", got)
	}

	if rendered := logs.FilterMessage("rendered change page").Len(); rendered != 1 {
		t.Fatalf("rendered log entries = %d, want 1", rendered)
	}
}

func TestRenderPageCustomTemplate(t *testing.T) {
	t.Parallel()

	gen := newFixtureGenerator(t, Options{
		PageTemplateText: "{{ .Name }}:{{ range .Support }} {{ .Database }}{{ end }}",
		ToolName:         "docs-bot",
	}, widgetDefinition())

	page, err := gen.RenderPage("addWidget")
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	if page != "addWidget: MySQL PostgreSQL" {
		t.Fatalf("custom template output = %q", page)
	}

	nav, err := gen.RenderNav()
	if err != nil {
		t.Fatalf("RenderNav: %v", err)
	}

	assertContains(t, nav, "<!-- GENERATED BY docs-bot DO NOT MODIFY MANUALLY -->")
}

func TestNewRejectsBrokenTemplate(t *testing.T) {
	t.Parallel()

	_, err := New(change.DefaultRegistry(), database.DefaultCatalog(), Options{NavTemplateText: "{{ .Links "})
	if !errors.Is(err, ErrParseTemplate) {
		t.Fatalf("expected ErrParseTemplate, got %v", err)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	names := BuiltinTemplateNames()
	if strings.Join(names, ",") != "nav,page" {
		t.Fatalf("unexpected template names: %v", names)
	}

	if _, err := BuiltinTemplate("missing"); !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("expected ErrUnknownBuiltinTemplate, got %v", err)
	}

	page, err := BuiltinTemplate(" PAGE ")
	if err != nil {
		t.Fatalf("BuiltinTemplate: %v", err)
	}

	assertContains(t, page, "## Database Support")
}

// widgetDefinition is a fixture change with one required scalar and one column list.
func TestRenderGoldenAddColumn(t *testing.T) {
	testRenderGoldenPage(t, "addColumn", filepath.Join("testdata", "add_column.golden.md"))
}

func testRenderGoldenPage(t *testing.T, name, goldenPath string) {
	t.Helper()

	gen, err := New(change.DefaultRegistry(), database.DefaultCatalog(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := gen.RenderPage(name)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	if *updateGolden {
		if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	if diff := cmp.Diff(string(wantBytes), got); diff != "" {
		t.Fatalf("golden mismatch for %s; run `go test . -run TestRenderGolden -update` (-want +got):\n%s", goldenPath, diff)
	}
}

func widgetDefinition() *change.Definition {
	return &change.Definition{
		Name:        "addWidget",
		Description: "Adds a *widget* column",
		Params: []change.Parameter{
			change.Scalar("tableName", "string", "Name of the table", "person").Required().SinceVersion("3.0"),
			change.List("columns", change.ColumnConfigType, "Columns to add"),
		},
		Notes: map[string]string{"postgresql": "  Needs superuser "},
		Generate: func(c *change.Change, _ *database.Database) ([]sqlgen.Statement, error) {
			table := sqlgen.Table{Name: c.StringParam("tableName")}

			var stmts []sqlgen.Statement
			for _, column := range c.ColumnsParam("columns") {
				stmts = append(stmts, sqlgen.AddColumn{Table: table, Column: column.Column()})
			}

			return stmts, nil
		},
	}
}

// brokenDefinition is a fixture change whose generation always fails.
func brokenDefinition() *change.Definition {
	return &change.Definition{
		Name:     "breakWidget",
		Supports: func(*change.Change, *database.Database) bool { return true },
		Generate: func(*change.Change, *database.Database) ([]sqlgen.Statement, error) {
			return nil, errWidgetBroken
		},
	}
}

func newFixtureGenerator(t *testing.T, opt Options, defs ...*change.Definition) *Generator {
	t.Helper()

	registry, err := change.NewRegistry(defs...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if opt.ExampleDatabases == nil {
		opt.ExampleDatabases = []string{"mysql"}
	}

	catalog := database.NewCatalog(database.Postgres(), database.Unsupported(), database.MySQL())
	gen, err := New(registry, catalog, opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return gen
}

func generateAll(t *testing.T) map[string]string {
	t.Helper()

	gen, err := New(change.DefaultRegistry(), database.DefaultCatalog(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	files, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := make(map[string]string, files.Len())
	for _, name := range files.Paths() {
		data, _ := files.Get(name)
		out[name] = string(data)
	}

	return out
}

// section returns text between the first start marker and the following end marker.
func section(t *testing.T, text, start, end string) string {
	t.Helper()

	_, after, ok := strings.Cut(text, start)
	if !ok {
		t.Fatalf("missing section %q in:\n%s", start, text)
	}

	body, _, ok := strings.Cut(after, end)
	if !ok {
		t.Fatalf("unterminated section %q in:\n%s", start, text)
	}

	return body
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

func assertHasPrefix(t *testing.T, text, prefix string) {
	t.Helper()

	if !strings.HasPrefix(text, prefix) {
		t.Fatalf("missing prefix %q in:\n%s", prefix, text)
	}
}

func assertHasSuffix(t *testing.T, text, suffix string) {
	t.Helper()

	if !strings.HasSuffix(text, suffix) {
		t.Fatalf("missing suffix %q in:\n%s", suffix, text)
	}
}
