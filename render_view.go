// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"fmt"

	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/changelog"
	"github.com/woozymasta/changedoc/database"
)

// pageView is the root view model passed to the page template.
type pageView struct {
	Name        string
	Banner      string
	Description string
	Attributes  []attributeView
	Nested      []nestedView
	Samples     []sampleView
	SQL         *sqlView
	Support     []supportView
}

// attributeView is one scalar parameter row.
type attributeView struct {
	Name        string
	Description string
	RequiredFor string
	Supports    string
	Since       string
}

// nestedView is one nested parameter row.
type nestedView struct {
	Name        string
	Description string
	RequiredFor string
	Supports    string
	Multiple    string
	Since       string
}

// sampleView is one serialized example tab.
type sampleView struct {
	ID     string
	Label  string
	Format string
	Body   string
}

// sqlView is the generated SQL sample.
type sqlView struct {
	Database string
	Body     string
}

// supportView is one database support matrix row.
type supportView struct {
	Database string
	Notes    string
	Rollback string
}

// navView is the root view model passed to the navigation template.
type navView struct {
	Banner string
	Links  []navLinkView
}

// navLinkView is one navigation entry.
type navLinkView struct {
	FileName string
	Display  string
}

// sampleLabels maps serializer formats to tab labels.
var sampleLabels = map[string]string{
	"xml":  "XML Sample",
	"yaml": "YAML Sample",
	"json": "JSON Sample",
}

// exampleDatabase returns the SQL sample database name for logging.
func (view pageView) exampleDatabase() string {
	if view.SQL == nil {
		return ""
	}

	return view.SQL.Database
}

// buildPageView prepares page template data for one change type.
func (g *Generator) buildPageView(name string) (pageView, error) {
	example, err := g.buildExample(name)
	if err != nil {
		return pageView{}, err
	}

	ch := example.Change
	def := ch.Definition()

	view := pageView{
		Name:        def.Name,
		Banner:      generatedBanner(g.opt.ToolName),
		Description: escapeDescription(def.Description),
	}

	view.Attributes, view.Nested = parameterRows(def)

	view.Samples, err = serializeSamples(example.ChangeSet)
	if err != nil {
		return pageView{}, err
	}

	// The sample database is chosen before resources are attached.
	db := g.representativeDatabase(ch)
	if err := example.AttachResources(); err != nil {
		return pageView{}, err
	}

	if db != nil && !ch.StatementsVolatile(db) {
		sql, err := ch.GenerateSQL(db)
		if err != nil {
			return pageView{}, fmt.Errorf("%w for %s: %w", ErrGenerateSQL, db.ShortName, err)
		}

		view.SQL = &sqlView{Database: db.ProductName, Body: formatSQL(sql)}
	}

	view.Support = g.supportRows(ch)
	return view, nil
}

// serializeSamples renders the example change set in every changelog format.
func serializeSamples(set *changelog.ChangeSet) ([]sampleView, error) {
	serializers := changelog.Serializers()
	samples := make([]sampleView, 0, len(serializers))

	for _, serializer := range serializers {
		data, err := serializer.Serialize(set)
		if err != nil {
			return nil, fmt.Errorf("%w as %s: %w", ErrSerializeExample, serializer.Format(), err)
		}

		format := serializer.Format()
		samples = append(samples, sampleView{
			ID:     "tab-" + format,
			Label:  sampleLabels[format],
			Format: format,
			Body:   string(data),
		})
	}

	return samples, nil
}

// representativeDatabase returns the first database that supports ch, trying
// example databases before the catalog in product name order.
func (g *Generator) representativeDatabase(ch *change.Change) *database.Database {
	candidates := append(append([]*database.Database{}, g.exampleDBs...), g.catalog.SortedByProductName()...)
	for _, db := range candidates {
		if ch.Supports(db) {
			return db
		}
	}

	return nil
}

// supportRows builds the database support matrix.
func (g *Generator) supportRows(ch *change.Change) []supportView {
	def := ch.Definition()
	rows := make([]supportView, 0, g.catalog.Len())

	for _, db := range g.catalog.SortedByProductName() {
		if db.ShortName == database.UnsupportedShortName {
			continue
		}

		supported := "Not Supported"
		if ch.Supports(db) {
			supported = "<b>Supported</b>"
		}

		if note := def.Note(db.ShortName); note != "" {
			supported += ": " + note
		}

		rollback := "No"
		if ch.SupportsRollback(db) {
			rollback = "<b>Yes</b>"
		}

		rows = append(rows, supportView{
			Database: db.ProductName,
			Notes:    supported,
			Rollback: rollback,
		})
	}

	return rows
}
