// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"context"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/database"
)

const (
	// DefaultToolName is written into the generated-file banner.
	DefaultToolName = "ChangeDocGenerator"
	// DefaultNavPath is the navigation include path relative to output root.
	DefaultNavPath = "_includes/subnav_documentation_changes.md"
	// DefaultPagesDir is the change page directory relative to output root.
	DefaultPagesDir = "documentation/changes"
	// DefaultAuthor is the author of example change sets.
	DefaultAuthor = "changedoc-docs"
)

// DefaultExampleDatabases returns the preferred engines for example SQL.
func DefaultExampleDatabases() []string {
	return []string{"mysql", "mssql", "oracle", "hsqldb"}
}

// Options configures documentation generation.
type Options struct {
	// ToolName is the generator name written into file banners.
	ToolName string
	// NavPath is the navigation include path relative to output root.
	NavPath string
	// PagesDir is the change page directory relative to output root.
	PagesDir string
	// Author is the author of example change sets.
	Author string
	// ExampleDatabases lists short names tried first when picking the SQL sample database.
	ExampleDatabases []string
	// PageTemplateText overrides the built-in page template.
	PageTemplateText string
	// NavTemplateText overrides the built-in navigation template.
	NavTemplateText string
	// KeepGoing renders remaining pages after a page fails.
	KeepGoing bool
	// Logger receives progress and debug output; nil disables logging.
	Logger *zap.Logger
}

// Generator renders change documentation from a registry and a catalog.
type Generator struct {
	registry     *change.Registry
	catalog      *database.Catalog
	opt          Options
	logger       *zap.Logger
	pageTemplate *template.Template
	navTemplate  *template.Template
	exampleDBs   []*database.Database
}

// New validates options and prepares templates.
func New(registry *change.Registry, catalog *database.Catalog, opt Options) (*Generator, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	if catalog == nil {
		return nil, ErrNilCatalog
	}

	opt = normalizeOptions(opt)

	exampleDBs := make([]*database.Database, 0, len(opt.ExampleDatabases))
	for _, shortName := range opt.ExampleDatabases {
		db, ok := catalog.Lookup(shortName)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownExampleDatabase, shortName)
		}

		exampleDBs = append(exampleDBs, db)
	}

	pageTemplate, err := resolveTemplate(templatePageName, opt.PageTemplateText)
	if err != nil {
		return nil, err
	}

	navTemplate, err := resolveTemplate(templateNavName, opt.NavTemplateText)
	if err != nil {
		return nil, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		registry:     registry,
		catalog:      catalog,
		opt:          opt,
		logger:       logger,
		pageTemplate: pageTemplate,
		navTemplate:  navTemplate,
		exampleDBs:   exampleDBs,
	}, nil
}

// normalizeOptions fills empty options with defaults.
func normalizeOptions(opt Options) Options {
	if strings.TrimSpace(opt.ToolName) == "" {
		opt.ToolName = DefaultToolName
	}

	if strings.TrimSpace(opt.NavPath) == "" {
		opt.NavPath = DefaultNavPath
	}

	if strings.TrimSpace(opt.PagesDir) == "" {
		opt.PagesDir = DefaultPagesDir
	}

	if strings.TrimSpace(opt.Author) == "" {
		opt.Author = DefaultAuthor
	}

	if opt.ExampleDatabases == nil {
		opt.ExampleDatabases = DefaultExampleDatabases()
	}

	opt.ToolName = strings.TrimSpace(opt.ToolName)
	opt.NavPath = path.Clean(strings.TrimSpace(opt.NavPath))
	opt.PagesDir = path.Clean(strings.TrimSpace(opt.PagesDir))
	opt.Author = strings.TrimSpace(opt.Author)
	return opt
}

// Generate renders the navigation include and every change page.
//
// Without KeepGoing the first failure aborts. With KeepGoing the returned
// GenFS holds every file that rendered and the error lists failed change types.
func (g *Generator) Generate(ctx context.Context) (*GenFS, error) {
	files := NewGenFS()

	nav, err := g.RenderNav()
	if err != nil {
		return nil, err
	}

	if err := files.Add(File{Path: g.opt.NavPath, Data: []byte(nav)}); err != nil {
		return nil, err
	}

	var failed *multierror.Error
	for _, name := range g.registry.Names() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := g.RenderPage(name)
		if err == nil {
			err = files.Add(File{Path: g.PagePath(name), Data: []byte(page)})
		}

		if err != nil {
			if !g.opt.KeepGoing {
				return nil, err
			}

			g.logger.Warn("change page failed", zap.String("change", name), zap.Error(err))
			failed = multierror.Append(failed, err)
		}
	}

	return files, failed.ErrorOrNil()
}

// RenderNav renders the navigation include listing every change page.
func (g *Generator) RenderNav() (string, error) {
	names := g.registry.Names()
	view := navView{
		Banner: generatedBanner(g.opt.ToolName),
		Links:  make([]navLinkView, 0, len(names)),
	}

	for _, name := range names {
		view.Links = append(view.Links, navLinkView{
			FileName: PageFileName(name),
			Display:  DisplayName(name),
		})
	}

	var out strings.Builder
	if err := g.navTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrRenderNav, ErrExecuteTemplate, err)
	}

	return out.String(), nil
}

// RenderPage renders the documentation page for one change type.
func (g *Generator) RenderPage(name string) (string, error) {
	view, err := g.buildPageView(name)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrRenderPage, name, err)
	}

	var out strings.Builder
	if err := g.pageTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w %q: %w: %w", ErrRenderPage, name, ErrExecuteTemplate, err)
	}

	g.logger.Info("rendered change page",
		zap.String("change", name),
		zap.String("path", g.PagePath(name)),
		zap.String("example_database", view.exampleDatabase()),
	)

	return out.String(), nil
}

// PagePath returns the page path for name relative to output root.
func (g *Generator) PagePath(name string) string {
	return path.Join(g.opt.PagesDir, PageFileName(name)+".md")
}

// NavPath returns the navigation include path relative to output root.
func (g *Generator) NavPath() string {
	return g.opt.NavPath
}

// ExampleDatabase returns the database used for the SQL sample of name.
func (g *Generator) ExampleDatabase(name string) (*database.Database, error) {
	example, err := g.buildExample(name)
	if err != nil {
		return nil, err
	}

	return g.representativeDatabase(example.Change), nil
}

// PageFileName inserts an underscore before each capital letter and lower-cases name.
func PageFileName(name string) string {
	return strings.ToLower(splitCapitals(name, '_'))
}

// DisplayName inserts a space before each capital letter of name.
func DisplayName(name string) string {
	return splitCapitals(name, ' ')
}

// splitCapitals inserts sep before every ASCII capital letter.
func splitCapitals(name string, sep byte) string {
	var out strings.Builder
	out.Grow(len(name) + 4)

	for i := 0; i < len(name); i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			out.WriteByte(sep)
		}

		out.WriteByte(name[i])
	}

	return out.String()
}
