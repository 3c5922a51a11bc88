// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"embed"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/changelog"
)

const (
	// exampleColumnName is the synthetic column used for column config parameters.
	exampleColumnName = "address"
	// exampleColumnType is the synthetic column data type.
	exampleColumnType = "varchar(255)"
	// exampleResourceParam is the parameter pointed at the embedded resource.
	exampleResourceParam = "file"
	// exampleResourcePath is the embedded CSV resource used for SQL samples.
	exampleResourcePath = "resources/example.csv"
)

// exampleResources holds files referenced by example changes during SQL generation.
//
//go:embed resources/example.csv
var exampleResources embed.FS

// Example is one populated change wrapped in its example change set.
type Example struct {
	// Change is the populated change instance.
	Change *change.Change
	// ChangeSet wraps Change with id "<name>-example".
	ChangeSet *changelog.ChangeSet
	// Skipped lists nested parameters left unset because their element type has no example.
	Skipped []change.Parameter
}

// BuildExample populates change type name with example values.
//
// Scalar parameters get their declared example. Column config parameters get
// one "address" varchar(255) column. Other nested parameters stay unset.
func BuildExample(registry *change.Registry, name, author string) (*Example, error) {
	created, err := registry.Create(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildExample, err)
	}

	example := &Example{Change: created}
	for _, param := range created.Definition().Params {
		value, ok := exampleValue(param)
		if !ok {
			if param.Nested() {
				example.Skipped = append(example.Skipped, param)
			}

			continue
		}

		if err := created.Set(param.Name, value); err != nil {
			return nil, fmt.Errorf("%w %s.%s: %w", ErrBuildExample, name, param.Name, err)
		}
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultAuthor
	}

	example.ChangeSet = changelog.NewChangeSet(created.Name()+"-example", author, created)
	return example, nil
}

// exampleValue returns the example assigned to param.
func exampleValue(param change.Parameter) (any, bool) {
	if !param.Nested() {
		return param.Example, param.Example != nil
	}

	if param.Type != change.ColumnConfigType {
		return nil, false
	}

	return []change.ColumnConfig{{Name: exampleColumnName, Type: exampleColumnType}}, true
}

// buildExample builds the example for name and logs skipped nested parameters.
func (g *Generator) buildExample(name string) (*Example, error) {
	example, err := BuildExample(g.registry, name, g.opt.Author)
	if err != nil {
		return nil, err
	}

	for _, param := range example.Skipped {
		g.logger.Debug("nested parameter left unset",
			zap.String("change", name),
			zap.String("parameter", param.Name),
			zap.String("type", param.TypeMarker()),
		)
	}

	return example, nil
}

// AttachResources points the file parameter, when declared, at an embedded
// CSV resource so data loading changes generate SQL offline.
func (e *Example) AttachResources() error {
	if _, ok := e.Change.Definition().Param(exampleResourceParam); !ok {
		return nil
	}

	e.Change.Resources = exampleResources
	if err := e.Change.Set(exampleResourceParam, exampleResourcePath); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildExample, err)
	}

	return nil
}
