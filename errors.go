// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import "errors"

var (
	// ErrNilRegistry is returned when generator is created without change registry.
	ErrNilRegistry = errors.New("change registry is required")
	// ErrNilCatalog is returned when generator is created without database catalog.
	ErrNilCatalog = errors.New("database catalog is required")
	// ErrUnknownExampleDatabase is returned when example database priority names an unknown engine.
	ErrUnknownExampleDatabase = errors.New("unknown example database")
	// ErrBuildExample is returned when example change set population fails.
	ErrBuildExample = errors.New("build example change set")
	// ErrSerializeExample is returned when example change set serialization fails.
	ErrSerializeExample = errors.New("serialize example change set")
	// ErrGenerateSQL is returned when example SQL generation fails.
	ErrGenerateSQL = errors.New("generate example sql")
	// ErrRenderPage is returned when one change page cannot be rendered.
	ErrRenderPage = errors.New("render change page")
	// ErrRenderNav is returned when navigation include cannot be rendered.
	ErrRenderNav = errors.New("render navigation")
	// ErrExecuteTemplate is returned when markdown template execution fails.
	ErrExecuteTemplate = errors.New("execute markdown template")
	// ErrParseTemplate is returned when markdown template parsing fails.
	ErrParseTemplate = errors.New("parse markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrFileConflict is returned when two generated files share one path.
	ErrFileConflict = errors.New("generated file path conflict")
	// ErrAbsolutePath is returned when generated file path is absolute.
	ErrAbsolutePath = errors.New("generated file path must be relative")
	// ErrEscapingPath is returned when generated file path leaves the output root.
	ErrEscapingPath = errors.New("generated file path escapes output root")
	// ErrStaleFile is returned when a file on disk differs from generated output.
	ErrStaleFile = errors.New("generated file is stale")
	// ErrMissingFile is returned when a generated file does not exist on disk.
	ErrMissingFile = errors.New("generated file is missing")
)
