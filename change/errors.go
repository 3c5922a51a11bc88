// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import "errors"

var (
	// ErrUnknownChange indicates a change type name missing from the registry.
	ErrUnknownChange = errors.New("unknown change type")
	// ErrDuplicateChange indicates a change type registered twice.
	ErrDuplicateChange = errors.New("duplicate change type")
	// ErrInvalidDefinition indicates a malformed change type definition.
	ErrInvalidDefinition = errors.New("invalid change definition")
	// ErrUnknownParameter indicates a parameter name the change type does not declare.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrMissingParameter indicates an unset required parameter.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidValue indicates a parameter value of the wrong shape.
	ErrInvalidValue = errors.New("invalid parameter value")
	// ErrNoGenerator indicates a change type without statement generation.
	ErrNoGenerator = errors.New("change type does not generate statements")
	// ErrVolatileStatements indicates statements that need a live database or missing resource.
	ErrVolatileStatements = errors.New("statements cannot be generated offline")
	// ErrReadResource indicates a resource file that cannot be read.
	ErrReadResource = errors.New("read change resource")
)
