// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlgen

import "errors"

var (
	// ErrUnsupportedStatement is returned when a database cannot execute a statement.
	ErrUnsupportedStatement = errors.New("statement not supported")
	// ErrUnknownStatement is returned for statement types without a generator.
	ErrUnknownStatement = errors.New("unknown statement")
)
