// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changelog

import "errors"

var (
	// ErrUnsupportedValue indicates a nested value without a serialized form.
	ErrUnsupportedValue = errors.New("unsupported nested value")
	// ErrEncodeXML indicates XML encoding failure.
	ErrEncodeXML = errors.New("encode changelog xml")
	// ErrEncodeYAML indicates YAML encoding failure.
	ErrEncodeYAML = errors.New("encode changelog yaml")
	// ErrEncodeJSON indicates JSON encoding failure.
	ErrEncodeJSON = errors.New("encode changelog json")
)
