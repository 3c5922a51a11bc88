// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changelog

import (
	"bytes"
	"fmt"
	"strconv"
)

// Serializer renders a change set in one changelog format.
type Serializer interface {
	// Format returns the format name used as highlight language.
	Format() string
	// Serialize renders set without a trailing newline.
	Serialize(set *ChangeSet) ([]byte, error)
}

// Serializers returns the XML, YAML and JSON serializers in display order.
func Serializers() []Serializer {
	return []Serializer{XMLSerializer{}, YAMLSerializer{}, JSONSerializer{}}
}

// scalarText formats a scalar value as plain text.
func scalarText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

// trimTrailingNewlines drops encoder line endings.
func trimTrailingNewlines(data []byte) []byte {
	return bytes.TrimRight(data, "\r\n")
}
