// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changelog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONSerializer renders change sets as JSON objects.
type JSONSerializer struct{}

// Format returns "json".
func (JSONSerializer) Format() string {
	return "json"
}

// Serialize renders set as pretty JSON with declared key order.
func (JSONSerializer) Serialize(set *ChangeSet) ([]byte, error) {
	root, err := set.Node()
	if err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	if err := writeJSONWrapped(&compact, root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeJSON, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeJSON, err)
	}

	return trimTrailingNewlines(out.Bytes()), nil
}

// writeJSONWrapped writes {"<name>": {fields}}.
func writeJSONWrapped(out *bytes.Buffer, node *Node) error {
	out.WriteByte('{')
	if err := writeJSONScalar(out, node.Name); err != nil {
		return err
	}

	out.WriteByte(':')
	if err := writeJSONFields(out, node); err != nil {
		return err
	}

	out.WriteByte('}')
	return nil
}

// writeJSONFields writes node fields as an object in declared order.
func writeJSONFields(out *bytes.Buffer, node *Node) error {
	out.WriteByte('{')
	for i, field := range node.Fields {
		if i > 0 {
			out.WriteByte(',')
		}

		if err := writeJSONScalar(out, field.Key); err != nil {
			return err
		}

		out.WriteByte(':')
		if err := writeJSONField(out, field); err != nil {
			return err
		}
	}

	out.WriteByte('}')
	return nil
}

// writeJSONField writes one field value.
func writeJSONField(out *bytes.Buffer, field Field) error {
	if field.List {
		out.WriteByte('[')
		for i, child := range field.Children {
			if i > 0 {
				out.WriteByte(',')
			}

			if err := writeJSONWrapped(out, child); err != nil {
				return err
			}
		}

		out.WriteByte(']')
		return nil
	}

	if len(field.Children) > 0 {
		return writeJSONFields(out, field.Children[0])
	}

	return writeJSONScalar(out, field.Value)
}

// writeJSONScalar encodes one scalar without HTML escaping.
func writeJSONScalar(out *bytes.Buffer, value any) error {
	var encoded bytes.Buffer
	encoder := json.NewEncoder(&encoded)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return err
	}

	out.Write(bytes.TrimRight(encoded.Bytes(), "\n"))
	return nil
}
