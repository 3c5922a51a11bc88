// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changelog

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLSerializer renders change sets as YAML mappings.
type YAMLSerializer struct{}

// Format returns "yaml".
func (YAMLSerializer) Format() string {
	return "yaml"
}

// Serialize renders set as YAML with two-space indentation.
func (YAMLSerializer) Serialize(set *ChangeSet) ([]byte, error) {
	root, err := set.Node()
	if err != nil {
		return nil, err
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlWrappedNode(root)},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeYAML, err)
	}

	return trimTrailingNewlines(out.Bytes()), nil
}

// yamlWrappedNode renders node as a single-key mapping named after the node.
func yamlWrappedNode(node *Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{yamlScalarNode("!!str", node.Name), yamlFieldsNode(node)},
	}
}

// yamlFieldsNode renders node fields as a mapping in declared order.
func yamlFieldsNode(node *Node) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range node.Fields {
		out.Content = append(out.Content, yamlScalarNode("!!str", field.Key), yamlFieldValue(field))
	}

	return out
}

// yamlFieldValue renders one field value.
func yamlFieldValue(field Field) *yaml.Node {
	if field.List {
		sequence := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, child := range field.Children {
			sequence.Content = append(sequence.Content, yamlWrappedNode(child))
		}

		return sequence
	}

	if len(field.Children) > 0 {
		return yamlFieldsNode(field.Children[0])
	}

	return yamlScalarValue(field.Value)
}

// yamlScalarValue creates a tagged scalar for value.
func yamlScalarValue(value any) *yaml.Node {
	switch value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null")
	case bool:
		return yamlScalarNode("!!bool", scalarText(value))
	case int, int64:
		return yamlScalarNode("!!int", scalarText(value))
	case float64:
		return yamlScalarNode("!!float", scalarText(value))
	default:
		return yamlScalarNode("!!str", scalarText(value))
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
