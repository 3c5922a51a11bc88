// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

// Package changelog serializes change sets into the XML, YAML and JSON
// changelog formats.
//
// A change set is first converted into an ordered Node tree so every format
// renders the same fields in the same order:
//
//	set := changelog.NewChangeSet("addColumn-example", "changedoc-docs", addColumn)
//	for _, serializer := range changelog.Serializers() {
//		data, err := serializer.Serialize(set)
//		...
//	}
package changelog

import (
	"fmt"
	"strings"

	"github.com/woozymasta/changedoc/change"
)

// ChangeSet is an ordered group of changes identified by id and author.
type ChangeSet struct {
	ID      string
	Author  string
	Changes []*change.Change
}

// Node is one element of the serialized tree.
type Node struct {
	Name   string
	Fields []Field
}

// Field is one named value of a node.
type Field struct {
	Key string
	// Value holds a scalar; unused when Children is set.
	Value any
	// Children holds nested elements.
	Children []*Node
	// List marks Children as a collection rather than a single object.
	List bool
	// Text renders Value as element body in XML.
	Text bool
}

// Nested reports whether the field holds child nodes.
func (f Field) Nested() bool {
	return f.List || len(f.Children) > 0
}

// NewChangeSet returns a change set holding changes.
func NewChangeSet(id, author string, changes ...*change.Change) *ChangeSet {
	return &ChangeSet{ID: id, Author: author, Changes: changes}
}

// Node converts the change set into a serialization tree.
func (cs *ChangeSet) Node() (*Node, error) {
	changes := make([]*Node, 0, len(cs.Changes))
	for _, item := range cs.Changes {
		node, err := ChangeNode(item)
		if err != nil {
			return nil, err
		}

		changes = append(changes, node)
	}

	return &Node{
		Name: "changeSet",
		Fields: []Field{
			{Key: "id", Value: cs.ID},
			{Key: "author", Value: cs.Author},
			{Key: "changes", Children: changes, List: true},
		},
	}, nil
}

// ChangeNode converts one change into a node with set parameters ordered by name.
func ChangeNode(c *change.Change) (*Node, error) {
	node := &Node{Name: c.Name()}
	for _, value := range c.Values() {
		if !value.Param.Nested() {
			node.Fields = append(node.Fields, Field{
				Key:   value.Param.Name,
				Value: value.Value,
				Text:  value.Param.Text,
			})

			continue
		}

		children, err := nestedNodes(value.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", c.Name(), value.Param.Name, err)
		}

		node.Fields = append(node.Fields, Field{
			Key:      value.Param.Name,
			Children: children,
			List:     value.Param.Kind == change.KindList,
		})
	}

	return node, nil
}

// nestedNodes converts nested parameter values into nodes.
func nestedNodes(value any) ([]*Node, error) {
	switch typed := value.(type) {
	case []change.ColumnConfig:
		out := make([]*Node, 0, len(typed))
		for _, column := range typed {
			out = append(out, columnNode(column))
		}

		return out, nil
	case change.ColumnConfig:
		return []*Node{columnNode(typed)}, nil
	default:
		return nil, fmt.Errorf("%w %T", ErrUnsupportedValue, value)
	}
}

// columnNode converts a column config into a column element.
func columnNode(column change.ColumnConfig) *Node {
	node := &Node{Name: "column"}
	if column.AutoIncrement {
		node.Fields = append(node.Fields, Field{Key: "autoIncrement", Value: true})
	}

	if constraints := constraintsNode(column.Constraints); constraints != nil {
		node.Fields = append(node.Fields, Field{Key: "constraints", Children: []*Node{constraints}})
	}

	if column.DefaultValue != nil {
		node.Fields = append(node.Fields, Field{Key: "defaultValue", Value: column.DefaultValue})
	}

	node.Fields = appendText(node.Fields, "name", column.Name)
	node.Fields = appendText(node.Fields, "remarks", column.Remarks)
	node.Fields = appendText(node.Fields, "type", column.Type)

	if column.Value != nil {
		node.Fields = append(node.Fields, Field{Key: "value", Value: column.Value})
	}

	return node
}

// constraintsNode converts inline constraints; nil when none are declared.
func constraintsNode(constraints *change.Constraints) *Node {
	if constraints == nil {
		return nil
	}

	node := &Node{Name: "constraints"}
	if constraints.Nullable != nil {
		node.Fields = append(node.Fields, Field{Key: "nullable", Value: *constraints.Nullable})
	}

	if constraints.PrimaryKey {
		node.Fields = append(node.Fields, Field{Key: "primaryKey", Value: true})
	}

	if constraints.Unique {
		node.Fields = append(node.Fields, Field{Key: "unique", Value: true})
	}

	if len(node.Fields) == 0 {
		return nil
	}

	return node
}

// appendText appends a string field when it is not blank.
func appendText(fields []Field, key, value string) []Field {
	if strings.TrimSpace(value) == "" {
		return fields
	}

	return append(fields, Field{Key: key, Value: value})
}
