// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import "strings"

// AllDatabases marks a parameter as required for or supported on every database.
const AllDatabases = "all"

// ColumnConfigType is the nested element type holding column definitions.
const ColumnConfigType = "columnConfig"

// Kind classifies a parameter value shape.
type Kind int

const (
	// KindScalar holds one plain value.
	KindScalar Kind = iota
	// KindList holds a collection of nested elements.
	KindList
	// KindObject holds one nested element.
	KindObject
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Parameter describes one configurable field of a change type.
type Parameter struct {
	// Name is the serialized parameter name.
	Name string
	// Description is rendered as-is into documentation tables.
	Description string
	// Kind separates scalar values from nested elements.
	Kind Kind
	// Type is the scalar data type or the nested element type.
	Type string
	// RequiredFor lists database short names requiring the parameter.
	RequiredFor []string
	// SupportedOn lists database short names accepting the parameter.
	SupportedOn []string
	// Example is the documentation example value for scalar parameters.
	Example any
	// Since is the version introducing the parameter.
	Since string
	// Text renders the value as element body in markup serializations.
	Text bool
}

// TypeMarker returns the display data type of the parameter.
func (p Parameter) TypeMarker() string {
	switch p.Kind {
	case KindList:
		return "list of " + p.Type
	case KindObject:
		return "object of " + p.Type
	default:
		return p.Type
	}
}

// Nested reports whether the parameter holds nested elements.
func (p Parameter) Nested() bool {
	return p.Kind != KindScalar
}

// Multiple reports whether more than one nested element is allowed.
func (p Parameter) Multiple() bool {
	return strings.HasPrefix(p.TypeMarker(), "list of")
}

// RequiredOn reports whether the parameter is required for the database.
func (p Parameter) RequiredOn(shortName string) bool {
	for _, name := range p.RequiredFor {
		if name == AllDatabases || name == shortName {
			return true
		}
	}

	return false
}

// Required returns a copy required for every database.
func (p Parameter) Required() Parameter {
	p.RequiredFor = []string{AllDatabases}
	return p
}

// RequiredForDatabases returns a copy required for the named databases.
func (p Parameter) RequiredForDatabases(shortNames ...string) Parameter {
	p.RequiredFor = append([]string(nil), shortNames...)
	return p
}

// SupportedOnly returns a copy supported on the named databases only.
func (p Parameter) SupportedOnly(shortNames ...string) Parameter {
	p.SupportedOn = append([]string(nil), shortNames...)
	return p
}

// SinceVersion returns a copy tagged with an introduction version.
func (p Parameter) SinceVersion(version string) Parameter {
	p.Since = version
	return p
}

// AsText returns a copy rendered as element body.
func (p Parameter) AsText() Parameter {
	p.Text = true
	return p
}

// Scalar creates a scalar parameter supported on every database.
func Scalar(name, dataType, description string, example any) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindScalar,
		Type:        dataType,
		SupportedOn: []string{AllDatabases},
		Example:     example,
	}
}

// List creates a nested list parameter supported on every database.
func List(name, elementType, description string) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindList,
		Type:        elementType,
		SupportedOn: []string{AllDatabases},
	}
}

// Object creates a nested single element parameter supported on every database.
func Object(name, elementType, description string) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindObject,
		Type:        elementType,
		SupportedOn: []string{AllDatabases},
	}
}
