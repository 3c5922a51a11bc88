// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// xmlIndent is one nesting level.
const xmlIndent = "    "

var (
	// xmlTextEscaper escapes element bodies; quotes stay readable.
	xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")
	// xmlAttrEscaper escapes double-quoted attribute values.
	xmlAttrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		`"`, "&quot;",
		"\n", "&#xA;",
		"\r", "&#xD;",
		"\t", "&#x9;",
	)
)

// XMLSerializer renders change sets as XML elements with attributes.
type XMLSerializer struct{}

// Format returns "xml".
func (XMLSerializer) Format() string {
	return "xml"
}

// Serialize renders set as indented XML.
func (XMLSerializer) Serialize(set *ChangeSet) ([]byte, error) {
	root, err := set.Node()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := writeXMLNode(&out, root, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeXML, err)
	}

	return trimTrailingNewlines(out.Bytes()), nil
}

// writeXMLNode writes node with scalar fields as attributes, text fields as
// body and nested fields as child elements. Empty elements self-close.
func writeXMLNode(out *bytes.Buffer, node *Node, depth int) error {
	if strings.TrimSpace(node.Name) == "" {
		return errors.New("element without name")
	}

	var (
		body     string
		children []*Node
	)

	indent := strings.Repeat(xmlIndent, depth)
	out.WriteString(indent)
	out.WriteByte('<')
	out.WriteString(node.Name)

	for _, field := range node.Fields {
		switch {
		case field.Nested():
			children = append(children, field.Children...)
		case field.Text:
			body = scalarText(field.Value)
		default:
			if strings.TrimSpace(field.Key) == "" {
				return fmt.Errorf("%s: attribute without name", node.Name)
			}

			out.WriteByte(' ')
			out.WriteString(field.Key)
			out.WriteString(`="`)
			out.WriteString(xmlAttrEscaper.Replace(scalarText(field.Value)))
			out.WriteByte('"')
		}
	}

	if body == "" && len(children) == 0 {
		out.WriteString("/>\n")
		return nil
	}

	out.WriteByte('>')
	out.WriteString(xmlTextEscaper.Replace(body))

	if len(children) > 0 {
		out.WriteByte('\n')
		for _, child := range children {
			if err := writeXMLNode(out, child, depth+1); err != nil {
				return err
			}
		}

		out.WriteString(indent)
	}

	out.WriteString("</")
	out.WriteString(node.Name)
	out.WriteString(">\n")
	return nil
}
