// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"slices"
	"strings"

	"github.com/woozymasta/changedoc/change"
)

// columnTagLink is appended to descriptions of column config parameters.
const columnTagLink = "<br><br>See the <a href='../column.html'>column tag</a> documentation for more information"

// parameterRows splits definition parameters into scalar and nested rows
// ordered by parameter name.
func parameterRows(def *change.Definition) ([]attributeView, []nestedView) {
	var (
		attributes []attributeView
		nested     []nestedView
	)

	for _, param := range def.SortedParams() {
		if !param.Nested() {
			attributes = append(attributes, attributeView{
				Name:        param.Name,
				Description: param.Description,
				RequiredFor: joinDatabases(param.RequiredFor),
				Supports:    joinDatabases(param.SupportedOn),
				Since:       strings.TrimSpace(param.Since),
			})

			continue
		}

		description := param.Description
		if strings.HasSuffix(param.TypeMarker(), change.ColumnConfigType) {
			description += columnTagLink
		}

		nested = append(nested, nestedView{
			Name:        param.Name,
			Description: description,
			RequiredFor: joinDatabases(param.RequiredFor),
			Supports:    joinDatabases(param.SupportedOn),
			Multiple:    yesNo(param.Multiple()),
			Since:       strings.TrimSpace(param.Since),
		})
	}

	return attributes, nested
}

// joinDatabases renders a sorted, de-duplicated database short name list.
func joinDatabases(names []string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}

	slices.Sort(out)
	return strings.Join(slices.Compact(out), ", ")
}

// yesNo renders boolean values for table cells.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
