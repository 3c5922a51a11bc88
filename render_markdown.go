// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package changedoc

import (
	"strings"
	"unicode/utf8"

	"github.com/woozymasta/changedoc/sqlgen"
)

// descriptionEscaper escapes markup and markdown emphasis in descriptions.
var descriptionEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`\`, `\\`,
	"*", `\*`,
)

// escapeDescription prepares a change description for markdown body text.
func escapeDescription(text string) string {
	return descriptionEscaper.Replace(text)
}

// generatedBanner returns the three-line generated-file HTML comment.
func generatedBanner(toolName string) string {
	middle := "GENERATED BY " + toolName + " DO NOT MODIFY MANUALLY"
	rule := "<!-- " + strings.Repeat("=", utf8.RuneCountInString(middle)) + " -->"

	return rule + "\n<!-- " + middle + " -->\n" + rule
}

// formatSQL ends every statement with a blank line and breaks lines after commas.
func formatSQL(statements []sqlgen.SQL) string {
	var out strings.Builder
	for _, statement := range statements {
		out.WriteString(statement.String())
		out.WriteString("\n\n")
	}

	return strings.ReplaceAll(out.String(), ",", ",\n")
}
