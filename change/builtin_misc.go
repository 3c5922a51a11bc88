// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package change

import (
	"strings"

	"github.com/woozymasta/changedoc/database"
	"github.com/woozymasta/changedoc/sqlgen"
)

func createSequenceDefinition() *Definition {
	return &Definition{
		Name:        "createSequence",
		Description: "Creates a new database sequence",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("sequenceName", "string", "Name of the sequence to create", "seq_id").Required(),
			Scalar("startValue", "bigInteger", "The first sequence number to be generated.", 5),
			Scalar("incrementBy", "bigInteger", "Interval between sequence numbers", 2),
			Scalar("minValue", "bigInteger", "The minimum value of the sequence", 1),
			Scalar("maxValue", "bigInteger", "The maximum value of the sequence", 1000),
			Scalar("cacheSize", "bigInteger", "Number of values to fetch per query", 20).SinceVersion("3.0"),
			Scalar("cycle", "boolean", "Can the sequence cycle when it hits the max value?", true),
			Scalar("ordered", "boolean", "Does the sequence need to be guaranteed to be genererated inm the order of request?", true).SupportedOnly("oracle", "db2"),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.CreateSequence{
				Sequence:    c.table("sequenceName"),
				StartValue:  c.IntParam("startValue"),
				IncrementBy: c.IntParam("incrementBy"),
				MinValue:    c.IntParam("minValue"),
				MaxValue:    c.IntParam("maxValue"),
				CacheSize:   c.IntParam("cacheSize"),
				Cycle:       c.BoolParam("cycle"),
				Ordered:     c.BoolParam("ordered"),
			}}, nil
		},
		Inverse: func(c *Change, r *Registry) ([]*Change, error) {
			return single(r.create("dropSequence", inherit(c, "catalogName", "schemaName", "sequenceName")))
		},
	}
}

func dropSequenceDefinition() *Definition {
	return &Definition{
		Name:        "dropSequence",
		Description: "Drop existing sequence",
		Params: []Parameter{
			catalogParam(),
			schemaParam(),
			Scalar("sequenceName", "string", "Name of the sequence to drop", "seq_id").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.DropSequence{Sequence: c.table("sequenceName")}}, nil
		},
	}
}

func tagDatabaseDefinition() *Definition {
	return &Definition{
		Name:        "tagDatabase",
		Description: "Applies a tag to the database for future rollback",
		Params: []Parameter{
			Scalar("tag", "string", "Tag to apply", "version_1.3").Required(),
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			return []sqlgen.Statement{sqlgen.TagDatabase{Tag: c.StringParam("tag")}}, nil
		},
		// Rolling back to a tag needs no statements.
		Inverse: func(*Change, *Registry) ([]*Change, error) {
			return []*Change{}, nil
		},
	}
}

func sqlDefinition() *Definition {
	return &Definition{
		Name: "sql",
		Description: "The 'sql' tag allows you to specify whatever sql you want. " +
			"It is useful for complex changes that aren't supported through the bundled change types and to work around their limitations. " +
			"The SQL contained in the sql tag can be multi-line.\n\n" +
			"Statements can either be split using a ; at the end of the last line of the SQL or a go on its own on the line between the statements. " +
			"A new line alone does not finish a statement.\n\n" +
			"The sql change can also contain comments of either of the following formats:\n\n" +
			"A multiline comment that starts with /* and ends with */.\n" +
			"A single line comment starting with <space>--<space> and finishing at the end of the line",
		Params: []Parameter{
			Scalar("sql", "string", "The SQL to execute", "insert into person (name) values ('Bob')").Required().AsText(),
			Scalar("comment", "string", "Comment stored with the statement", "What about Bob?"),
			Scalar("dbms", "string", "Comma separated database short names the SQL runs on", nil),
			Scalar("endDelimiter", "string", "Delimiter to apply to the end of the statement. Defaults to ';', may be set to ''.", nil),
			Scalar("splitStatements", "boolean", "Set to false to not have the SQL split on ;'s and GO's. Defaults to true if not set", true),
			Scalar("stripComments", "boolean", "Set to true to remove any comments in the SQL before executing, otherwise false. Defaults to false if not set", true),
		},
		Notes: map[string]string{
			"mssql": "Use a GO line to separate batches",
		},
		Supports: func(c *Change, db *database.Database) bool {
			if db.Placeholder {
				return false
			}

			dbms := c.ListParam("dbms")
			if len(dbms) == 0 {
				return true
			}

			for _, name := range dbms {
				if name == AllDatabases || strings.EqualFold(name, db.ShortName) {
					return true
				}
			}

			return false
		},
		Generate: func(c *Change, _ *database.Database) ([]sqlgen.Statement, error) {
			text, _ := c.values["sql"].(string)
			if c.BoolParam("stripComments") {
				text = stripSQLComments(text)
			}

			var delimiter *string
			if value, ok := c.values["endDelimiter"].(string); ok {
				delimiter = &value
			}

			split := true
			if _, ok := c.values["splitStatements"]; ok {
				split = c.BoolParam("splitStatements")
			}

			chunks := []string{strings.TrimSpace(text)}
			if split {
				chunks = splitSQL(text)
			}

			stmts := make([]sqlgen.Statement, 0, len(chunks))
			for _, chunk := range chunks {
				if chunk == "" {
					continue
				}

				stmts = append(stmts, sqlgen.RawSQL{SQL: chunk, EndDelimiter: delimiter})
			}

			return stmts, nil
		},
	}
}

// splitSQL splits on trailing semicolons and standalone GO lines.
func splitSQL(text string) []string {
	var (
		out     []string
		current strings.Builder
	)

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			out = append(out, chunk)
		}

		current.Reset()
	}

	for line := range strings.SplitSeq(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.EqualFold(trimmed, "go") {
			flush()
			continue
		}

		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(strings.TrimRight(line, " \t\r"), ";"))
			flush()
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")
	}

	flush()
	return out
}

// stripSQLComments removes block comments and full-line -- comments.
func stripSQLComments(text string) string {
	for {
		start := strings.Index(text, "/*")
		if start < 0 {
			break
		}

		end := strings.Index(text[start+2:], "*/")
		if end < 0 {
			text = text[:start]
			break
		}

		text = text[:start] + text[start+2+end+2:]
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
