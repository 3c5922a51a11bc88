// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlcheck

import (
	"embed"
	"path"

	// Registered database/sql drivers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// fixtureFS holds the fixture schemas run before built-in change examples.
// fixtures/<change>.sql replaces fixtures/default.sql for that change.
//
//go:embed fixtures/*.sql
var fixtureFS embed.FS

// defaultFixtureName is the fixture used by changes without their own file.
const defaultFixtureName = "default"

// DefaultFixture returns the embedded fixture schema shared by most changes.
func DefaultFixture() string {
	fixture, _ := readFixture(defaultFixtureName)
	return fixture
}

// ChangeFixture returns the embedded fixture run before the example of the
// named change type. Changes without their own fixture get DefaultFixture.
func ChangeFixture(name string) string {
	if fixture, ok := readFixture(name); ok {
		return fixture
	}

	return DefaultFixture()
}

// readFixture loads fixtures/<name>.sql.
func readFixture(name string) (string, bool) {
	data, err := fixtureFS.ReadFile(path.Join("fixtures", name+".sql"))
	if err != nil {
		return "", false
	}

	return string(data), true
}

// DefaultDSN returns the scratch connection string used when none is configured.
func DefaultDSN(driver string) (string, bool) {
	switch driver {
	case "sqlite3":
		return ":memory:", true
	default:
		return "", false
	}
}
