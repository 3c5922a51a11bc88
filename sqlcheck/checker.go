// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

// Package sqlcheck executes generated example SQL against a scratch database.
//
// Every change runs inside its own transaction that is always rolled back, so
// a check leaves the scratch database as it found it where the engine supports
// transactional DDL. MySQL commits DDL implicitly; point it at a throwaway
// schema.
package sqlcheck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/woozymasta/changedoc"
	"github.com/woozymasta/changedoc/change"
	"github.com/woozymasta/changedoc/database"
)

// Checker runs example SQL against one database connection.
type Checker struct {
	db      *sql.DB
	owned   bool
	fixture *string
	author  string
	logger  *zap.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithFixture replaces the built-in fixtures with statements run before every change.
func WithFixture(fixture string) Option {
	return func(c *Checker) {
		c.fixture = &fixture
	}
}

// WithLogger sets the logger for per-change results.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAuthor sets the example change set author.
func WithAuthor(author string) Option {
	return func(c *Checker) {
		c.author = author
	}
}

// Report summarizes a CheckAll run.
type Report struct {
	// Passed lists changes whose SQL executed.
	Passed []string
	// Skipped lists changes not supported on the database or not previewable offline.
	Skipped []string
	// Failed lists changes whose fixture or SQL failed.
	Failed []string
}

// Open connects to a scratch database with a registered driver.
func Open(driver, dsn string, opts ...Option) (*Checker, error) {
	if strings.TrimSpace(dsn) == "" {
		fallback, ok := DefaultDSN(driver)
		if !ok {
			return nil, fmt.Errorf("%w %q: dsn is required", ErrUnknownDriver, driver)
		}

		dsn = fallback
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	if driver == "sqlite3" {
		// Every pooled connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	checker := New(db, opts...)
	checker.owned = true
	return checker, nil
}

// New wraps an existing connection. The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *Checker {
	checker := &Checker{
		db:      db,
		author:  changedoc.DefaultAuthor,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(checker)
	}

	return checker
}

// Close closes the connection when the Checker opened it.
func (c *Checker) Close() error {
	if !c.owned {
		return nil
	}

	return c.db.Close()
}

// Ping verifies the scratch database is reachable.
func (c *Checker) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return nil
}

// CheckAll builds the example of every registered change and executes its SQL
// for db. Failures are collected per change and returned as one error.
func (c *Checker) CheckAll(ctx context.Context, registry *change.Registry, db *database.Database) (Report, error) {
	var (
		report Report
		result *multierror.Error
	)

	for _, name := range registry.Names() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		checked, err := c.checkExample(ctx, registry, name, db)
		switch {
		case err != nil:
			report.Failed = append(report.Failed, name)
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			c.logger.Warn("generated sql failed", zap.String("change", name), zap.String("database", db.ShortName), zap.Error(err))
		case !checked:
			report.Skipped = append(report.Skipped, name)
			c.logger.Debug("change skipped", zap.String("change", name), zap.String("database", db.ShortName))
		default:
			report.Passed = append(report.Passed, name)
			c.logger.Info("generated sql executed", zap.String("change", name), zap.String("database", db.ShortName))
		}
	}

	return report, result.ErrorOrNil()
}

// checkExample runs the example of name and reports whether it was executed.
func (c *Checker) checkExample(ctx context.Context, registry *change.Registry, name string, db *database.Database) (bool, error) {
	example, err := changedoc.BuildExample(registry, name, c.author)
	if err != nil {
		return false, err
	}

	if err := example.AttachResources(); err != nil {
		return false, err
	}

	return c.Check(ctx, example.Change, db)
}

// Check executes the SQL of ch for db after the fixture. It returns false
// without touching the connection when ch is unsupported or volatile on db.
func (c *Checker) Check(ctx context.Context, ch *change.Change, db *database.Database) (bool, error) {
	if !ch.Supports(db) || ch.StatementsVolatile(db) {
		return false, nil
	}

	generated, err := ch.GenerateSQL(db)
	if err != nil {
		return false, err
	}

	statements := make([]string, 0, len(generated))
	for _, statement := range generated {
		statements = append(statements, statement.Text)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBegin, err)
	}

	execErr := c.execute(ctx, tx, c.fixtureFor(ch.Name()), statements)
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		var result *multierror.Error
		if execErr != nil {
			result = multierror.Append(result, execErr)
		}

		result = multierror.Append(result, fmt.Errorf("%w: %w", ErrRollback, err))
		return true, result.ErrorOrNil()
	}

	return true, execErr
}

// fixtureFor returns the fixture run before the named change.
func (c *Checker) fixtureFor(name string) string {
	if c.fixture != nil {
		return *c.fixture
	}

	return ChangeFixture(name)
}

// execute runs fixture and generated statements inside tx.
func (c *Checker) execute(ctx context.Context, tx *sql.Tx, fixture string, statements []string) error {
	for _, statement := range splitFixture(fixture) {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("%w: %w", ErrFixture, err)
		}
	}

	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("%w %q: %w", ErrExecute, statement, err)
		}
	}

	return nil
}

// splitFixture splits fixture text into statements on semicolons.
func splitFixture(fixture string) []string {
	var out []string
	for part := range strings.SplitSeq(fixture, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
