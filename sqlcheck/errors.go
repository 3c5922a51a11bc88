// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package sqlcheck

import "errors"

var (
	// ErrOpen is returned when the scratch database connection cannot be opened.
	ErrOpen = errors.New("open scratch database")
	// ErrUnknownDriver is returned when no fixture or DSN default exists for a driver.
	ErrUnknownDriver = errors.New("unknown sql driver")
	// ErrBegin is returned when the check transaction cannot start.
	ErrBegin = errors.New("begin check transaction")
	// ErrFixture is returned when fixture statements fail.
	ErrFixture = errors.New("apply fixture")
	// ErrExecute is returned when generated SQL fails on the scratch database.
	ErrExecute = errors.New("execute generated sql")
	// ErrRollback is returned when the check transaction cannot be rolled back.
	ErrRollback = errors.New("rollback check transaction")
)
