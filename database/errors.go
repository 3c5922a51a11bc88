// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package database

import "errors"

// ErrUnknownDatabase is returned when a short name is not in the catalog.
var ErrUnknownDatabase = errors.New("unknown database")
