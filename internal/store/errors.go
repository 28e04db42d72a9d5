// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package store

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyExists is returned when a token collides with an
	// existing session record.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrBuildingSQLQuery wraps query-builder failures.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery wraps driver-level execution failures.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow wraps row-scan failures.
	ErrScanningRow = errors.New("error scanning row")
)
