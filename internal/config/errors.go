// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package config

import "errors"

var (
	errInvalidLogoutPolicy    = errors.New("logout policy must be `always-clear` or `clear-on-success`")
	errInvalidDBDriver        = errors.New("db driver must be `pgx` or `sqlite3`")
	errProviderProjectMissing = errors.New("provider project is required when a provider endpoint is set")
)
