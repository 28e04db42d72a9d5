// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package config

import "time"

// Built-in fallbacks applied after all sources are merged.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultSessionCookieName = "vv_session"
	defaultSessionTTL        = 24 * time.Hour
	defaultOperationTimeout  = 15 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultProviderTimeout   = 15 * time.Second
	defaultSweepInterval     = 10 * time.Minute
	defaultDBDriver          = "sqlite3"
	defaultDBDSN             = "vinevault-sessions.db"
)

// applyDefaults fills every unset field with its built-in fallback so the
// service starts with zero configuration in demo mode.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.SessionCookieName == "" {
		c.App.SessionCookieName = defaultSessionCookieName
	}
	if c.App.SessionTTL <= 0 {
		c.App.SessionTTL = defaultSessionTTL
	}
	if c.App.OperationTimeout <= 0 {
		c.App.OperationTimeout = defaultOperationTimeout
	}
	if c.App.LogoutPolicy == "" {
		c.App.LogoutPolicy = LogoutAlwaysClear
	}
	if c.Provider.Timeout <= 0 {
		c.Provider.Timeout = defaultProviderTimeout
	}
	if c.Workers.SweepInterval <= 0 {
		c.Workers.SweepInterval = defaultSweepInterval
	}
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = defaultDBDriver
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDBDSN
	}
}

// validate rejects configurations the service cannot run with.
func (c *StructuredConfig) validate() error {
	if c.App.LogoutPolicy != LogoutAlwaysClear && c.App.LogoutPolicy != LogoutClearOnSuccess {
		return errInvalidLogoutPolicy
	}
	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		return errInvalidDBDriver
	}
	if c.Provider.Endpoint != "" && c.Provider.Project == "" {
		return errProviderProjectMissing
	}
	if c.Provider.Endpoint == "" && c.App.SessionSignKey == "" {
		// demo provider signs its own session tokens
		c.App.SessionSignKey = "vinevault-demo-sign-key"
	}
	return nil
}
