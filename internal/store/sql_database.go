// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/migrations"
)

// DB wraps the shared *sql.DB together with the driver-specific placeholder
// format and the unique-violation classifier.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens the configured backend, pings it, and runs migrations.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case "pgx":
		db, err = newConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		db, err = newConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating session store: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded goose migrations for the active dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns the squirrel statement builder configured with the
// driver's placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// NewStorages wires all repositories on top of an open connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Sessions: NewSessionRepository(db, log),
	}
}
