// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package store implements the server-side session store. The browser only
// ever holds an opaque cookie token; this package maps it to the identity
// provider credential and owner so the provider session never reaches the
// client. PostgreSQL and SQLite backends are supported behind the same
// repository interface.
package store

import (
	"context"
	"time"

	"github.com/vinevault/vinevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// SessionRepository persists issued sessions.
type SessionRepository interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession looks a session up by its opaque token. Returns
	// ErrSessionNotFound when the token is unknown.
	GetSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes a session by token. Deleting an unknown token
	// is not an error.
	DeleteSession(ctx context.Context, token string) error

	// DeleteUserSessions removes every session belonging to the user.
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpired removes all sessions whose expiry is at or before now
	// and returns the number of deleted rows.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Storages aggregates all repositories the service layer depends on.
type Storages struct {
	Sessions SessionRepository
}
