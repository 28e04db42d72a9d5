// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// It works unchanged against both supported backends; the embedded [*DB]
// carries the placeholder format and unique-violation classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	log.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: log,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.Builder(), session)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.CreateSession").Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) || isSQLiteUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}
		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Str("user_id", session.UserID).
			Msg("failed to insert session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.Builder(), token)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&s.Token, &s.UserID, &s.ProviderToken, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.Builder(), token)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserSessionsQuery(r.Builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteUserSessions").Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteUserSessions").
			Str("user_id", userID).
			Msg("failed to delete user sessions")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredQuery(r.Builder(), now)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpired").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpired").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return deleted, nil
}
