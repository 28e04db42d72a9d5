// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vinevault/vinevault/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{"token", "user_id", "provider_token", "created_at", "expires_at"}

func buildInsertSessionQuery(builder sq.StatementBuilderType, s models.Session) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.Token, s.UserID, s.ProviderToken, s.CreatedAt, s.ExpiresAt).
		ToSql()
}

func buildSelectSessionQuery(builder sq.StatementBuilderType, token string) (string, []any, error) {
	return builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildDeleteSessionQuery(builder sq.StatementBuilderType, token string) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildDeleteUserSessionsQuery(builder sq.StatementBuilderType, userID string) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExpiredQuery(builder sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
