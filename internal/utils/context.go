// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package utils

import (
	"context"

	"github.com/vinevault/vinevault/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// resolved session record.
var SessionCtxKey = contextKey("session")

// UserCtxKey is the key under which the auth middleware stores the resolved
// user.
var UserCtxKey = contextKey("user")

// LocaleCtxKey is the key under which the locale middleware stores the
// resolved locale code.
var LocaleCtxKey = contextKey("locale")

// GetSessionFromContext retrieves the session record stored by the auth
// middleware. ok is false when no session was resolved.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetUserFromContext retrieves the authenticated user stored by the auth
// middleware.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	return user, ok && user != nil
}

// GetLocaleFromContext retrieves the locale code stored by the locale
// middleware.
func GetLocaleFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(LocaleCtxKey).(string)
	return code, ok
}
