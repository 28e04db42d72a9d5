// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package models

import "time"

// ProviderSession is the session record issued by the identity provider
// after a successful email/password exchange.
type ProviderSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Session is the server-side record the platform keeps for every issued
// session cookie. The cookie carries only the opaque Token; the provider
// credential never leaves the backend.
type Session struct {
	Token         string    `json:"token"`
	UserID        string    `json:"user_id"`
	ProviderToken string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
