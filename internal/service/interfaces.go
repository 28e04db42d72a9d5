// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package service contains the application's business logic: the session
// lifecycle state machine fronting the identity provider, and the catalog
// service serving vineyard and portfolio listings.
package service

import (
	"context"

	"github.com/vinevault/vinevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// State describes where the session service currently is in its lifecycle.
// A fresh instance is Uninitialized; every operation passes through Checking
// and settles in Authenticated or Anonymous.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// SessionService owns the authentication lifecycle. Every operation is
// bounded by the configured operation timeout, settles the service state via
// deferred completion, and rejects a second concurrent operation for the
// same visitor with ErrOperationInFlight.
type SessionService interface {
	// State reports the current lifecycle state.
	State() State

	// IsAuthenticated reports whether the last settled operation left an
	// authenticated user. Equivalent to CurrentUser() != nil.
	IsAuthenticated() bool

	// CurrentUser returns the user of the last settled operation, or nil.
	CurrentUser() *models.User

	// CheckSession resolves the opaque cookie token to the stored session
	// and its user. Any failure (unknown token, expired session, provider
	// rejection) yields a nil user and no error: an absent session is not
	// an error condition. It is a read and does not move the lifecycle
	// state, so parallel checks cannot observe one another.
	CheckSession(ctx context.Context, token string) (models.Session, *models.User)

	// Login exchanges credentials for a provider session, persists the
	// server-side session record, and returns it with the hydrated user.
	Login(ctx context.Context, email, password string) (models.Session, *models.User, error)

	// Register creates a new account. The verification email is dispatched
	// best-effort: its failure is logged and never fails the registration.
	// The new account is not signed in.
	Register(ctx context.Context, email, password, name string) (*models.User, error)

	// Logout terminates the provider session and deletes the local record.
	// The returned flag reports whether local state was cleared, which
	// depends on the configured logout policy when the remote call fails.
	Logout(ctx context.Context, session models.Session) (cleared bool, err error)

	// UpdateProfile applies a partial profile change.
	UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (*models.User, error)

	// RequestVerification asks the provider to send a verification email for
	// the authenticated account.
	RequestVerification(ctx context.Context, session models.Session) error

	// VerifyEmail completes email verification with the emailed secret.
	VerifyEmail(ctx context.Context, userID, secret string) error

	// ResetPassword dispatches a password-recovery email.
	ResetPassword(ctx context.Context, email string) error

	// ConfirmReset sets a new password using the recovery secret.
	ConfirmReset(ctx context.Context, userID, secret, newPassword string) error

	// UpdatePassword changes the password of the authenticated account after
	// re-verifying the old one.
	UpdatePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) error

	// DeleteAccount schedules account deletion and revokes every session of
	// the user, local records included.
	DeleteAccount(ctx context.Context, session models.Session) error
}

// CatalogService serves the vineyard catalog and per-user portfolios from
// the provider's document collections.
type CatalogService interface {
	// ListVineyards returns vineyards matching the filter, sorted as
	// requested.
	ListVineyards(ctx context.Context, filter models.VineyardFilter) ([]models.Vineyard, error)

	// ListInvestments returns the investments belonging to the user.
	ListInvestments(ctx context.Context, userID string) ([]models.Investment, error)

	// ListTransactions returns the user's activity feed, newest first,
	// optionally narrowed to one transaction type.
	ListTransactions(ctx context.Context, userID, txType string) ([]models.Transaction, error)
}
