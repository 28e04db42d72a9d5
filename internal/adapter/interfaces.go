// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package adapter contains the outbound client for the external identity
// provider. All remote calls the platform makes (account lifecycle, session
// issuance, verification, recovery, and document reads) go through the
// interfaces defined here, so the rest of the application never sees a
// provider-specific wire shape or error code.
package adapter

import (
	"context"

	"github.com/vinevault/vinevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// SessionScopeCurrent deletes only the session whose token authenticates the
// call; SessionScopeAll revokes every session of the account.
const (
	SessionScopeCurrent = "current"
	SessionScopeAll     = "all"
)

// IdentityProvider is the provider-agnostic surface of the external identity
// service. The providerToken argument is the session credential previously
// issued by CreateEmailSession; operations that do not take one are
// unauthenticated.
type IdentityProvider interface {
	// CreateAccount registers a new account. It does not create a session.
	CreateAccount(ctx context.Context, email, password, name string) (models.User, error)

	// GetAccount returns the account the token belongs to, or an
	// unauthorized error when the session no longer exists.
	GetAccount(ctx context.Context, providerToken string) (models.User, error)

	// CreateEmailSession verifies credentials and issues a session.
	CreateEmailSession(ctx context.Context, email, password string) (models.ProviderSession, error)

	// DeleteSession terminates sessions of the calling account according to
	// scope (SessionScopeCurrent or SessionScopeAll).
	DeleteSession(ctx context.Context, providerToken, scope string) error

	// CreateVerification asks the provider to dispatch a verification email
	// pointing at redirectURL.
	CreateVerification(ctx context.Context, providerToken, redirectURL string) error

	// ConfirmVerification completes email verification with the secret from
	// the dispatched email.
	ConfirmVerification(ctx context.Context, userID, secret string) error

	// CreateRecovery asks the provider to dispatch a password-recovery email.
	CreateRecovery(ctx context.Context, email, redirectURL string) error

	// ConfirmRecovery sets a new password using the recovery secret.
	ConfirmRecovery(ctx context.Context, userID, secret, newPassword string) error

	// UpdatePassword changes the password of the calling account. The old
	// password is re-verified by the provider.
	UpdatePassword(ctx context.Context, providerToken, newPassword, oldPassword string) error

	// UpdateProfile applies a partial profile change to the calling account
	// and returns the updated account.
	UpdateProfile(ctx context.Context, providerToken string, update models.ProfileUpdate) (models.User, error)

	// DeleteAccount schedules deletion of the calling account and revokes
	// its sessions.
	DeleteAccount(ctx context.Context, providerToken string) error
}

// DocumentStore is the read-only document surface of the provider's database
// service. The catalog uses it to fetch the vineyard and investment
// collections; out must be a pointer to a slice of the collection's model.
type DocumentStore interface {
	ListDocuments(ctx context.Context, collection string, out any) error
}

// Collection identifiers in the provider's database.
const (
	CollectionVineyards    = "vineyards"
	CollectionInvestments  = "investments"
	CollectionTransactions = "transactions"
)
