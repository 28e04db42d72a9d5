// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/models"
)

func newMemory(t *testing.T) *memoryProvider {
	t.Helper()
	p, err := NewMemoryProvider("test-sign-key", time.Hour, logger.Nop())
	require.NoError(t, err)
	return p
}

func createAndLogin(t *testing.T, p *memoryProvider) (models.User, models.ProviderSession) {
	t.Helper()
	ctx := context.Background()

	user, err := p.CreateAccount(ctx, "demo@example.com", "s3cret-pass", "Demo")
	require.NoError(t, err)

	sess, err := p.CreateEmailSession(ctx, "demo@example.com", "s3cret-pass")
	require.NoError(t, err)
	return user, sess
}

func TestMemoryProvider_RegisterThenLogin(t *testing.T) {
	p := newMemory(t)
	user, sess := createAndLogin(t, p)

	assert.Equal(t, user.ID, sess.UserID)
	assert.NotEmpty(t, sess.Token)

	got, err := p.GetAccount(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestMemoryProvider_DuplicateAccount(t *testing.T) {
	p := newMemory(t)
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "demo@example.com", "s3cret-pass", "Demo")
	require.NoError(t, err)

	_, err = p.CreateAccount(ctx, "Demo@Example.com", "other-pass", "Demo Again")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryProvider_WrongPassword(t *testing.T) {
	p := newMemory(t)
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "demo@example.com", "s3cret-pass", "Demo")
	require.NoError(t, err)

	_, err = p.CreateEmailSession(ctx, "demo@example.com", "wrongpassword")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TypeInvalidCredentials, pe.Type)
}

func TestMemoryProvider_DeleteSessionRevokesToken(t *testing.T) {
	p := newMemory(t)
	_, sess := createAndLogin(t, p)
	ctx := context.Background()

	require.NoError(t, p.DeleteSession(ctx, sess.Token, SessionScopeCurrent))

	_, err := p.GetAccount(ctx, sess.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// deleting again reports the missing session
	err = p.DeleteSession(ctx, sess.Token, SessionScopeCurrent)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProvider_DeleteSessionAllScope(t *testing.T) {
	p := newMemory(t)
	_, sess1 := createAndLogin(t, p)
	ctx := context.Background()

	sess2, err := p.CreateEmailSession(ctx, "demo@example.com", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, p.DeleteSession(ctx, sess1.Token, SessionScopeAll))

	_, err = p.GetAccount(ctx, sess2.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMemoryProvider_VerificationFlow(t *testing.T) {
	p := newMemory(t)
	user, sess := createAndLogin(t, p)
	ctx := context.Background()

	require.NoError(t, p.CreateVerification(ctx, sess.Token, "https://vinevault.example/auth/verify-email"))
	require.NoError(t, p.ConfirmVerification(ctx, user.ID, "email-secret"))

	got, err := p.GetAccount(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, got.EmailVerification)
}

func TestMemoryProvider_RecoveryFlow(t *testing.T) {
	p := newMemory(t)
	user, _ := createAndLogin(t, p)
	ctx := context.Background()

	require.NoError(t, p.CreateRecovery(ctx, "demo@example.com", "https://vinevault.example/auth/reset-password"))
	require.NoError(t, p.ConfirmRecovery(ctx, user.ID, "recovery-secret", "brand-new-pass"))

	_, err := p.CreateEmailSession(ctx, "demo@example.com", "s3cret-pass")
	require.Error(t, err)

	_, err = p.CreateEmailSession(ctx, "demo@example.com", "brand-new-pass")
	require.NoError(t, err)
}

func TestMemoryProvider_UpdatePassword(t *testing.T) {
	p := newMemory(t)
	_, sess := createAndLogin(t, p)
	ctx := context.Background()

	err := p.UpdatePassword(ctx, sess.Token, "new-pass-123", "wrong-old")
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TypePasswordMismatch, pe.Type)

	require.NoError(t, p.UpdatePassword(ctx, sess.Token, "new-pass-123", "s3cret-pass"))
}

func TestMemoryProvider_UpdateProfile(t *testing.T) {
	p := newMemory(t)
	_, sess := createAndLogin(t, p)
	ctx := context.Background()

	name := "New Name"
	prefs := models.Preferences{Theme: "dark", Language: "ja", Currency: "EUR"}
	got, err := p.UpdateProfile(ctx, sess.Token, models.ProfileUpdate{Name: &name, Preferences: &prefs})

	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "dark", got.Preferences.Theme)
}

func TestMemoryProvider_DeleteAccount(t *testing.T) {
	p := newMemory(t)
	_, sess := createAndLogin(t, p)
	ctx := context.Background()

	require.NoError(t, p.DeleteAccount(ctx, sess.Token))

	_, err := p.CreateEmailSession(ctx, "demo@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMemoryProvider_SeededCatalog(t *testing.T) {
	p := newMemory(t)

	var vineyards []models.Vineyard
	require.NoError(t, p.ListDocuments(context.Background(), CollectionVineyards, &vineyards))
	assert.NotEmpty(t, vineyards)

	var investments []models.Investment
	require.NoError(t, p.ListDocuments(context.Background(), CollectionInvestments, &investments))
	assert.NotEmpty(t, investments)

	err := p.ListDocuments(context.Background(), "unknown", &vineyards)
	assert.ErrorIs(t, err, ErrNotFound)
}
