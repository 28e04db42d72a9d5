// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/models"
)

// newTestProvider builds an httpProvider pointed at the test server.
func newTestProvider(t *testing.T, serverURL string) *httpProvider {
	t.Helper()
	cfg := config.Provider{
		Endpoint: serverURL,
		Project:  "vinevault-test",
		Database: "vinevault-db",
	}

	p, err := NewHTTPProvider(cfg, logger.Nop())
	require.NoError(t, err)
	return p
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestCreateAccount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, "vinevault-test", r.Header.Get(headerProject))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "Alice", body["name"])

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"$id":               "user-1",
			"email":             "alice@example.com",
			"name":              "Alice",
			"emailVerification": false,
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	user, err := p.CreateAccount(context.Background(), "alice@example.com", "s3cret", "Alice")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.EmailVerification)

	// profile blocks are filled with defaults for a fresh account
	assert.Equal(t, "light", user.Preferences.Theme)
	assert.Equal(t, models.KYCStatusPending, user.KYC.Status)
	assert.True(t, user.Consent.Necessary)
}

func TestCreateAccount_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]any{
			"code":    409,
			"type":    TypeEmailExists,
			"message": "A user with the same email already exists",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.CreateAccount(context.Background(), "alice@example.com", "s3cret", "Alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TypeEmailExists, pe.Type)
}

// ── CreateEmailSession ───────────────────────────────────────────────────────

func TestCreateEmailSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/sessions/email", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"$id":    "sess-1",
			"userId": "user-1",
			"secret": "provider-jwt",
			"expire": "2030-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	sess, err := p.CreateEmailSession(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "provider-jwt", sess.Token)
	assert.False(t, sess.ExpiresAt.IsZero())
}

func TestCreateEmailSession_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"code":    401,
			"type":    TypeInvalidCredentials,
			"message": "Invalid credentials",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.CreateEmailSession(context.Background(), "alice@example.com", "wrongpassword")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetAccount ───────────────────────────────────────────────────────────────

func TestGetAccount_SendsSessionHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "provider-jwt", r.Header.Get(headerSession))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"$id":   "user-1",
			"email": "alice@example.com",
			"prefs": map[string]any{
				"preferences": map[string]any{"theme": "dark", "language": "de", "currency": "EUR"},
			},
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	user, err := p.GetAccount(context.Background(), "provider-jwt")

	require.NoError(t, err)
	assert.Equal(t, "dark", user.Preferences.Theme)
	assert.Equal(t, "de", user.Preferences.Language)
	assert.Equal(t, "EUR", user.Preferences.Currency)
}

func TestGetAccount_NoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"code": 401, "type": TypeSessionNotFound, "message": "No session",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetAccount(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── DeleteSession ────────────────────────────────────────────────────────────

func TestDeleteSession_DefaultScope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/sessions/current", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	require.NoError(t, p.DeleteSession(context.Background(), "provider-jwt", ""))
}

// ── Recovery / verification ──────────────────────────────────────────────────

func TestCreateRecovery_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTooManyRequests, map[string]any{
			"code": 429, "type": TypeRateLimitExceeded, "message": "Rate limit exceeded",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	err := p.CreateRecovery(context.Background(), "alice@example.com", "https://vinevault.example/auth/reset-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestConfirmVerification_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/account/verification", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user-1", body["userId"])
		assert.Equal(t, "secret-token", body["secret"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	require.NoError(t, p.ConfirmVerification(context.Background(), "user-1", "secret-token"))
}

// ── Documents ────────────────────────────────────────────────────────────────

func TestListDocuments_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/vinevault-db/collections/vineyards/documents", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total": 1,
			"documents": []map[string]any{
				{"id": "vy-1", "name": "Barolo Ridge Estate", "country": "Italy"},
			},
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)

	var vineyards []models.Vineyard
	require.NoError(t, p.ListDocuments(context.Background(), CollectionVineyards, &vineyards))
	require.Len(t, vineyards, 1)
	assert.Equal(t, "vy-1", vineyards[0].ID)
	assert.Equal(t, "Italy", vineyards[0].Country)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapProviderError_UnstructuredBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.GetAccount(context.Background(), "provider-jwt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusBadGateway, pe.Code)
	assert.Equal(t, "upstream exploded", pe.Message)
}

func TestNewHTTPProvider_RequiresEndpoint(t *testing.T) {
	_, err := NewHTTPProvider(config.Provider{}, logger.Nop())
	require.Error(t, err)
}
