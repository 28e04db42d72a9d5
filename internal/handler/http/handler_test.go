// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"context"
	"testing"
	"time"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/notify"
	"github.com/vinevault/vinevault/internal/service"
	"github.com/vinevault/vinevault/models"
)

// ── mock service.SessionService ──────────────────────────────────────────────

// mockSessionService implements service.SessionService for unit tests.
// Each method field can be overridden per test case.
type mockSessionService struct {
	checkSessionFn        func(ctx context.Context, token string) (models.Session, *models.User)
	loginFn               func(ctx context.Context, email, password string) (models.Session, *models.User, error)
	registerFn            func(ctx context.Context, email, password, name string) (*models.User, error)
	logoutFn              func(ctx context.Context, session models.Session) (bool, error)
	updateProfileFn       func(ctx context.Context, session models.Session, update models.ProfileUpdate) (*models.User, error)
	requestVerificationFn func(ctx context.Context, session models.Session) error
	verifyEmailFn         func(ctx context.Context, userID, secret string) error
	resetPasswordFn       func(ctx context.Context, email string) error
	confirmResetFn        func(ctx context.Context, userID, secret, newPassword string) error
	updatePasswordFn      func(ctx context.Context, session models.Session, oldPassword, newPassword string) error
	deleteAccountFn       func(ctx context.Context, session models.Session) error
}

func (m *mockSessionService) State() service.State      { return service.StateUninitialized }
func (m *mockSessionService) IsAuthenticated() bool     { return false }
func (m *mockSessionService) CurrentUser() *models.User { return nil }

func (m *mockSessionService) CheckSession(ctx context.Context, token string) (models.Session, *models.User) {
	if m.checkSessionFn != nil {
		return m.checkSessionFn(ctx, token)
	}
	return models.Session{}, nil
}

func (m *mockSessionService) Login(ctx context.Context, email, password string) (models.Session, *models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockSessionService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	return m.registerFn(ctx, email, password, name)
}

func (m *mockSessionService) Logout(ctx context.Context, session models.Session) (bool, error) {
	return m.logoutFn(ctx, session)
}

func (m *mockSessionService) UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (*models.User, error) {
	return m.updateProfileFn(ctx, session, update)
}

func (m *mockSessionService) RequestVerification(ctx context.Context, session models.Session) error {
	return m.requestVerificationFn(ctx, session)
}

func (m *mockSessionService) VerifyEmail(ctx context.Context, userID, secret string) error {
	return m.verifyEmailFn(ctx, userID, secret)
}

func (m *mockSessionService) ResetPassword(ctx context.Context, email string) error {
	return m.resetPasswordFn(ctx, email)
}

func (m *mockSessionService) ConfirmReset(ctx context.Context, userID, secret, newPassword string) error {
	return m.confirmResetFn(ctx, userID, secret, newPassword)
}

func (m *mockSessionService) UpdatePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) error {
	return m.updatePasswordFn(ctx, session, oldPassword, newPassword)
}

func (m *mockSessionService) DeleteAccount(ctx context.Context, session models.Session) error {
	return m.deleteAccountFn(ctx, session)
}

// ── mock service.CatalogService ──────────────────────────────────────────────

type mockCatalogService struct {
	listVineyardsFn    func(ctx context.Context, filter models.VineyardFilter) ([]models.Vineyard, error)
	listInvestmentsFn  func(ctx context.Context, userID string) ([]models.Investment, error)
	listTransactionsFn func(ctx context.Context, userID, txType string) ([]models.Transaction, error)
}

func (m *mockCatalogService) ListVineyards(ctx context.Context, filter models.VineyardFilter) ([]models.Vineyard, error) {
	return m.listVineyardsFn(ctx, filter)
}

func (m *mockCatalogService) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	return m.listInvestmentsFn(ctx, userID)
}

func (m *mockCatalogService) ListTransactions(ctx context.Context, userID, txType string) ([]models.Transaction, error) {
	return m.listTransactionsFn(ctx, userID, txType)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestHandler(t *testing.T, session *mockSessionService, catalog *mockCatalogService) *Handler {
	t.Helper()

	if session == nil {
		session = &mockSessionService{}
	}
	if catalog == nil {
		catalog = &mockCatalogService{}
	}

	cfg := &config.StructuredConfig{
		App: config.App{
			Version:           "1.2.3",
			BaseURL:           "https://vinevault.example",
			SessionCookieName: "vv_session",
			SessionTTL:        24 * time.Hour,
			OperationTimeout:  5 * time.Second,
			LogoutPolicy:      config.LogoutAlwaysClear,
		},
	}

	log := logger.Nop()
	return NewHandler(
		&service.Services{Session: session, Catalog: catalog},
		notify.NewHub(log),
		cfg,
		log,
	)
}
