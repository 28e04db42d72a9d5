// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/app"
	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/notify"
	"github.com/vinevault/vinevault/internal/store"
	"github.com/vinevault/vinevault/internal/utils"
	"github.com/vinevault/vinevault/models"
)

// sessionService implements SessionService. Lifecycle state and the
// in-flight registry are guarded by mu; every mutating operation enters
// Checking via begin and settles via a deferred finish, so the service can
// never stay loading after all operations return. Concurrent settles follow
// last write wins. CheckSession is a read and stays outside both the
// registry and the shared state.
type sessionService struct {
	provider adapter.IdentityProvider
	sessions store.SessionRepository
	notifier notify.Notifier
	cfg      config.App
	logger   *logger.Logger

	// newToken is overridable in tests.
	newToken func() string

	mu       sync.Mutex
	inFlight map[string]struct{}
	state    State
	user     *models.User
}

// NewSessionService constructs the session lifecycle service.
func NewSessionService(provider adapter.IdentityProvider, sessions store.SessionRepository, notifier notify.Notifier, cfg config.App, log *logger.Logger) SessionService {
	return &sessionService{
		provider: provider,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
		logger:   log,
		newToken: utils.NewToken,
		inFlight: make(map[string]struct{}),
		state:    StateUninitialized,
	}
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// begin registers the operation key and enters Checking. Returns the state
// the service was in before, and false when an operation with the same key
// is still running.
func (s *sessionService) begin(key string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return s.state, false
	}
	s.inFlight[key] = struct{}{}
	prev := s.state
	s.state = StateChecking
	return prev, true
}

// finish releases the operation key and settles state and user.
func (s *sessionService) finish(key string, st State, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
	s.state = st
	s.user = user
}

// opContext bounds a remote provider call with the configured operation
// timeout so a hung provider can never leave the service checking forever.
func (s *sessionService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

func (s *sessionService) verificationURL() string {
	return s.cfg.BaseURL + "/verify-email"
}

func (s *sessionService) recoveryURL() string {
	return s.cfg.BaseURL + "/reset-password"
}

func emailKey(email string) string {
	return "email:" + strings.ToLower(email)
}

func tokenKey(token string) string {
	return "token:" + token
}

func userKey(userID string) string {
	return "user:" + userID
}

// CheckSession resolves an opaque token to its stored session and owning
// user. It is a pure read: it never enters the in-flight registry and never
// writes the shared state or user, so parallel checks carrying different
// visitors' cookies can only ever see their own token's owner. A failure at
// any step means anonymous, never an error.
func (s *sessionService) CheckSession(ctx context.Context, token string) (models.Session, *models.User) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return models.Session{}, nil
	}

	now := time.Now()
	if session.Expired(now) {
		if err = s.sessions.DeleteSession(ctx, session.Token); err != nil {
			log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return models.Session{}, nil
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	user, err := s.provider.GetAccount(opCtx, session.ProviderToken)
	if err != nil {
		// The provider no longer honors the credential; the local record is
		// stale and gets dropped. An absent session is not an error.
		log.Debug().Err(err).Msg("provider rejected stored session")
		if delErr := s.sessions.DeleteSession(ctx, session.Token); delErr != nil {
			log.Warn().Err(delErr).Msg("failed to delete rejected session")
		}
		return models.Session{}, nil
	}

	return session, &user
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, *models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.Session{}, nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	key := emailKey(email)
	if _, ok := s.begin(key); !ok {
		return models.Session{}, nil, ErrOperationInFlight
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	providerSession, err := s.provider.CreateEmailSession(opCtx, email, password)
	if err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleLoginFailed, UserMessage(err)))
		s.finish(key, StateAnonymous, nil)
		return models.Session{}, nil, err
	}

	user, err := s.provider.GetAccount(opCtx, providerSession.Token)
	if err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleLoginFailed, UserMessage(err)))
		s.finish(key, StateAnonymous, nil)
		return models.Session{}, nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.SessionTTL)
	if !providerSession.ExpiresAt.IsZero() && providerSession.ExpiresAt.Before(expiresAt) {
		expiresAt = providerSession.ExpiresAt
	}

	session := models.Session{
		Token:         s.newToken(),
		UserID:        user.ID,
		ProviderToken: providerSession.Token,
		CreatedAt:     now,
		ExpiresAt:     expiresAt,
	}

	if err = s.sessions.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("failed to persist session")
		s.notifier.Notify(notify.Error(app.TitleLoginFailed, app.MsgUnexpected))
		s.finish(key, StateAnonymous, nil)
		return models.Session{}, nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	s.notifier.Notify(notify.Success(app.TitleLoginSuccess, app.MsgLoginSuccess))
	s.finish(key, StateAuthenticated, &user)
	return session, &user, nil
}

func (s *sessionService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	key := emailKey(email)
	if _, ok := s.begin(key); !ok {
		return nil, ErrOperationInFlight
	}
	// A new account is never signed in automatically.
	defer s.finish(key, StateAnonymous, nil)

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	user, err := s.provider.CreateAccount(opCtx, email, password, name)
	if err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleRegisterFailed, UserMessage(err)))
		return nil, err
	}

	s.dispatchVerification(ctx, email, password)

	s.notifier.Notify(notify.Success(app.TitleRegisterSuccess, app.MsgRegisterSuccess))
	return &user, nil
}

// dispatchVerification sends the post-registration verification email. The
// provider requires a session to dispatch it, so a throwaway one is created
// and revoked. Every failure here is logged and swallowed: registration
// success does not depend on email dispatch.
func (s *sessionService) dispatchVerification(ctx context.Context, email, password string) {
	log := logger.FromContext(ctx)

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	providerSession, err := s.provider.CreateEmailSession(opCtx, email, password)
	if err != nil {
		log.Warn().Err(err).Msg("verification email skipped: temporary session failed")
		return
	}

	if err = s.provider.CreateVerification(opCtx, providerSession.Token, s.verificationURL()); err != nil {
		log.Warn().Err(err).Msg("verification email dispatch failed")
	}

	if err = s.provider.DeleteSession(opCtx, providerSession.Token, adapter.SessionScopeCurrent); err != nil {
		log.Warn().Err(err).Msg("failed to revoke temporary verification session")
	}
}

func (s *sessionService) Logout(ctx context.Context, session models.Session) (bool, error) {
	log := logger.FromContext(ctx)

	key := tokenKey(session.Token)
	if _, ok := s.begin(key); !ok {
		return false, ErrOperationInFlight
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	err := s.provider.DeleteSession(opCtx, session.ProviderToken, adapter.SessionScopeCurrent)
	if err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleLogoutFailed, UserMessage(err)))

		if s.cfg.LogoutPolicy == config.LogoutClearOnSuccess {
			// Keep the local session so the visitor can retry the remote
			// termination.
			s.finish(key, StateAuthenticated, s.CurrentUser())
			return false, err
		}
	}

	if delErr := s.sessions.DeleteSession(ctx, session.Token); delErr != nil {
		log.Warn().Err(delErr).Msg("failed to delete local session on logout")
	}

	if err == nil {
		s.notifier.Notify(notify.Success(app.TitleLogoutSuccess, app.MsgLogoutSuccess))
	}

	s.finish(key, StateAnonymous, nil)
	return true, err
}

func (s *sessionService) UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (*models.User, error) {
	key := tokenKey(session.Token)
	prev, ok := s.begin(key)
	if !ok {
		return nil, ErrOperationInFlight
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	user, err := s.provider.UpdateProfile(opCtx, session.ProviderToken, update)
	if err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleUpdateFailed, UserMessage(err)))
		s.finish(key, prev, s.CurrentUser())
		return nil, err
	}

	s.notifier.Notify(notify.Success(app.TitleProfileUpdated, app.MsgProfileUpdated))
	s.finish(key, StateAuthenticated, &user)
	return &user, nil
}

func (s *sessionService) RequestVerification(ctx context.Context, session models.Session) error {
	key := tokenKey(session.Token)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}
	defer func() { s.finish(key, prev, s.CurrentUser()) }()

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.CreateVerification(opCtx, session.ProviderToken, s.verificationURL()); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleVerifyFailed, UserMessage(err)))
		return err
	}

	return nil
}

func (s *sessionService) VerifyEmail(ctx context.Context, userID, secret string) error {
	if userID == "" || secret == "" {
		return fmt.Errorf("%w: user ID and secret are required", ErrValidation)
	}

	key := userKey(userID)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}
	defer func() { s.finish(key, prev, s.CurrentUser()) }()

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.ConfirmVerification(opCtx, userID, secret); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleVerifyFailed, UserMessage(err)))
		return err
	}

	s.notifier.Notify(notify.Success(app.TitleEmailVerified, app.MsgEmailVerified))
	return nil
}

func (s *sessionService) ResetPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	key := emailKey(email)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}
	defer func() { s.finish(key, prev, s.CurrentUser()) }()

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.CreateRecovery(opCtx, email, s.recoveryURL()); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleRecoveryFailed, UserMessage(err)))
		return err
	}

	s.notifier.Notify(notify.Success(app.TitleRecoverySent, app.MsgRecoverySent))
	return nil
}

func (s *sessionService) ConfirmReset(ctx context.Context, userID, secret, newPassword string) error {
	if userID == "" || secret == "" || newPassword == "" {
		return fmt.Errorf("%w: user ID, secret and new password are required", ErrValidation)
	}

	key := userKey(userID)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}
	defer func() { s.finish(key, prev, s.CurrentUser()) }()

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.ConfirmRecovery(opCtx, userID, secret, newPassword); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleRecoveryFailed, UserMessage(err)))
		return err
	}

	s.notifier.Notify(notify.Success(app.TitlePasswordUpdated, app.MsgPasswordUpdated))
	return nil
}

func (s *sessionService) UpdatePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: old and new passwords are required", ErrValidation)
	}

	key := tokenKey(session.Token)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}
	defer func() { s.finish(key, prev, s.CurrentUser()) }()

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.UpdatePassword(opCtx, session.ProviderToken, newPassword, oldPassword); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleUpdateFailed, UserMessage(err)))
		return err
	}

	s.notifier.Notify(notify.Success(app.TitlePasswordUpdated, app.MsgPasswordUpdated))
	return nil
}

func (s *sessionService) DeleteAccount(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	key := tokenKey(session.Token)
	prev, ok := s.begin(key)
	if !ok {
		return ErrOperationInFlight
	}

	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.provider.DeleteAccount(opCtx, session.ProviderToken); err != nil {
		err = mapProviderError(err)
		s.notifier.Notify(notify.Error(app.TitleDeleteFailed, UserMessage(err)))
		s.finish(key, prev, s.CurrentUser())
		return err
	}

	if err := s.sessions.DeleteUserSessions(ctx, session.UserID); err != nil {
		log.Warn().Err(err).Str("user_id", session.UserID).Msg("failed to delete user sessions after account deletion")
	}

	s.notifier.Notify(notify.Success(app.TitleAccountDeleted, app.MsgAccountDeleted))
	s.finish(key, StateAnonymous, nil)
	return nil
}
