// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/models"
)

// memoryProvider is the demo-mode identity provider. It keeps accounts in
// memory, hashes passwords with bcrypt, and issues signed JWT session tokens.
// It backs local development and every environment where no real provider
// endpoint is configured, mirroring the original product's demo mode.
type memoryProvider struct {
	signKey    []byte
	sessionTTL time.Duration
	logger     *logger.Logger

	mu       sync.RWMutex
	accounts map[string]*memoryAccount // keyed by lowercase email
	sessions map[string]string         // session ID -> user ID
	catalog  map[string]json.RawMessage
}

type memoryAccount struct {
	user         models.User
	passwordHash []byte
}

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// NewMemoryProvider builds the in-memory provider. sessionTTL bounds the
// lifetime of issued tokens; signKey must be non-empty.
func NewMemoryProvider(signKey string, sessionTTL time.Duration, log *logger.Logger) (*memoryProvider, error) {
	if signKey == "" {
		return nil, fmt.Errorf("memory provider requires a signing key")
	}
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}

	p := &memoryProvider{
		signKey:    []byte(signKey),
		sessionTTL: sessionTTL,
		logger:     log,
		accounts:   make(map[string]*memoryAccount),
		sessions:   make(map[string]string),
		catalog:    make(map[string]json.RawMessage),
	}
	p.seedCatalog()

	log.Info().Msg("demo identity provider created")
	return p, nil
}

func (p *memoryProvider) CreateAccount(_ context.Context, email, password, name string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" || password == "" {
		return models.User{}, NewProviderError(400, "", "missing email or password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[key]; exists {
		return models.User{}, NewProviderError(409, TypeEmailExists, "account already exists")
	}

	now := time.Now().UTC()
	user := models.User{
		ID:    uuid.NewString(),
		Email: key,
		Name:  name,
		Preferences: models.Preferences{
			Theme:    "light",
			Language: "en",
			Currency: "USD",
			Notifications: models.NotificationToggles{
				Email: true,
				Push:  true,
			},
		},
		KYC:       models.KYCStatus{Status: models.KYCStatusPending, Documents: []string{}},
		Consent:   models.Consent{Necessary: true, ConsentDate: now},
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.accounts[key] = &memoryAccount{user: user, passwordHash: hash}
	return user, nil
}

func (p *memoryProvider) GetAccount(_ context.Context, providerToken string) (models.User, error) {
	userID, err := p.resolveToken(providerToken)
	if err != nil {
		return models.User{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	acc := p.accountByID(userID)
	if acc == nil {
		return models.User{}, NewProviderError(401, TypeSessionNotFound, "session user no longer exists")
	}
	return acc.user, nil
}

func (p *memoryProvider) CreateEmailSession(_ context.Context, email, password string) (models.ProviderSession, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	p.mu.Lock()
	defer p.mu.Unlock()

	acc, exists := p.accounts[key]
	if !exists {
		return models.ProviderSession{}, NewProviderError(401, TypeInvalidCredentials, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return models.ProviderSession{}, NewProviderError(401, TypeInvalidCredentials, "invalid credentials")
	}

	sessionID := uuid.NewString()
	expiry := time.Now().UTC().Add(p.sessionTTL)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.user.ID,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
		SessionID: sessionID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signKey)
	if err != nil {
		return models.ProviderSession{}, fmt.Errorf("sign session token: %w", err)
	}

	p.sessions[sessionID] = acc.user.ID
	return models.ProviderSession{
		ID:        sessionID,
		UserID:    acc.user.ID,
		Token:     signed,
		ExpiresAt: expiry,
	}, nil
}

func (p *memoryProvider) DeleteSession(_ context.Context, providerToken, scope string) error {
	claims, err := p.parseToken(providerToken)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch scope {
	case SessionScopeAll:
		for id, userID := range p.sessions {
			if userID == claims.Subject {
				delete(p.sessions, id)
			}
		}
	default:
		if _, exists := p.sessions[claims.SessionID]; !exists {
			return NewProviderError(404, TypeSessionNotFound, "session not found")
		}
		delete(p.sessions, claims.SessionID)
	}

	return nil
}

func (p *memoryProvider) CreateVerification(_ context.Context, providerToken, _ string) error {
	_, err := p.resolveToken(providerToken)
	return err
}

func (p *memoryProvider) ConfirmVerification(_ context.Context, userID, secret string) error {
	if secret == "" {
		return NewProviderError(400, "", "missing verification secret")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.accountByID(userID)
	if acc == nil {
		return NewProviderError(404, "", "user not found")
	}
	acc.user.EmailVerification = true
	acc.user.UpdatedAt = time.Now().UTC()
	return nil
}

func (p *memoryProvider) CreateRecovery(_ context.Context, email, _ string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, exists := p.accounts[strings.ToLower(strings.TrimSpace(email))]; !exists {
		return NewProviderError(404, "", "user not found")
	}
	return nil
}

func (p *memoryProvider) ConfirmRecovery(_ context.Context, userID, secret, newPassword string) error {
	if secret == "" || newPassword == "" {
		return NewProviderError(400, "", "missing recovery secret or password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.accountByID(userID)
	if acc == nil {
		return NewProviderError(404, "", "user not found")
	}
	acc.passwordHash = hash
	acc.user.UpdatedAt = time.Now().UTC()
	return nil
}

func (p *memoryProvider) UpdatePassword(_ context.Context, providerToken, newPassword, oldPassword string) error {
	userID, err := p.resolveToken(providerToken)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.accountByID(userID)
	if acc == nil {
		return NewProviderError(401, TypeSessionNotFound, "session user no longer exists")
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(oldPassword)) != nil {
		return NewProviderError(401, TypePasswordMismatch, "password mismatch")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	acc.passwordHash = hash
	acc.user.UpdatedAt = time.Now().UTC()
	return nil
}

func (p *memoryProvider) UpdateProfile(_ context.Context, providerToken string, update models.ProfileUpdate) (models.User, error) {
	userID, err := p.resolveToken(providerToken)
	if err != nil {
		return models.User{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc := p.accountByID(userID)
	if acc == nil {
		return models.User{}, NewProviderError(401, TypeSessionNotFound, "session user no longer exists")
	}

	if update.Name != nil {
		acc.user.Name = *update.Name
	}
	if update.Phone != nil {
		acc.user.Phone = *update.Phone
	}
	if update.Preferences != nil {
		acc.user.Preferences = *update.Preferences
	}
	if update.Consent != nil {
		acc.user.Consent = *update.Consent
	}
	acc.user.UpdatedAt = time.Now().UTC()

	return acc.user, nil
}

func (p *memoryProvider) DeleteAccount(_ context.Context, providerToken string) error {
	userID, err := p.resolveToken(providerToken)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for email, acc := range p.accounts {
		if acc.user.ID == userID {
			delete(p.accounts, email)
		}
	}
	for id, owner := range p.sessions {
		if owner == userID {
			delete(p.sessions, id)
		}
	}
	return nil
}

func (p *memoryProvider) ListDocuments(_ context.Context, collection string, out any) error {
	p.mu.RLock()
	raw, exists := p.catalog[collection]
	p.mu.RUnlock()

	if !exists {
		return NewProviderError(404, "", "collection not found: "+collection)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// resolveToken verifies the token and checks the session is still live.
func (p *memoryProvider) resolveToken(providerToken string) (string, error) {
	claims, err := p.parseToken(providerToken)
	if err != nil {
		return "", err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, live := p.sessions[claims.SessionID]; !live {
		return "", NewProviderError(401, TypeSessionNotFound, "session revoked or expired")
	}
	return claims.Subject, nil
}

func (p *memoryProvider) parseToken(providerToken string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(providerToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.signKey, nil
	})
	if err != nil {
		return nil, NewProviderError(401, TypeSessionNotFound, "invalid session token")
	}
	return claims, nil
}

// accountByID requires the caller to hold at least a read lock.
func (p *memoryProvider) accountByID(userID string) *memoryAccount {
	for _, acc := range p.accounts {
		if acc.user.ID == userID {
			return acc
		}
	}
	return nil
}

// seedCatalog loads the demo vineyard, investment and transaction collections
// so the marketing, portfolio and activity screens have data to render out of
// the box.
func (p *memoryProvider) seedCatalog() {
	vineyards := []models.Vineyard{
		{
			ID: "vy-barolo-ridge", Name: "Barolo Ridge Estate",
			Country: "Italy", Region: "Piedmont",
			Description:    "Nebbiolo terraces above the Tanaro valley.",
			WineTypes:      []string{"Barolo", "Nebbiolo"},
			TotalVines:     12000, AvailableVines: 3400,
			PricePerVine: 185, ExpectedROI: 7.2,
			Status: models.VineyardStatusActive, Featured: true, MinimumVines: 5,
		},
		{
			ID: "vy-chianti-sole", Name: "Chianti Sole",
			Country: "Italy", Region: "Tuscany",
			Description:    "Sangiovese rows on south-facing clay slopes.",
			WineTypes:      []string{"Chianti Classico"},
			TotalVines:     20000, AvailableVines: 8100,
			PricePerVine: 95, ExpectedROI: 5.8,
			Status: models.VineyardStatusActive, MinimumVines: 10,
		},
		{
			ID: "vy-mosel-terrassen", Name: "Mosel Terrassen",
			Country: "Germany", Region: "Mosel",
			Description:    "Steep slate Riesling parcels along the river bend.",
			WineTypes:      []string{"Riesling"},
			TotalVines:     8000, AvailableVines: 0,
			PricePerVine: 140, ExpectedROI: 6.4,
			Status: models.VineyardStatusSoldOut, MinimumVines: 5,
		},
		{
			ID: "vy-etna-nord", Name: "Etna Nord",
			Country: "Italy", Region: "Sicily",
			Description:    "Volcanic-soil Nerello Mascalese at 900 metres.",
			WineTypes:      []string{"Etna Rosso", "Nerello Mascalese"},
			TotalVines:     6000, AvailableVines: 2750,
			PricePerVine: 210, ExpectedROI: 8.1,
			Status: models.VineyardStatusActive, Featured: true, MinimumVines: 3,
		},
	}

	investments := []models.Investment{
		{
			ID: "inv-demo-1", UserID: "demo-user", VineyardID: "vy-barolo-ridge",
			VineyardName: "Barolo Ridge Estate", NumberOfVines: 12,
			TotalAmount: 2220, PricePerVine: 185, CurrentValue: 2412,
			Status: models.InvestmentStatusActive,
		},
		{
			ID: "inv-demo-2", UserID: "demo-user", VineyardID: "vy-chianti-sole",
			VineyardName: "Chianti Sole", NumberOfVines: 30,
			TotalAmount: 2850, PricePerVine: 95, CurrentValue: 2790,
			Status: models.InvestmentStatusPending,
		},
	}

	transactions := []models.Transaction{
		{
			ID: "tx-demo-1", UserID: "demo-user", Type: models.TransactionTypeDividend,
			Title:       "Dividend payment received",
			Description: "Quarterly dividend from Barolo Ridge Estate",
			Amount:      245, Status: models.TransactionStatusCompleted,
			Date: time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: "tx-demo-2", UserID: "demo-user", Type: models.TransactionTypeInvestment,
			Title:       "Investment purchase",
			Description: "Purchased 30 vines in Chianti Sole",
			Amount:      -2850, Status: models.TransactionStatusCompleted,
			Date: time.Date(2026, 5, 28, 14, 15, 0, 0, time.UTC),
		},
		{
			ID: "tx-demo-3", UserID: "demo-user", Type: models.TransactionTypeSystem,
			Title:       "Account verification completed",
			Description: "Your account has been fully verified and activated",
			Status:      models.TransactionStatusCompleted,
			Date:        time.Date(2026, 5, 10, 8, 30, 0, 0, time.UTC),
		},
	}

	vb, _ := json.Marshal(vineyards)
	ib, _ := json.Marshal(investments)
	tb, _ := json.Marshal(transactions)
	p.catalog[CollectionVineyards] = vb
	p.catalog[CollectionInvestments] = ib
	p.catalog[CollectionTransactions] = tb
}
