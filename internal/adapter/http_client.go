// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/metrics"
	"github.com/vinevault/vinevault/models"
)

const (
	headerProject = "X-Provider-Project"
	headerKey     = "X-Provider-Key"
	headerSession = "X-Provider-Session"
)

// httpProvider talks to an identity provider exposing an Appwrite-style REST
// API. It implements both IdentityProvider and DocumentStore.
type httpProvider struct {
	client   *resty.Client
	project  string
	database string
	logger   *logger.Logger
}

// NewHTTPProvider builds the resty-backed provider client from configuration.
func NewHTTPProvider(cfg config.Provider, log *logger.Logger) (*httpProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("provider endpoint is not configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(timeout).
		SetHeader(headerProject, cfg.Project)
	if cfg.Key != "" {
		cli.SetHeader(headerKey, cfg.Key)
	}
	cli.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		outcome := "success"
		if resp.IsError() {
			outcome = "error"
		}
		metrics.ProviderRequestDuration.
			WithLabelValues(resp.Request.Method, outcome).
			Observe(resp.Time().Seconds())
		return nil
	})

	log.Info().Str("endpoint", cfg.Endpoint).Msg("identity provider client created")
	return &httpProvider{
		client:   cli,
		project:  cfg.Project,
		database: cfg.Database,
		logger:   log,
	}, nil
}

// accountPayload is the provider's wire representation of an account.
type accountPayload struct {
	ID                string            `json:"$id"`
	Email             string            `json:"email"`
	Name              string            `json:"name"`
	EmailVerification bool              `json:"emailVerification"`
	Phone             string            `json:"phone"`
	Prefs             map[string]any    `json:"prefs"`
	CreatedAt         time.Time         `json:"$createdAt"`
	UpdatedAt         time.Time         `json:"$updatedAt"`
	Labels            map[string]string `json:"labels"`
}

// sessionPayload is the provider's wire representation of a session.
type sessionPayload struct {
	ID     string    `json:"$id"`
	UserID string    `json:"userId"`
	Secret string    `json:"secret"`
	Expire time.Time `json:"expire"`
}

func (h *httpProvider) CreateAccount(ctx context.Context, email, password, name string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"userId":   "unique()",
			"email":    email,
			"password": password,
			"name":     name,
		}).
		Post("/account")
	if err != nil {
		return models.User{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.User{}, err
	}

	var acc accountPayload
	if err = json.Unmarshal(resp.Body(), &acc); err != nil {
		return models.User{}, fmt.Errorf("decode account response: %w", err)
	}

	return toUser(acc), nil
}

func (h *httpProvider) GetAccount(ctx context.Context, providerToken string) (models.User, error) {
	resp, err := h.sessionRequest(ctx, providerToken).Get("/account")
	if err != nil {
		return models.User{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.User{}, err
	}

	var acc accountPayload
	if err = json.Unmarshal(resp.Body(), &acc); err != nil {
		return models.User{}, fmt.Errorf("decode account response: %w", err)
	}

	return toUser(acc), nil
}

func (h *httpProvider) CreateEmailSession(ctx context.Context, email, password string) (models.ProviderSession, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/account/sessions/email")
	if err != nil {
		return models.ProviderSession{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.ProviderSession{}, err
	}

	var s sessionPayload
	if err = json.Unmarshal(resp.Body(), &s); err != nil {
		return models.ProviderSession{}, fmt.Errorf("decode session response: %w", err)
	}

	return models.ProviderSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Token:     s.Secret,
		ExpiresAt: s.Expire,
	}, nil
}

func (h *httpProvider) DeleteSession(ctx context.Context, providerToken, scope string) error {
	if scope == "" {
		scope = SessionScopeCurrent
	}

	resp, err := h.sessionRequest(ctx, providerToken).Delete("/account/sessions/" + scope)
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) CreateVerification(ctx context.Context, providerToken, redirectURL string) error {
	resp, err := h.sessionRequest(ctx, providerToken).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"url": redirectURL}).
		Post("/account/verification")
	if err != nil {
		return fmt.Errorf("create verification request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) ConfirmVerification(ctx context.Context, userID, secret string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"userId": userID, "secret": secret}).
		Put("/account/verification")
	if err != nil {
		return fmt.Errorf("confirm verification request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) CreateRecovery(ctx context.Context, email, redirectURL string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "url": redirectURL}).
		Post("/account/recovery")
	if err != nil {
		return fmt.Errorf("create recovery request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) ConfirmRecovery(ctx context.Context, userID, secret, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"userId": userID, "secret": secret, "password": newPassword}).
		Put("/account/recovery")
	if err != nil {
		return fmt.Errorf("confirm recovery request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) UpdatePassword(ctx context.Context, providerToken, newPassword, oldPassword string) error {
	resp, err := h.sessionRequest(ctx, providerToken).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"password": newPassword, "oldPassword": oldPassword}).
		Patch("/account/password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapProviderError(resp)
}

func (h *httpProvider) UpdateProfile(ctx context.Context, providerToken string, update models.ProfileUpdate) (models.User, error) {
	if update.Name != nil {
		resp, err := h.sessionRequest(ctx, providerToken).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"name": *update.Name}).
			Patch("/account/name")
		if err != nil {
			return models.User{}, fmt.Errorf("update name request: %w", err)
		}
		if err = mapProviderError(resp); err != nil {
			return models.User{}, err
		}
	}

	if update.Phone != nil || update.Preferences != nil || update.Consent != nil {
		prefs := map[string]any{}
		if update.Phone != nil {
			prefs["phone"] = *update.Phone
		}
		if update.Preferences != nil {
			prefs["preferences"] = *update.Preferences
		}
		if update.Consent != nil {
			prefs["consent"] = *update.Consent
		}

		resp, err := h.sessionRequest(ctx, providerToken).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]any{"prefs": prefs}).
			Patch("/account/prefs")
		if err != nil {
			return models.User{}, fmt.Errorf("update prefs request: %w", err)
		}
		if err = mapProviderError(resp); err != nil {
			return models.User{}, err
		}
	}

	return h.GetAccount(ctx, providerToken)
}

func (h *httpProvider) DeleteAccount(ctx context.Context, providerToken string) error {
	resp, err := h.sessionRequest(ctx, providerToken).Delete("/account")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapProviderError(resp)
}

// documentListPayload wraps the provider's paginated document listing.
type documentListPayload struct {
	Total     int             `json:"total"`
	Documents json.RawMessage `json:"documents"`
}

func (h *httpProvider) ListDocuments(ctx context.Context, collection string, out any) error {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", h.database, collection)

	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("list documents request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return err
	}

	var list documentListPayload
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return fmt.Errorf("decode document list: %w", err)
	}
	if err = json.Unmarshal(list.Documents, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}

	return nil
}

func (h *httpProvider) sessionRequest(ctx context.Context, providerToken string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if providerToken != "" {
		req.SetHeader(headerSession, providerToken)
	}
	return req
}

// providerErrorPayload is the provider's wire error shape.
type providerErrorPayload struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// mapProviderError converts a non-2xx response into a *ProviderError. The
// body is decoded when it carries the provider's structured shape; otherwise
// the HTTP status alone is used.
func mapProviderError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var payload providerErrorPayload
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Code != 0 {
		return NewProviderError(payload.Code, payload.Type, payload.Message)
	}

	message := strings.TrimSpace(string(resp.Body()))
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return NewProviderError(resp.StatusCode(), "", message)
}

// toUser converts the provider's account payload into the platform model,
// filling the preference, KYC and consent blocks with defaults when the
// account carries none yet.
func toUser(acc accountPayload) models.User {
	u := models.User{
		ID:                acc.ID,
		Email:             acc.Email,
		Name:              acc.Name,
		EmailVerification: acc.EmailVerification,
		Phone:             acc.Phone,
		Preferences:       defaultPreferences(),
		KYC:               models.KYCStatus{Status: models.KYCStatusPending, Documents: []string{}},
		Consent:           models.Consent{Necessary: true, ConsentDate: acc.CreatedAt},
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
	}

	if acc.Prefs == nil {
		return u
	}
	if phone, ok := acc.Prefs["phone"].(string); ok && phone != "" {
		u.Phone = phone
	}
	if raw, ok := acc.Prefs["preferences"]; ok {
		decodeInto(raw, &u.Preferences)
	}
	if raw, ok := acc.Prefs["consent"]; ok {
		decodeInto(raw, &u.Consent)
	}
	if raw, ok := acc.Prefs["kyc"]; ok {
		decodeInto(raw, &u.KYC)
	}

	return u
}

// decodeInto round-trips an untyped prefs value through JSON into a typed
// block. Malformed blocks leave the defaults in place.
func decodeInto(raw any, out any) {
	b, err := json.Marshal(raw)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, out)
}

func defaultPreferences() models.Preferences {
	return models.Preferences{
		Theme:    "light",
		Language: "en",
		Currency: "USD",
		Notifications: models.NotificationToggles{
			Email: true,
			SMS:   false,
			Push:  true,
		},
	}
}
