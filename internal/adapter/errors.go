// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel transport errors. Callers match against them with errors.Is; the
// carried *ProviderError (via errors.As) exposes the provider's own code and
// type tag for finer-grained mapping.
var (
	ErrBadRequest   = errors.New("provider rejected request")
	ErrUnauthorized = errors.New("provider unauthorized")
	ErrForbidden    = errors.New("provider forbidden")
	ErrNotFound     = errors.New("provider resource not found")
	ErrConflict     = errors.New("provider conflict")
	ErrRateLimited  = errors.New("provider rate limited")
	ErrServer       = errors.New("provider internal error")
)

// Provider error type tags observed on the wire. The provider may report a
// more specific tag than the HTTP status alone conveys.
const (
	TypeInvalidCredentials = "user_invalid_credentials"
	TypeEmailExists        = "user_email_already_exists"
	TypePasswordMismatch   = "user_password_mismatch"
	TypeSessionNotFound    = "user_session_not_found"
	TypeRateLimitExceeded  = "general_rate_limit_exceeded"
)

// ProviderError is the single tagged error shape produced at the provider
// boundary. Code is the HTTP-like numeric status, Type the provider's string
// tag (may be empty), Message the provider's own description.
type ProviderError struct {
	Code    int
	Type    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("provider error %d (%s): %s", e.Code, e.Type, e.Message)
	}
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// Unwrap maps the numeric code onto the package sentinel so errors.Is works
// across the adapter boundary.
func (e *ProviderError) Unwrap() error {
	switch {
	case e.Code == 400:
		return ErrBadRequest
	case e.Code == 401:
		return ErrUnauthorized
	case e.Code == 403:
		return ErrForbidden
	case e.Code == 404:
		return ErrNotFound
	case e.Code == 409:
		return ErrConflict
	case e.Code == 429:
		return ErrRateLimited
	case e.Code >= 500:
		return ErrServer
	default:
		return nil
	}
}

// NewProviderError builds a *ProviderError; used by provider implementations
// and by tests constructing failure fixtures.
func NewProviderError(code int, typeTag, message string) *ProviderError {
	return &ProviderError{Code: code, Type: typeTag, Message: message}
}
