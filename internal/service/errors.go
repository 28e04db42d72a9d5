// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import "errors"

// Business errors produced by the service layer. Handlers match them with
// errors.Is to pick an HTTP status; UserMessage translates them into the
// human-readable strings from internal/app.
var (
	ErrValidation         = errors.New("invalid data provided")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrSessionExpired     = errors.New("session expired")
	ErrRateLimited        = errors.New("rate limited")
	ErrOperationInFlight  = errors.New("operation already in flight")
	ErrUnexpected         = errors.New("unexpected provider error")
)
