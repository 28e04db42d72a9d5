// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/app"
)

func TestMapProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil stays nil",
			err:  nil,
			want: nil,
		},
		{
			name: "invalid credentials tag",
			err:  adapter.NewProviderError(401, adapter.TypeInvalidCredentials, "Invalid credentials"),
			want: ErrInvalidCredentials,
		},
		{
			name: "email exists tag",
			err:  adapter.NewProviderError(409, adapter.TypeEmailExists, "A user with the same email already exists"),
			want: ErrAccountExists,
		},
		{
			name: "password mismatch tag",
			err:  adapter.NewProviderError(400, adapter.TypePasswordMismatch, "Passwords do not match"),
			want: ErrPasswordMismatch,
		},
		{
			name: "session not found tag",
			err:  adapter.NewProviderError(401, adapter.TypeSessionNotFound, "Session not found"),
			want: ErrSessionExpired,
		},
		{
			name: "rate limit tag",
			err:  adapter.NewProviderError(429, adapter.TypeRateLimitExceeded, "Rate limit exceeded"),
			want: ErrRateLimited,
		},
		{
			name: "untagged unauthorized means bad credentials",
			err:  adapter.NewProviderError(401, "", "Unauthorized"),
			want: ErrInvalidCredentials,
		},
		{
			name: "untagged conflict falls back to account exists",
			err:  adapter.NewProviderError(409, "", "Conflict"),
			want: ErrAccountExists,
		},
		{
			name: "bad request maps to validation",
			err:  adapter.NewProviderError(400, "", "Invalid payload"),
			want: ErrValidation,
		},
		{
			name: "server error maps to unexpected",
			err:  adapter.NewProviderError(500, "", "Internal error"),
			want: ErrUnexpected,
		},
		{
			name: "unknown error maps to unexpected",
			err:  errors.New("connection refused"),
			want: ErrUnexpected,
		},
		{
			name: "wrapped transport error still matches",
			err:  fmt.Errorf("request failed: %w", adapter.NewProviderError(429, "", "Too many requests")),
			want: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapProviderError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", ErrInvalidCredentials, app.MsgInvalidCredentials},
		{"account exists", ErrAccountExists, app.MsgAccountExists},
		{"password mismatch", ErrPasswordMismatch, app.MsgPasswordMismatch},
		{"session expired", ErrSessionExpired, app.MsgSessionExpired},
		{"rate limited", ErrRateLimited, app.MsgRateLimited},
		{"operation in flight", ErrOperationInFlight, app.MsgOperationInFlight},
		{"wrapped business error", fmt.Errorf("%w: details", ErrRateLimited), app.MsgRateLimited},
		{"mapped untagged unauthorized", mapProviderError(adapter.NewProviderError(401, "", "Unauthorized")), app.MsgInvalidCredentials},
		{"unknown error falls back", errors.New("boom"), app.MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
