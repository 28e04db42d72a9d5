// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import (
	"errors"
	"fmt"

	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/app"
)

// mapProviderError translates the adapter's transport error into a service
// business error. The provider's string type tag takes precedence over the
// bare status sentinel because it is more specific: an untagged 401 means bad
// credentials, while a 401 with user_session_not_found means the session was
// revoked.
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}

	var perr *adapter.ProviderError
	if errors.As(err, &perr) {
		switch perr.Type {
		case adapter.TypeInvalidCredentials:
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		case adapter.TypeEmailExists:
			return fmt.Errorf("%w: %v", ErrAccountExists, err)
		case adapter.TypePasswordMismatch:
			return fmt.Errorf("%w: %v", ErrPasswordMismatch, err)
		case adapter.TypeSessionNotFound:
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		case adapter.TypeRateLimitExceeded:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %v", ErrAccountExists, err)
	case errors.Is(err, adapter.ErrRateLimited):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	return fmt.Errorf("%w: %v", ErrUnexpected, err)
}

// UserMessage returns the human-readable string for a business error. Raw
// provider codes and messages never pass through here.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrAccountExists):
		return app.MsgAccountExists
	case errors.Is(err, ErrPasswordMismatch):
		return app.MsgPasswordMismatch
	case errors.Is(err, ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, ErrRateLimited):
		return app.MsgRateLimited
	case errors.Is(err, ErrOperationInFlight):
		return app.MsgOperationInFlight
	default:
		return app.MsgUnexpected
	}
}
