// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"errors"
	"net/http"

	"github.com/vinevault/vinevault/internal/service"
	"github.com/vinevault/vinevault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrSessionExpired:     http.StatusUnauthorized,
	service.ErrPasswordMismatch:   http.StatusUnauthorized,
	service.ErrAccountExists:      http.StatusConflict,
	service.ErrRateLimited:        http.StatusTooManyRequests,
	service.ErrOperationInFlight:  http.StatusConflict,

	store.ErrSessionNotFound:      http.StatusUnauthorized,
	store.ErrSessionAlreadyExists: http.StatusConflict,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
