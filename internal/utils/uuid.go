// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package utils holds small shared helpers: token generation, typed context
// keys, and JSON response writing.
package utils

import "github.com/google/uuid"

// NewToken returns a time-ordered UUID string for use as an opaque session
// token. Falls back to a random v4 UUID when v7 generation fails.
func NewToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
