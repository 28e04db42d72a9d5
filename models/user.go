// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package models defines the data structures shared between the identity
// provider adapter, the session and catalog services, the session store, and
// the HTTP transport layer.
package models

import "time"

// KYC verification states as reported by the compliance pipeline.
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// User is the platform's view of an identity-provider account, enriched with
// the profile blocks the dashboard renders (preferences, KYC state, consent).
//
// A nil *User means "no authenticated visitor"; the session service treats
// the two as strictly equivalent.
type User struct {
	ID                string      `json:"id"`
	Email             string      `json:"email"`
	Name              string      `json:"name"`
	EmailVerification bool        `json:"email_verification"`
	Phone             string      `json:"phone,omitempty"`
	Preferences       Preferences `json:"preferences"`
	KYC               KYCStatus   `json:"kyc"`
	Consent           Consent     `json:"consent"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Preferences holds the per-user display and contact settings.
type Preferences struct {
	Theme         string              `json:"theme"`
	Language      string              `json:"language"`
	Currency      string              `json:"currency"`
	Notifications NotificationToggles `json:"notifications"`
}

// NotificationToggles enables or disables each outbound contact channel.
type NotificationToggles struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// KYCStatus tracks the identity-verification state of the account and the
// document references submitted for review.
type KYCStatus struct {
	Status           string     `json:"status"`
	Documents        []string   `json:"documents"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`
}

// Consent records the visitor's GDPR consent decisions. Necessary is always
// true once a consent record exists.
type Consent struct {
	Marketing   bool      `json:"marketing"`
	Analytics   bool      `json:"analytics"`
	Necessary   bool      `json:"necessary"`
	ConsentDate time.Time `json:"consent_date"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched by the provider.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Consent     *Consent     `json:"consent,omitempty"`
}
