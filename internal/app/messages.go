// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package app contains shared application-layer constants used across the
// VineVault services, handlers and notification surface.
//
// All Msg* constants are human-readable message strings surfaced to the
// visitor, either inside HTTP response bodies or as notification events.
// Keeping them in one place ensures consistent wording throughout the
// platform and that raw provider error codes never reach the user.
package app

const (
	// MsgInvalidCredentials is shown when the email/password combination is
	// rejected by the identity provider.
	MsgInvalidCredentials = "Invalid email or password."

	// MsgAccountExists is shown when registration is rejected because an
	// account with the same email already exists.
	MsgAccountExists = "An account with this email already exists."

	// MsgRateLimited is shown when the identity provider throttles the
	// request.
	MsgRateLimited = "Too many requests. Please try again later."

	// MsgPasswordMismatch is shown when a password-change request supplies a
	// wrong current password.
	MsgPasswordMismatch = "Password is incorrect."

	// MsgSessionExpired is shown when a previously issued session is no
	// longer accepted by the identity provider.
	MsgSessionExpired = "Your session has expired. Please sign in again."

	// MsgUnexpected is the generic fallback for provider failures that do
	// not match any known error shape.
	MsgUnexpected = "An unexpected error occurred."

	// MsgOperationInFlight is shown when a second account operation is
	// started while a previous one is still running.
	MsgOperationInFlight = "Another account operation is still in progress."

	// MsgLoginSuccess is the body of the success notification after login.
	MsgLoginSuccess = "You have been logged in successfully."

	// MsgRegisterSuccess is the body of the success notification after
	// account creation. The new account is not signed in automatically.
	MsgRegisterSuccess = "Account created successfully. You can now login."

	// MsgLogoutSuccess is the body of the success notification after logout.
	MsgLogoutSuccess = "You have been logged out successfully."

	// MsgProfileUpdated is the body of the success notification after a
	// profile change.
	MsgProfileUpdated = "Your profile has been updated successfully."

	// MsgEmailVerified is the body of the success notification after email
	// confirmation.
	MsgEmailVerified = "Your email has been verified successfully."

	// MsgRecoverySent is the body of the success notification after a
	// password-recovery email was dispatched.
	MsgRecoverySent = "Please check your email for password reset instructions."

	// MsgPasswordUpdated is the body of the success notification after a
	// password change.
	MsgPasswordUpdated = "Your password has been updated successfully."

	// MsgAccountDeleted is the body of the success notification after an
	// account-deletion request was accepted.
	MsgAccountDeleted = "Your account deletion request has been submitted."
)

// Notification titles paired with the bodies above.
const (
	TitleLoginSuccess    = "Welcome back!"
	TitleLoginFailed     = "Login failed"
	TitleRegisterSuccess = "Registration successful!"
	TitleRegisterFailed  = "Registration failed"
	TitleLogoutSuccess   = "Logged out"
	TitleLogoutFailed    = "Logout failed"
	TitleProfileUpdated  = "Profile updated"
	TitleUpdateFailed    = "Update failed"
	TitleEmailVerified   = "Email verified"
	TitleVerifyFailed    = "Verification failed"
	TitleRecoverySent    = "Recovery email sent"
	TitleRecoveryFailed  = "Recovery failed"
	TitlePasswordUpdated = "Password updated"
	TitleAccountDeleted  = "Account deletion requested"
	TitleDeleteFailed    = "Deletion failed"
)
