// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vinevault/vinevault/internal/app"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/metrics"
	"github.com/vinevault/vinevault/internal/service"
	"github.com/vinevault/vinevault/internal/utils"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type recoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type confirmRecoveryRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type confirmVerificationRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. It writes the error response itself and reports success.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]any{"errors": map[string]string{"_": "invalid JSON"}}, http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		utils.WriteJSON(w, map[string]any{"errors": fieldErrors(err)}, http.StatusBadRequest)
		return false
	}

	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("service call failed")
	utils.WriteJSON(w, map[string]any{"error": service.UserMessage(err)}, statusFromError(err))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.services.Session.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("register", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("register", "success").Inc()
	utils.WriteJSON(w, map[string]any{
		"message": app.MsgRegisterSuccess,
		"user":    user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	session, user, err := h.services.Session.Login(ctx, req.Email, req.Password)
	if err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("login", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	h.setSessionCookie(w, session.Token, maxAge)

	metrics.AuthOperationsTotal.WithLabelValues("login", "success").Inc()
	utils.WriteJSON(w, map[string]any{
		"message": app.MsgLoginSuccess,
		"user":    user,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	cleared, err := h.services.Session.Logout(ctx, session)
	if cleared {
		h.clearSessionCookie(w)
	}
	if !cleared && err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("logout", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	// With the always-clear policy a failed remote termination still ends
	// the local session, and the error surfaces as a notification.
	metrics.AuthOperationsTotal.WithLabelValues("logout", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgLogoutSuccess}, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(h.cfg.App.SessionCookieName)
	if err != nil || cookie.Value == "" {
		utils.WriteJSON(w, map[string]any{"authenticated": false}, http.StatusOK)
		return
	}

	_, user := h.services.Session.CheckSession(ctx, cookie.Value)
	if user == nil {
		h.clearSessionCookie(w)
		utils.WriteJSON(w, map[string]any{"authenticated": false}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"authenticated": true,
		"user":          user,
	}, http.StatusOK)
}

func (h *Handler) requestVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	if err := h.services.Session.RequestVerification(ctx, session); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) confirmVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req confirmVerificationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.services.Session.VerifyEmail(ctx, req.UserID, req.Secret); err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("verify_email", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("verify_email", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgEmailVerified}, http.StatusOK)
}

func (h *Handler) createRecovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recoveryRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.services.Session.ResetPassword(ctx, req.Email); err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("reset_password", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("reset_password", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgRecoverySent}, http.StatusAccepted)
}

func (h *Handler) confirmRecovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req confirmRecoveryRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.services.Session.ConfirmReset(ctx, req.UserID, req.Secret, req.Password); err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("confirm_reset", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("confirm_reset", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgPasswordUpdated}, http.StatusOK)
}
