// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"net/http"

	"github.com/vinevault/vinevault/internal/app"
	"github.com/vinevault/vinevault/internal/metrics"
	"github.com/vinevault/vinevault/internal/utils"
	"github.com/vinevault/vinevault/models"
)

type updatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	var update models.ProfileUpdate
	if !h.decodeAndValidate(w, r, &update) {
		return
	}

	user, err := h.services.Session.UpdateProfile(ctx, session, update)
	if err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("update_profile", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("update_profile", "success").Inc()
	utils.WriteJSON(w, map[string]any{
		"message": app.MsgProfileUpdated,
		"user":    user,
	}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	var req updatePasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.services.Session.UpdatePassword(ctx, session, req.OldPassword, req.NewPassword); err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("update_password", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	metrics.AuthOperationsTotal.WithLabelValues("update_password", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgPasswordUpdated}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	if err := h.services.Session.DeleteAccount(ctx, session); err != nil {
		metrics.AuthOperationsTotal.WithLabelValues("delete_account", "error").Inc()
		h.writeServiceError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	metrics.AuthOperationsTotal.WithLabelValues("delete_account", "success").Inc()
	utils.WriteJSON(w, map[string]any{"message": app.MsgAccountDeleted}, http.StatusOK)
}
