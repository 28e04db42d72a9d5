// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"net/http"

	"github.com/vinevault/vinevault/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"version": h.cfg.App.Version,
	}, http.StatusOK)
}
