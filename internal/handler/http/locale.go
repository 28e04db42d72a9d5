// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"net/http"

	"github.com/vinevault/vinevault/internal/locale"
	"github.com/vinevault/vinevault/internal/utils"
)

type switchLocaleRequest struct {
	Locale string `json:"locale" validate:"required"`
	Path   string `json:"path" validate:"required"`
}

func (h *Handler) listLocales(w http.ResponseWriter, r *http.Request) {
	current, _ := utils.GetLocaleFromContext(r.Context())
	if current == "" {
		current = locale.Default().Code
	}

	utils.WriteJSON(w, map[string]any{
		"locales": locale.Supported(),
		"current": current,
		"default": locale.Default().Code,
	}, http.StatusOK)
}

// switchLocale re-targets the given page path at another locale and returns
// the canonical path to navigate to. Unsupported codes fall back to the
// default locale rather than erroring.
func (h *Handler) switchLocale(w http.ResponseWriter, r *http.Request) {
	var req switchLocaleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	target := locale.SwitchPath(req.Path, req.Locale)
	l, _ := locale.Split(target)

	utils.WriteJSON(w, map[string]any{
		"path":      target,
		"locale":    l.Code,
		"direction": l.Direction,
	}, http.StatusOK)
}
