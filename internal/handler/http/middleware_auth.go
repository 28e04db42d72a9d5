// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"context"
	"net/http"

	"github.com/vinevault/vinevault/internal/locale"
	"github.com/vinevault/vinevault/internal/utils"
)

// auth resolves the session cookie into the stored session and its user and
// puts both into the request context. An unauthenticated request is answered
// with 401 and a localized login path so the client can route the visitor to
// the sign-in page; an absent session is expected state, not a failure.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookie, err := r.Cookie(h.cfg.App.SessionCookieName)
		if err != nil || cookie.Value == "" {
			h.writeUnauthenticated(w, r)
			return
		}

		session, user := h.services.Session.CheckSession(ctx, cookie.Value)
		if user == nil {
			// stale cookie: clear it so the browser stops sending it
			h.clearSessionCookie(w)
			h.writeUnauthenticated(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) writeUnauthenticated(w http.ResponseWriter, r *http.Request) {
	code, _ := utils.GetLocaleFromContext(r.Context())
	utils.WriteJSON(w, map[string]any{
		"authenticated": false,
		"login_path":    locale.PathFor(code, "/login"),
	}, http.StatusUnauthorized)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.App.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isSecureOrigin(h.cfg.App.BaseURL),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	h.setSessionCookie(w, "", -1)
}

func isSecureOrigin(baseURL string) bool {
	return len(baseURL) >= 8 && baseURL[:8] == "https://"
}
