// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vinevault/vinevault/internal/locale"
	"github.com/vinevault/vinevault/internal/metrics"
	"github.com/vinevault/vinevault/internal/utils"
)

// withLocale redirects any request whose path is not the canonical locale
// form and stores the resolved locale code in the request context. API and
// metrics paths are never locale-prefixed, so they pass through untouched.
func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if isUnprefixedPath(path) {
			ctx := context.WithValue(r.Context(), utils.LocaleCtxKey, locale.Default().Code)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		canonical := locale.Normalize(path)
		if canonical != path {
			l, _ := locale.Split(canonical)
			metrics.LocaleRedirectsTotal.WithLabelValues(l.Code).Inc()
			redirect(w, r, canonical)
			return
		}

		l, _ := locale.Split(path)

		// Accept-Language detection applies only to bare paths: an explicit
		// prefix always wins. Shipped disabled.
		if h.cfg.Locale.DetectFromHeaders && l.Default && !hasLocalePrefix(path) {
			if detected := locale.DetectFromHeader(r.Header.Get("Accept-Language")); !detected.Default {
				target := locale.PathFor(detected.Code, path)
				metrics.LocaleRedirectsTotal.WithLabelValues(detected.Code).Inc()
				redirect(w, r, target)
				return
			}
		}

		ctx := context.WithValue(r.Context(), utils.LocaleCtxKey, l.Code)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isUnprefixedPath reports whether the path belongs to a surface that never
// carries a locale prefix.
func isUnprefixedPath(path string) bool {
	return strings.HasPrefix(path, "/api/") || path == "/metrics"
}

// hasLocalePrefix reports whether the first path segment is a supported
// locale code.
func hasLocalePrefix(path string) bool {
	trimmed := strings.TrimPrefix(path, "/")
	first, _, _ := strings.Cut(trimmed, "/")
	_, ok := locale.Get(first)
	return ok
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
