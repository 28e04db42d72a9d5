// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault/internal/utils"
)

// newLocaleTestServer builds a handler chain with only the locale middleware
// and a terminal handler that records the resolved locale.
func newLocaleTestServer(t *testing.T, h *Handler, captured *string) http.Handler {
	t.Helper()
	return h.withLocale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := utils.GetLocaleFromContext(r.Context()); ok {
			*captured = code
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestWithLocale_DefaultPrefixStripped(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/it/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestWithLocale_NonDefaultPrefixPasses(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/de/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "de", captured)
}

func TestWithLocale_BarePathResolvesDefault(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "it", captured)
}

func TestWithLocale_UnsupportedCodeIsNotAPrefix(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/fr/dashboard", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	// "fr" is not supported, so the segment is ordinary path content
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "it", captured)
}

func TestWithLocale_QueryPreservedOnRedirect(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/it/vineyards?sort=price", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/vineyards?sort=price", w.Header().Get("Location"))
}

func TestWithLocale_APIPathsPassThrough(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "it", captured)
}

func TestWithLocale_HeaderDetectionDisabledByDefault(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "it", captured)
}

func TestWithLocale_HeaderDetectionEnabled(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	h.cfg.Locale.DetectFromHeaders = true

	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/de/dashboard", w.Header().Get("Location"))
}

func TestWithLocale_ExplicitPrefixBeatsHeaderDetection(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	h.cfg.Locale.DetectFromHeaders = true

	var captured string
	srv := newLocaleTestServer(t, h, &captured)

	req := httptest.NewRequest(http.MethodGet, "/ru/dashboard", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ru", captured)
}
