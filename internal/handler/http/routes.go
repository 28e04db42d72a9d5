// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router with the full middleware chain and route table.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withLocale)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/api/version", h.getVersion)
	router.Get("/api/locales", h.listLocales)
	router.Post("/api/locale/switch", h.switchLocale)
	router.Get("/api/catalog/vineyards", h.listVineyards)

	// routes without an established session
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/session", h.getSession)
		r.Put("/api/auth/verification", h.confirmVerification)
		r.Post("/api/auth/recovery", h.createRecovery)
		r.Put("/api/auth/recovery", h.confirmRecovery)
	})

	// routes requiring a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/verification", h.requestVerification)
		r.Patch("/api/account/profile", h.updateProfile)
		r.Patch("/api/account/password", h.updatePassword)
		r.Delete("/api/account", h.deleteAccount)
		r.Get("/api/portfolio/investments", h.listInvestments)
		r.Get("/api/portfolio/transactions", h.listTransactions)
		r.Get("/api/notifications/stream", h.streamNotifications)
	})

	return router
}
