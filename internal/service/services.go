// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import (
	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/notify"
	"github.com/vinevault/vinevault/internal/store"
)

// Services aggregates the business-logic layer.
type Services struct {
	Session SessionService
	Catalog CatalogService
}

// NewServices wires the service layer on top of the identity provider, the
// session store and the notification sink.
func NewServices(provider adapter.IdentityProvider, docs adapter.DocumentStore, storages *store.Storages, notifier notify.Notifier, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Session: NewSessionService(provider, storages.Sessions, notifier, cfg.App, log),
		Catalog: NewCatalogService(docs, log),
	}
}
