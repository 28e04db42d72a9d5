// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/notify"
	"github.com/vinevault/vinevault/internal/service"
)

// Handler holds the dependencies of the HTTP transport layer.
type Handler struct {
	services *service.Services
	hub      *notify.Hub
	cfg      *config.StructuredConfig
	validate *validator.Validate

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler.
func NewHandler(services *service.Services, hub *notify.Hub, cfg *config.StructuredConfig, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		cfg:      cfg,
		validate: validator.New(),
		logger:   log,
	}
}
