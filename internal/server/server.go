// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package server runs the inbound HTTP transport: startup, signal handling,
// and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/vinevault/vinevault/internal/config"
	"github.com/vinevault/vinevault/internal/logger"
)

var errNoAddressConfigured = errors.New("no listen address configured")

// Server is the lifecycle contract of the transport server. RunServer blocks
// until shutdown is requested; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger

	// onShutdown is invoked once when a stop signal arrives, before the
	// HTTP server drains. Used to stop background workers.
	onShutdown func()
}

// NewServer builds the HTTP server for the given handler. onShutdown may be
// nil.
func NewServer(handler http.Handler, cfg config.Server, log *logger.Logger, onShutdown func()) (Server, error) {
	log.Info().Str("address", cfg.HTTPAddress).Msg("creating new server")

	if cfg.HTTPAddress == "" {
		return nil, errNoAddressConfigured
	}

	return &server{
		httpServer: &http.Server{
			Addr:        cfg.HTTPAddress,
			Handler:     handler,
			ReadTimeout: cfg.RequestTimeout,
		},
		logger:     log,
		onShutdown: onShutdown,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.onShutdown != nil {
		s.onShutdown()
	}

	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Err(err).Msg("HTTP server shutdown")
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shutdown gracefully")

	return nil
}
