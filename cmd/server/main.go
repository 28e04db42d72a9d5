// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package main

import (
	"context"
	"fmt"

	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/config"
	handler "github.com/vinevault/vinevault/internal/handler/http"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/notify"
	"github.com/vinevault/vinevault/internal/server"
	"github.com/vinevault/vinevault/internal/service"
	"github.com/vinevault/vinevault/internal/store"
	"github.com/vinevault/vinevault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vinevault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, docs, err := newProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session store")
	}
	defer db.Close()

	storages := store.NewStorages(db, log)
	hub := notify.NewHub(log)
	services := service.NewServices(provider, docs, storages, hub, cfg, log)
	router := handler.NewHandler(services, hub, cfg, log).Init()

	workers.NewWorkers(
		workers.NewSessionSweeper(ctx, storages.Sessions, cfg.Workers.SweepInterval, log),
	).Run()

	srv, err := server.NewServer(router, cfg.Server, log, cancel)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newProvider picks the identity backend: the remote provider when an
// endpoint is configured, the in-memory demo provider otherwise.
func newProvider(cfg *config.StructuredConfig, log *logger.Logger) (adapter.IdentityProvider, adapter.DocumentStore, error) {
	if cfg.Provider.Endpoint == "" {
		log.Info().Msg("no provider endpoint configured, running with the in-memory demo provider")
		p, err := adapter.NewMemoryProvider(cfg.App.SessionSignKey, cfg.App.SessionTTL, log)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	}

	p, err := adapter.NewHTTPProvider(cfg.Provider, log)
	if err != nil {
		return nil, nil, err
	}
	return p, p, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
