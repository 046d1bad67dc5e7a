// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/handler"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/server"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/store"
	"github.com/MKhiriev/go-movie-browser/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-movie-browser")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("default_auth", cfg.Upstream.DefaultAuth).
		Str("search_auth", cfg.Upstream.SearchAuth).
		Dur("session_duration", cfg.App.SessionDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	gateway, err := adapter.NewTMDBGateway(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating movie gateway")
	}

	services := service.NewServices(storages, gateway, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		// Fatal skips deferred calls
		if cerr := storages.Close(); cerr != nil {
			log.Err(cerr).Msg("error closing storages")
		}
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
