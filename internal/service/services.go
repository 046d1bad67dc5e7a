// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/store"
)

// Services aggregates every use case the HTTP handlers depend on.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	MovieService   MovieService
}

func NewServices(storages *store.Storages, gateway adapter.MovieGateway, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		SessionService: NewSessionService(cfg.App, logger),
		MovieService:   NewMovieService(gateway, logger),
	}
}
