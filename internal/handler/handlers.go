// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/handler/http"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error loading page templates: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, cfg.App, logger),
	}, nil
}
