// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/internal/view"
)

type Handler struct {
	services *service.Services
	renderer *view.Renderer

	// secureCookie marks the session cookie Secure.
	secureCookie bool

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *view.Renderer, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		renderer:     renderer,
		secureCookie: cfg.SecureCookie,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
