// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/models"
)

// SessionCookieName is the cookie that carries the session marker.
const SessionCookieName = "session"

type sessionService struct {
	// signKey is the HMAC secret used to sign and verify session markers.
	signKey string

	// issuer is the "iss" claim embedded in every marker.
	// Markers whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a newly issued marker remains valid.
	duration time.Duration

	logger *logger.Logger
}

func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// Issue signs a marker carrying username.
func (s *sessionService) Issue(ctx context.Context, username string) (models.Session, error) {
	session, err := utils.GenerateSessionToken(s.issuer, username, s.duration, s.signKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// Parse normalises every validation failure (expired, wrong issuer, bad
// signature, malformed) to [ErrSessionExpiredOrInvalid].
func (s *sessionService) Parse(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session marker rejected")
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	return session, nil
}

func (s *sessionService) CookieName() string {
	return SessionCookieName
}
