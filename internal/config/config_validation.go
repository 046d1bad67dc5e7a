// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress     = "localhost:5000"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultSessionIssuer   = "go-movie-browser"
	defaultSessionDuration = 31 * 24 * time.Hour
	defaultDSN             = "database.db"
	defaultUpstreamBaseURL = "https://api.themoviedb.org/3"
	defaultLanguage        = "en-US"
	defaultUpstreamTimeout = 15 * time.Second
	defaultLogLevel        = "debug"
)

// applyDefaults fills every zero-valued field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}

	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = defaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultUpstreamBaseURL
	}
	if cfg.Upstream.Language == "" {
		cfg.Upstream.Language = defaultLanguage
	}
	if cfg.Upstream.RequestTimeout == 0 {
		cfg.Upstream.RequestTimeout = defaultUpstreamTimeout
	}
	if cfg.Upstream.DefaultAuth == "" {
		cfg.Upstream.DefaultAuth = AuthSchemeBearer
	}
	if cfg.Upstream.SearchAuth == "" {
		cfg.Upstream.SearchAuth = AuthSchemeAPIKey
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: session duration must not be negative", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	for _, scheme := range []string{cfg.Upstream.DefaultAuth, cfg.Upstream.SearchAuth} {
		if err := cfg.Upstream.validateScheme(scheme); err != nil {
			return err
		}
	}

	return nil
}

func (u Upstream) validateScheme(scheme string) error {
	switch scheme {
	case AuthSchemeBearer:
		if u.AccessToken == "" {
			return fmt.Errorf("%w: access token is required for %q auth", ErrInvalidUpstreamConfigs, scheme)
		}
	case AuthSchemeAPIKey:
		if u.APIKey == "" {
			return fmt.Errorf("%w: api key is required for %q auth", ErrInvalidUpstreamConfigs, scheme)
		}
	default:
		return fmt.Errorf("%w: unknown auth scheme %q", ErrInvalidUpstreamConfigs, scheme)
	}

	return nil
}
