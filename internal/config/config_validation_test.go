// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server:   Server{HTTPAddress: "0.0.0.0:8000", ReadTimeout: time.Second},
		App:      App{SessionIssuer: "custom", BcryptCost: bcrypt.MinCost, LogLevel: "error"},
		Storage:  Storage{DB: DB{DSN: "postgres://u:p@localhost:5432/movies"}},
		Upstream: Upstream{Language: "fr-FR", SearchAuth: AuthSchemeBearer},
	}

	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, defaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, "custom", cfg.App.SessionIssuer)
	assert.Equal(t, bcrypt.MinCost, cfg.App.BcryptCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "postgres://u:p@localhost:5432/movies", cfg.Storage.DB.DSN)
	assert.Equal(t, "fr-FR", cfg.Upstream.Language)
	assert.Equal(t, AuthSchemeBearer, cfg.Upstream.DefaultAuth)
	assert.Equal(t, AuthSchemeBearer, cfg.Upstream.SearchAuth)
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, defaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, defaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, defaultLanguage, cfg.Upstream.Language)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.RequestTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := minimalConfig()
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
			wantMsg: "session sign key is required",
		},
		{
			name:    "negative session duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionDuration = -time.Minute },
			wantErr: ErrInvalidAppConfigs,
			wantMsg: "session duration must not be negative",
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = bcrypt.MinCost - 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = bcrypt.MaxCost + 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown auth scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Upstream.DefaultAuth = "basic" },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "bearer without token",
			mutate:  func(cfg *StructuredConfig) { cfg.Upstream.AccessToken = "" },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "api key scheme without key",
			mutate:  func(cfg *StructuredConfig) { cfg.Upstream.APIKey = "" },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name: "api key only when every call uses it",
			mutate: func(cfg *StructuredConfig) {
				cfg.Upstream.AccessToken = ""
				cfg.Upstream.DefaultAuth = AuthSchemeAPIKey
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
