// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SessionSignKey  string   `json:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
		SecureCookie    bool     `json:"secure_cookie"`
		BcryptCost      int      `json:"bcrypt_cost"`
		LogLevel        string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress  string   `json:"http_address"`
		ReadTimeout  Duration `json:"read_timeout"`
		WriteTimeout Duration `json:"write_timeout"`
	} `json:"server,omitempty"`

	Upstream struct {
		BaseURL        string   `json:"base_url"`
		AccessToken    string   `json:"access_token"`
		APIKey         string   `json:"api_key"`
		Language       string   `json:"language"`
		RequestTimeout Duration `json:"request_timeout"`
		DefaultAuth    string   `json:"default_auth"`
		SearchAuth     string   `json:"search_auth"`
	} `json:"upstream,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:  jsonCfg.App.SessionSignKey,
			SessionIssuer:   jsonCfg.App.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			SecureCookie:    jsonCfg.App.SecureCookie,
			BcryptCost:      jsonCfg.App.BcryptCost,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:  jsonCfg.Server.HTTPAddress,
			ReadTimeout:  time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout: time.Duration(jsonCfg.Server.WriteTimeout),
		},
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			AccessToken:    jsonCfg.Upstream.AccessToken,
			APIKey:         jsonCfg.Upstream.APIKey,
			Language:       jsonCfg.Upstream.Language,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
			DefaultAuth:    jsonCfg.Upstream.DefaultAuth,
			SearchAuth:     jsonCfg.Upstream.SearchAuth,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
