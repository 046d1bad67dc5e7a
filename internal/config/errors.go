// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidUpstreamConfigs indicates an unknown auth scheme or a missing
	// credential for a selected scheme.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
)
