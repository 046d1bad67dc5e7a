// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrSessionCreationFailed   = errors.New("session creation failed")
	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")
)
