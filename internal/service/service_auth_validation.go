// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/validators"
	"github.com/MKhiriev/go-movie-browser/models"
)

// AuthValidationService checks credentials before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

// Wrap implements [AuthServiceWrapper].
func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	return &AuthValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

// Register rejects invalid input with [ErrInvalidDataProvided] wrapping the
// validator error. The store is not touched in that case.
func (v *AuthValidationService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("registration rejected by validation")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, creds)
}

// Verify answers false for input that could never have been registered,
// without a store read.
func (v *AuthValidationService) Verify(ctx context.Context, creds models.Credentials) (bool, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return false, nil
	}

	return v.inner.Verify(ctx, creds)
}
