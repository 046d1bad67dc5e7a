// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/store"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The password is replaced by its salted bcrypt hash before it reaches the
// repository. Returns the persisted user (with a store-assigned UserID) or a
// wrapped storage error; a taken username wraps
// [store.ErrUsernameAlreadyExists].
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(creds.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser, nil
}

// Verify checks a username and password pair.
//
// Returns:
//   - (true, nil) when the password matches the stored hash.
//   - (false, nil) when the password differs or the username is unknown.
//   - (false, err) when the lookup fails or the stored hash is unusable.
func (a *authService) Verify(ctx context.Context, creds models.Credentials) (bool, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", creds.Username).Msg("no such user")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return false, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.PasswordHash, creds.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return false, err
	}
	if !ok {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
	}

	return ok, nil
}
