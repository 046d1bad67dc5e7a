// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-movie-browser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService manages credentials in the user store.
type AuthService interface {
	// Register hashes the password and persists a new account.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Verify reports whether the password matches the stored hash of the
	// username. An unknown username is a non-match, not an error.
	Verify(ctx context.Context, creds models.Credentials) (bool, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// SessionService issues and checks the signed session marker.
type SessionService interface {
	// Issue creates a session marker for username.
	Issue(ctx context.Context, username string) (models.Session, error)

	// Parse validates a raw marker and returns the session it carries.
	Parse(ctx context.Context, token string) (models.Session, error)

	// CookieName is the name of the cookie holding the marker.
	CookieName() string
}

// MovieService composes upstream calls into page payloads.
type MovieService interface {
	// Home returns popular movies.
	Home(ctx context.Context) ([]models.Movie, error)

	// Genre returns popular movies of a genre together with its name.
	Genre(ctx context.Context, genreID int) (models.GenrePage, error)

	// Movie returns detail and cast of a title. Both are required.
	Movie(ctx context.Context, movieID int64) (models.MoviePage, error)

	// Search returns titles matching query.
	Search(ctx context.Context, query string) ([]models.Movie, error)
}
