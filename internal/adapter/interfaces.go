// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the gateway to the external movie database.
//
// The primary abstraction is [MovieGateway], which decouples the service layer
// from the upstream HTTP API. The package ships a resty-based implementation
// for TMDB ([NewTMDBGateway]).
//
// Every failure (transport error, non-200 status, undecodable body or a body
// missing the expected payload) is returned wrapped around
// [ErrUpstreamUnavailable], so callers need a single [errors.Is] check. More
// specific causes such as [ErrUnauthorized] are joined in for logging.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-browser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/movie_gateway_mock.go -package=mock

// MovieGateway defines read-only access to the movie database.
// Implementations never retry; one call is one upstream request.
type MovieGateway interface {
	// Popular returns the first page of movies ordered by popularity.
	Popular(ctx context.Context) (models.MovieList, error)

	// DiscoverByGenre returns the first page of popular movies filtered by
	// genreID. The id is passed through as-is, unknown ids are not rejected.
	DiscoverByGenre(ctx context.Context, genreID int) (models.MovieList, error)

	// Movie returns the detail record of a single title.
	Movie(ctx context.Context, movieID int64) (models.MovieDetail, error)

	// Credits returns the cast of a single title.
	Credits(ctx context.Context, movieID int64) (models.Credits, error)

	// Search returns titles matching query.
	Search(ctx context.Context, query string) (models.MovieList, error)
}
