// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/models"
)

// movieService shapes gateway results into page payloads. Gateway errors are
// returned as they are and keep wrapping [adapter.ErrUpstreamUnavailable].
type movieService struct {
	gateway adapter.MovieGateway
	logger  *logger.Logger
}

func NewMovieService(gateway adapter.MovieGateway, logger *logger.Logger) MovieService {
	return &movieService{
		gateway: gateway,
		logger:  logger,
	}
}

func (m *movieService) Home(ctx context.Context) ([]models.Movie, error) {
	list, err := m.gateway.Popular(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching popular movies: %w", err)
	}

	return list.Results, nil
}

// Genre fetches the listing and resolves the genre name from the static
// table. An unknown id still produces a page, with an empty name.
func (m *movieService) Genre(ctx context.Context, genreID int) (models.GenrePage, error) {
	list, err := m.gateway.DiscoverByGenre(ctx, genreID)
	if err != nil {
		return models.GenrePage{}, fmt.Errorf("error fetching movies of genre %d: %w", genreID, err)
	}

	name, known := models.GenreName(genreID)
	return models.GenrePage{
		ID:     genreID,
		Name:   name,
		Known:  known,
		Movies: list.Results,
	}, nil
}

// Movie fetches detail and credits concurrently. The first failure cancels
// the sibling request and no partial page is returned.
func (m *movieService) Movie(ctx context.Context, movieID int64) (models.MoviePage, error) {
	var (
		detail  models.MovieDetail
		credits models.Credits
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = m.gateway.Movie(gCtx, movieID)
		return err
	})
	g.Go(func() error {
		var err error
		credits, err = m.gateway.Credits(gCtx, movieID)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.MoviePage{}, fmt.Errorf("error fetching movie %d: %w", movieID, err)
	}

	return models.MoviePage{Detail: detail, Cast: credits.Cast}, nil
}

func (m *movieService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	list, err := m.gateway.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching movies: %w", err)
	}

	return list.Results, nil
}
