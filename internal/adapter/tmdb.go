// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/models"
)

const (
	discoverPath = "/discover/movie"
	moviePath    = "/movie/{movie_id}"
	creditsPath  = "/movie/{movie_id}/credits"
	searchPath   = "/search/movie"
)

type tmdbGateway struct {
	client *utils.HTTPClient

	accessToken string
	apiKey      string
	language    string

	// auth scheme per call site
	defaultAuth string
	searchAuth  string

	logger *logger.Logger
}

// NewTMDBGateway constructs a resty implementation of [MovieGateway] for the
// TMDB v3 API described by cfg.
//
// Discover, movie and credits calls authenticate with cfg.DefaultAuth, the
// title search with cfg.SearchAuth. Each is either [config.AuthSchemeBearer]
// or [config.AuthSchemeAPIKey].
func NewTMDBGateway(cfg config.Upstream, log *logger.Logger) (MovieGateway, error) {
	for _, scheme := range []string{cfg.DefaultAuth, cfg.SearchAuth} {
		if scheme != config.AuthSchemeBearer && scheme != config.AuthSchemeAPIKey {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
		}
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("default_auth", cfg.DefaultAuth).
		Str("search_auth", cfg.SearchAuth).
		Msg("creating movie gateway")

	return &tmdbGateway{
		client:      utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		accessToken: cfg.AccessToken,
		apiKey:      cfg.APIKey,
		language:    cfg.Language,
		defaultAuth: cfg.DefaultAuth,
		searchAuth:  cfg.SearchAuth,
		logger:      log,
	}, nil
}

// Popular implements [MovieGateway].
// GET /discover/movie sorted by popularity.
func (g *tmdbGateway) Popular(ctx context.Context) (models.MovieList, error) {
	var list models.MovieList
	err := g.get(g.discoverRequest(ctx), discoverPath, &list)
	if err == nil && list.Results == nil {
		err = fmt.Errorf("%w: %w: results", ErrUpstreamUnavailable, ErrMissingPayload)
	}
	if err != nil {
		g.logFailure(ctx, "*tmdbGateway.Popular", err)
		return models.MovieList{}, err
	}

	return list, nil
}

// DiscoverByGenre implements [MovieGateway].
// GET /discover/movie sorted by popularity with with_genres set.
func (g *tmdbGateway) DiscoverByGenre(ctx context.Context, genreID int) (models.MovieList, error) {
	var list models.MovieList
	req := g.discoverRequest(ctx).SetQueryParam("with_genres", strconv.Itoa(genreID))

	err := g.get(req, discoverPath, &list)
	if err == nil && list.Results == nil {
		err = fmt.Errorf("%w: %w: results", ErrUpstreamUnavailable, ErrMissingPayload)
	}
	if err != nil {
		g.logFailure(ctx, "*tmdbGateway.DiscoverByGenre", err)
		return models.MovieList{}, err
	}

	return list, nil
}

// Movie implements [MovieGateway].
// GET /movie/{movie_id}.
func (g *tmdbGateway) Movie(ctx context.Context, movieID int64) (models.MovieDetail, error) {
	var detail models.MovieDetail
	req := g.request(ctx, g.defaultAuth).
		SetPathParam("movie_id", strconv.FormatInt(movieID, 10)).
		SetQueryParam("language", g.language)

	err := g.get(req, moviePath, &detail)
	if err == nil && detail.ID == 0 {
		err = fmt.Errorf("%w: %w: id", ErrUpstreamUnavailable, ErrMissingPayload)
	}
	if err != nil {
		g.logFailure(ctx, "*tmdbGateway.Movie", err)
		return models.MovieDetail{}, err
	}

	return detail, nil
}

// Credits implements [MovieGateway].
// GET /movie/{movie_id}/credits.
func (g *tmdbGateway) Credits(ctx context.Context, movieID int64) (models.Credits, error) {
	var credits models.Credits
	req := g.request(ctx, g.defaultAuth).
		SetPathParam("movie_id", strconv.FormatInt(movieID, 10)).
		SetQueryParam("language", g.language)

	err := g.get(req, creditsPath, &credits)
	if err == nil && credits.Cast == nil {
		err = fmt.Errorf("%w: %w: cast", ErrUpstreamUnavailable, ErrMissingPayload)
	}
	if err != nil {
		g.logFailure(ctx, "*tmdbGateway.Credits", err)
		return models.Credits{}, err
	}

	return credits, nil
}

// Search implements [MovieGateway].
// GET /search/movie?query=...; authenticates with the search scheme.
func (g *tmdbGateway) Search(ctx context.Context, query string) (models.MovieList, error) {
	var list models.MovieList
	req := g.request(ctx, g.searchAuth).SetQueryParam("query", query)

	err := g.get(req, searchPath, &list)
	if err == nil && list.Results == nil {
		err = fmt.Errorf("%w: %w: results", ErrUpstreamUnavailable, ErrMissingPayload)
	}
	if err != nil {
		g.logFailure(ctx, "*tmdbGateway.Search", err)
		return models.MovieList{}, err
	}

	return list, nil
}

func (g *tmdbGateway) discoverRequest(ctx context.Context) *resty.Request {
	return g.request(ctx, g.defaultAuth).SetQueryParams(map[string]string{
		"include_adult": "true",
		"include_video": "false",
		"language":      g.language,
		"page":          "1",
		"sort_by":       "popularity.desc",
	})
}

// request starts a request authenticated with the given scheme.
func (g *tmdbGateway) request(ctx context.Context, scheme string) *resty.Request {
	req := g.client.R().SetContext(ctx)

	switch scheme {
	case config.AuthSchemeAPIKey:
		req.SetQueryParam("api_key", g.apiKey)
	default:
		req.SetAuthToken(g.accessToken)
	}

	return req
}

// get sends req and decodes a 200 JSON body into out.
func (g *tmdbGateway) get(req *resty.Request, path string, out any) error {
	resp, err := req.Get(path)
	if err != nil {
		return wrapFailure(ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return wrapFailure(ErrMalformedResponse, err)
	}

	return nil
}

func (g *tmdbGateway) logFailure(ctx context.Context, funcName string, err error) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = g.logger
	}
	log.Err(err).Str("func", funcName).Msg("upstream request failed")
}
