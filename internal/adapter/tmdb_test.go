// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testUpstreamConfig(serverURL string) config.Upstream {
	return config.Upstream{
		BaseURL:        serverURL,
		AccessToken:    "bearer-token",
		APIKey:         "api-key",
		Language:       "en-US",
		RequestTimeout: 2 * time.Second,
		DefaultAuth:    config.AuthSchemeBearer,
		SearchAuth:     config.AuthSchemeAPIKey,
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) (MovieGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewTMDBGateway(testUpstreamConfig(srv.URL), logger.Nop())
	require.NoError(t, err)
	return g, srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── constructor ───────────────────────────────────────────────────────────────

func TestNewTMDBGateway_UnsupportedScheme(t *testing.T) {
	cfg := testUpstreamConfig("http://localhost")
	cfg.SearchAuth = "basic"

	g, err := NewTMDBGateway(cfg, logger.Nop())
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

// ── Popular / DiscoverByGenre ─────────────────────────────────────────────────

func TestPopular_Success(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("include_adult"))
		assert.Equal(t, "false", q.Get("include_video"))
		assert.Equal(t, "en-US", q.Get("language"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "popularity.desc", q.Get("sort_by"))
		assert.False(t, q.Has("with_genres"))
		assert.False(t, q.Has("api_key"))

		writeJSON(w, http.StatusOK, `{"page":1,"results":[{"id":603,"title":"The Matrix"},{"id":604,"title":"The Matrix Reloaded"}]}`)
	})

	list, err := g.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Results, 2)
	assert.Equal(t, int64(603), list.Results[0].ID)
	assert.Equal(t, "The Matrix", list.Results[0].Title)
}

func TestPopular_EmptyResultsIsSuccess(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"page":1,"results":[]}`)
	})

	list, err := g.Popular(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Results)
	assert.Empty(t, list.Results)
}

func TestDiscoverByGenre_SendsGenre(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "28", r.URL.Query().Get("with_genres"))
		assert.Equal(t, "popularity.desc", r.URL.Query().Get("sort_by"))

		writeJSON(w, http.StatusOK, `{"results":[{"id":1,"title":"Die Hard","genre_ids":[28]}]}`)
	})

	list, err := g.DiscoverByGenre(context.Background(), 28)
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, []int{28}, list.Results[0].GenreIDs)
}

func TestListing_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		cause  error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"status_code":7}`, cause: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, body: "", cause: ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "{}", cause: ErrRateLimited},
		{name: "server error", status: http.StatusBadGateway, body: "oops", cause: ErrUpstreamServer},
		{name: "non-200 success", status: http.StatusNoContent, body: "", cause: ErrUnexpectedStatus},
		{name: "malformed body", status: http.StatusOK, body: `{"results":`, cause: ErrMalformedResponse},
		{name: "missing results", status: http.StatusOK, body: `{"page":1}`, cause: ErrMissingPayload},
		{name: "null results", status: http.StatusOK, body: `{"results":null}`, cause: ErrMissingPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			list, err := g.Popular(context.Background())
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)
			assert.ErrorIs(t, err, tt.cause)
			assert.Nil(t, list.Results)

			_, err = g.DiscoverByGenre(context.Background(), 28)
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)

			_, err = g.Search(context.Background(), "matrix")
			assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		})
	}
}

func TestPopular_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	g, err := NewTMDBGateway(testUpstreamConfig(srv.URL), logger.Nop())
	require.NoError(t, err)
	srv.Close()

	_, err = g.Popular(context.Background())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestPopular_CanceledContext(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"results":[]}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Popular(ctx)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Movie / Credits ───────────────────────────────────────────────────────────

func TestMovie_Success(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{"id":603,"title":"The Matrix","runtime":136,"genres":[{"id":28,"name":"Action"}]}`)
	})

	detail, err := g.Movie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, int64(603), detail.ID)
	assert.Equal(t, "The Matrix", detail.Title)
	assert.Equal(t, 136, detail.Runtime)
	require.Len(t, detail.Genres, 1)
	assert.Equal(t, "Action", detail.Genres[0].Name)
}

func TestMovie_MissingID(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":false}`)
	})

	_, err := g.Movie(context.Background(), 603)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestCredits_Success(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/credits", r.URL.Path)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		writeJSON(w, http.StatusOK, `{"id":603,"cast":[{"id":6384,"name":"Keanu Reeves","character":"Neo","order":0}]}`)
	})

	credits, err := g.Credits(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 1)
	assert.Equal(t, "Keanu Reeves", credits.Cast[0].Name)
	assert.Equal(t, "Neo", credits.Cast[0].Character)
}

func TestCredits_MissingCast(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":603}`)
	})

	_, err := g.Credits(context.Background(), 603)
	assert.ErrorIs(t, err, ErrMissingPayload)
}

// ── Search ────────────────────────────────────────────────────────────────────

func TestSearch_UsesAPIKeyByDefault(t *testing.T) {
	g, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "the matrix & co", r.URL.Query().Get("query"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{"results":[{"id":603,"title":"The Matrix"}]}`)
	})

	list, err := g.Search(context.Background(), "the matrix & co")
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
}

func TestSearch_BearerWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bearer-token", r.Header.Get("Authorization"))
		assert.False(t, r.URL.Query().Has("api_key"))
		writeJSON(w, http.StatusOK, `{"results":[]}`)
	}))
	defer srv.Close()

	cfg := testUpstreamConfig(srv.URL)
	cfg.SearchAuth = config.AuthSchemeBearer
	g, err := NewTMDBGateway(cfg, logger.Nop())
	require.NoError(t, err)

	_, err = g.Search(context.Background(), "matrix")
	require.NoError(t, err)
}

func TestDefaultAuth_APIKeyWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "api-key", r.URL.Query().Get("api_key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"id":603,"title":"The Matrix"}`)
	}))
	defer srv.Close()

	cfg := testUpstreamConfig(srv.URL)
	cfg.DefaultAuth = config.AuthSchemeAPIKey
	g, err := NewTMDBGateway(cfg, logger.Nop())
	require.NoError(t, err)

	_, err = g.Movie(context.Background(), 603)
	require.NoError(t, err)
}
