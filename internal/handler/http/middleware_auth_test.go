// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
)

func TestLoadSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	tests := []struct {
		name          string
		cookie        *http.Cookie
		wantUsername  string
		wantCleared   bool
		wantAnonymous bool
	}{
		{name: "no cookie", wantAnonymous: true},
		{name: "valid cookie", cookie: sessionCookie(t, h, "alice"), wantUsername: "alice"},
		{name: "empty cookie", cookie: &http.Cookie{Name: service.SessionCookieName, Value: ""}, wantAnonymous: true},
		{name: "forged cookie", cookie: &http.Cookie{Name: service.SessionCookieName, Value: "forged.token.value"}, wantAnonymous: true, wantCleared: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				called   bool
				username string
				ok       bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				username, ok = utils.UsernameFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			h.loadSession(next).ServeHTTP(rr, req)

			assert.True(t, called, "loadSession never rejects")
			assert.Equal(t, !tt.wantAnonymous, ok)
			assert.Equal(t, tt.wantUsername, username)

			cleared := findCookie(rr, service.SessionCookieName)
			if tt.wantCleared {
				if assert.NotNil(t, cleared) {
					assert.Less(t, cleared.MaxAge, 0)
				}
			} else {
				assert.Nil(t, cleared)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	t.Run("anonymous request is redirected and next never runs", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		rr := httptest.NewRecorder()
		h.requireSession(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/movie/603", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("logged-in request passes unchanged", func(t *testing.T) {
		var got *http.Request
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.WriteHeader(http.StatusTeapot)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.WithUsername(req.Context(), "alice"))
		rr := httptest.NewRecorder()
		h.requireSession(next).ServeHTTP(rr, req)

		assert.Same(t, req, got)
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("wrapping twice behaves like once", func(t *testing.T) {
		calls := 0
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ })
		twice := h.requireSession(h.requireSession(next))

		rr := httptest.NewRecorder()
		twice.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, 0, calls)
		assert.Equal(t, "/login", rr.Header().Get("Location"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.WithUsername(req.Context(), "alice"))
		twice.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, 1, calls)
	})
}

// TestGuardedRoutes_WithoutSession checks every protected route, the
// not-found fallback included, redirects without touching the services.
func TestGuardedRoutes_WithoutSession(t *testing.T) {
	// the mocks carry no expectations: any service call fails the test
	h, _, _ := newTestHandler(t)

	for _, target := range []string{"/", "/genre/28", "/movie/603", "/search-movies?query=matrix", "/logout", "/no-such-page", "/genre/abc"} {
		t.Run(target, func(t *testing.T) {
			rr := get(t, h, target, "")
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestGuardedRoutes_HeadWithoutSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for _, target := range []string{"/", "/movie/603", "/genre/28", "/search-movies?query=matrix"} {
		t.Run(target, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(http.MethodHead, target, nil))
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestLoginForm_Head(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rr := serve(h, httptest.NewRequest(http.MethodHead, "/login", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
