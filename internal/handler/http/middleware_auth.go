// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
)

// loadSession reads the session cookie and, when its marker is valid, stores
// the username in the request context under [utils.UsernameCtxKey]. It never
// rejects a request: a missing or invalid marker leaves the request
// anonymous, and an invalid cookie is cleared.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		sessions := h.services.SessionService

		cookie, err := r.Cookie(sessions.CookieName())
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := sessions.Parse(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("dropping invalid session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		username, err := session.Username()
		if err != nil {
			log.Debug().Err(err).Msg("dropping session without username")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUsername(ctx, username)))
	})
}

// requireSession is the session guard. Requests without a username in the
// context are redirected to /login and next is never called.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.UsernameFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("no session, redirecting to login")
			utils.Redirect(w, r, loginPath)
			return
		}

		next.ServeHTTP(w, r)
	})
}
