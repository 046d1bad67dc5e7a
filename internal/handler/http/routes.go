// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-movie-browser/internal/view"
)

const (
	loginPath = "/login"
	homePath  = "/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.loadSession, h.withLogging, middleware.Recoverer, middleware.GetHead, withGZip)

	router.Handle("/static/*", http.StripPrefix("/static/", view.Static()))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupForm)
		r.Post("/signup", h.signup)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/", h.home)
		r.Get("/genre/{id:[0-9]+}", h.genre)
		r.Get("/movie/{id:[0-9]+}", h.movie)
		r.Get("/search-movies", h.search)
		r.Get("/logout", h.logout)
	})

	router.NotFound(h.requireSession(http.HandlerFunc(h.notFound)).ServeHTTP)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
