// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/view"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.MovieService.Home(r.Context())
	if err != nil {
		h.serviceFailed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageHome, view.PageData{Title: "Popular", Movies: movies})
}

func (h *Handler) genre(w http.ResponseWriter, r *http.Request) {
	genreID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	page, err := h.services.MovieService.Genre(r.Context(), genreID)
	if err != nil {
		h.serviceFailed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageGenre, view.PageData{Title: page.Name, Genre: page})
}

func (h *Handler) movie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return
	}

	page, err := h.services.MovieService.Movie(r.Context(), movieID)
	if err != nil {
		h.serviceFailed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageMovie, view.PageData{Title: page.Detail.Title, Movie: page})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	movies, err := h.services.MovieService.Search(r.Context(), query)
	if err != nil {
		h.serviceFailed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageSearch, view.PageData{Title: "Search", Query: query, Movies: movies})
}

// notFound renders the 404 page. It is mounted behind the session guard.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, view.PageNotFound, view.PageData{Title: "Not found"})
}

func (h *Handler) serviceFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, adapter.ErrUpstreamUnavailable) {
		h.upstreamFailed(w, r, err)
		return
	}

	logger.FromRequest(r).Err(err).Msg("unexpected error while building page")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
