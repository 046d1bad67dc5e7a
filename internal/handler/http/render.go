// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-movie-browser/internal/app"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/internal/view"
)

// render writes page with status. The username of the session, if any, is
// always passed to the template.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.PageData) {
	if username, ok := utils.UsernameFromContext(r.Context()); ok {
		data.Username = username
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("page rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("writing page failed")
	}
}

// upstreamFailed answers a page whose catalogue data could not be fetched.
func (h *Handler) upstreamFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("upstream request failed")
	utils.WritePlainText(w, app.MsgRequestFailed, http.StatusOK)
}
