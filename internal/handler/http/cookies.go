// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-browser/models"
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     h.services.SessionService.CookieName(),
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.services.SessionService.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
