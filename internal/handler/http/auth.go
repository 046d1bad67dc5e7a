// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-browser/internal/app"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/internal/view"
	"github.com/MKhiriev/go-movie-browser/models"
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, view.PageData{Title: "Log in"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := credentialsFromForm(w, r)
	if !ok {
		return
	}

	valid, err := h.services.AuthService.Verify(ctx, creds)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !valid {
		log.Info().Str("username", creds.Username).Msg("invalid login/password")
		h.render(w, r, http.StatusOK, view.PageLogin, view.PageData{Title: "Log in", Message: app.MsgInvalidInformation})
		return
	}

	session, err := h.services.SessionService.Issue(ctx, creds.Username)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("username", creds.Username).Msg("user logged in")
	h.setSessionCookie(w, session)
	utils.Redirect(w, r, homePath)
}

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageSignup, view.PageData{Title: "Sign up"})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, ok := credentialsFromForm(w, r)
	if !ok {
		return
	}

	if _, err := h.services.AuthService.Register(r.Context(), creds); err != nil {
		failure, known := signupFailureFromError(err)
		if !known {
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		log.Info().Err(err).Str("username", creds.Username).Msg("registration refused")
		h.render(w, r, failure.status, view.PageSignup, view.PageData{Title: "Sign up", Message: failure.message})
		return
	}

	utils.Redirect(w, r, loginPath)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.Redirect(w, r, loginPath)
}

// credentialsFromForm reads the username and password form fields. A body
// that cannot be parsed is answered with 400 and ok is false.
func credentialsFromForm(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form was passed")
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return models.Credentials{}, false
	}

	return models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, true
}
