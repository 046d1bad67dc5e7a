// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-browser/internal/app"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/store"
)

// signupFailure is how a failed registration is shown on the signup form.
type signupFailure struct {
	status  int
	message string
}

var signupErrorMap = map[error]signupFailure{
	service.ErrInvalidDataProvided: {status: http.StatusBadRequest, message: app.MsgInvalidSignup},
	store.ErrUsernameAlreadyExists: {status: http.StatusConflict, message: app.MsgUsernameTaken},
}

// signupFailureFromError maps a registration error to a form message. ok is
// false for errors that are not the user's fault.
func signupFailureFromError(err error) (signupFailure, bool) {
	for target, failure := range signupErrorMap {
		if errors.Is(err, target) {
			return failure, true
		}
	}
	return signupFailure{}, false
}
