// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Session wraps the signed session marker stored in the browser cookie.
//
// The only identity it carries is the username in the "sub" claim. Its
// lifetime is bounded by the "exp" claim; nothing else is tracked
// server-side.
type Session struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form written into the cookie.
	SignedString string `json:"-"`
}

// Username returns the logged-in username stored in the "sub" claim.
func (s *Session) Username() (string, error) {
	username, err := s.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from session: %w", err)
	}
	if username == "" {
		return "", fmt.Errorf("session carries no username")
	}

	return username, nil
}

// String returns the compact JWS serialization of the session marker.
func (s *Session) String() string {
	return s.SignedString
}
