// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-movie-browser/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT that serves as the
// session marker of a logged-in user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("go-movie-browser", "alice", time.Hour, "secret")
func GenerateSessionToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || username == "" || tokenDuration == 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given session marker and extracts its claims.
//
// Validation includes:
//   - HS256 as the only accepted signing method
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	session, err := utils.ValidateAndParseSessionToken(cookie.Value, "secret", "go-movie-browser")
//	if err != nil {
//	    // treat the request as unauthenticated
//	}
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	session := &models.Session{}
	token, err := jwt.ParseWithClaims(tokenString, session, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if _, err = session.Username(); err != nil {
		return models.Session{}, err
	}

	session.Token = token
	session.SignedString = tokenString

	return *session, nil
}
