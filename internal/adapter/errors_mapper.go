// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error body ends up in the wrapped error.
const maxErrorBody = 256

// mapHTTPError turns any status other than 200 into an error wrapping
// [ErrUpstreamUnavailable] and the matching cause.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	body = truncateBody(body)
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var cause error
	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		cause = ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		cause = ErrUnauthorized
	case code == http.StatusNotFound:
		cause = ErrNotFound
	case code == http.StatusTooManyRequests:
		cause = ErrRateLimited
	case code >= http.StatusInternalServerError:
		cause = ErrUpstreamServer
	default:
		cause = ErrUnexpectedStatus
	}

	return fmt.Errorf("%w: %w: http %d: %s", ErrUpstreamUnavailable, cause, resp.StatusCode(), body)
}

// truncateBody cuts s to at most maxErrorBody bytes without splitting a rune.
func truncateBody(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func wrapFailure(cause, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrUpstreamUnavailable, cause, err)
}
