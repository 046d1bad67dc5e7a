// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrUpstreamUnavailable wraps every gateway failure.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Specific failure causes. They are always returned together with
// [ErrUpstreamUnavailable].
var (
	ErrBadRequest        = errors.New("upstream rejected the request")
	ErrUnauthorized      = errors.New("upstream credentials rejected")
	ErrNotFound          = errors.New("upstream resource not found")
	ErrRateLimited       = errors.New("upstream rate limit reached")
	ErrUpstreamServer    = errors.New("upstream server error")
	ErrUnexpectedStatus  = errors.New("unexpected upstream status")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrMissingPayload    = errors.New("upstream response misses expected payload")
	ErrTransport         = errors.New("upstream transport error")
	ErrUnsupportedScheme = errors.New("unsupported upstream auth scheme")
)
