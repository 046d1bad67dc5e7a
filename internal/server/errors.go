// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errListenFailed        = errors.New("http server failed to listen")
	errServerStopped       = errors.New("http server stopped unexpectedly")
)
