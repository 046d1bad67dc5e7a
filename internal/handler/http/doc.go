// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML front of the movie browser.
//
// It wires the chi router, the request middleware (trace id, access log,
// gzip, session loading and the session guard) and the page handlers that
// call into the service layer and render [view] pages.
package http
