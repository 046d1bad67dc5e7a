// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract for the servers managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested or serving fails, and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A non-nil error means the server could not serve.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
