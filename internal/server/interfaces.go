// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the status server.
type Server interface {
	// RunServer serves requests and blocks until ctx is done and the server
	// has shut down, or serving fails.
	RunServer(ctx context.Context) error

	// Addr is the bound listen address.
	Addr() string
}
