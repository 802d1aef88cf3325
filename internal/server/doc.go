// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the client's local status HTTP server.
//
// It owns the listener lifecycle: binding at construction, serving until the
// context is done and a bounded graceful shutdown.
package server
