// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local status endpoint of the client.
//
// It exposes Prometheus metrics, a health probe reporting the on-device
// database and the active backend, and the build version. Request tracing
// and access logging are applied as middleware.
package http
