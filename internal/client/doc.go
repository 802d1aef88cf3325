// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires storage, the remote adapter, identity, the achievement façade,
// the home view-model, background workers and the terminal UI into a single
// process lifecycle.
package client
