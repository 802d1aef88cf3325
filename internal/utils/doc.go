// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: identifier generation, content
// hashing, JSON response writing, the outbound HTTP client, ID-token claim
// inspection and a latest-value broadcaster for live feeds.
package utils
