// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the signed-in identity on disk.
//
// The cached [models.UserProfile] and the BaaS [models.Session] live in two
// sealed files in the data directory. Both are small JSON documents
// encrypted with a [crypto.Sealer] whose key is derived from a per-install
// device key. [Events] tells interested parties that the identity changed.
package session
