// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals small documents (profile, session) before they are
// written to the app data directory.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts values at rest.
//
// A sealed blob is nonce ‖ ciphertext, where the plaintext is the JSON
// encoding of the value and the cipher is AES-256-GCM under a key derived
// once from the device secret.
type Sealer interface {
	// Seal serializes v to JSON and encrypts it.
	Seal(v any) ([]byte, error)

	// Open decrypts blob and unmarshals it into target, which must be a
	// non-nil pointer. A wrong key or a tampered blob fails authentication.
	Open(blob []byte, target any) error
}
