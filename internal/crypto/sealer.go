// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the key-derivation salt.
	SaltSize = 16
	// SecretSize is the length of a generated device secret.
	SecretSize = 32
)

var (
	ErrEmptySecret    = errors.New("device secret is empty")
	ErrInvalidSalt    = fmt.Errorf("salt must be %d bytes", SaltSize)
	ErrCiphertextSize = errors.New("ciphertext too short")
)

// sealer is the AES-256-GCM implementation of [Sealer].
type sealer struct {
	aead cipher.AEAD
}

// Argon2id parameters (OWASP 2024): 1 iteration, 64 MiB, 4 lanes, 256-bit key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// NewSealer derives the sealing key from secret and salt with Argon2id.
// The derivation runs once; Seal and Open reuse the key.
func NewSealer(secret, salt []byte) (Sealer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	key := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &sealer{aead: aead}, nil
}

// GenerateSalt reads SaltSize random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// GenerateSecret reads SecretSize random bytes from the OS CSPRNG.
func GenerateSecret() ([]byte, error) {
	return randomBytes(SecretSize)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *sealer) Seal(v any) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	nonce, err := randomBytes(s.aead.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *sealer) Open(blob []byte, target any) error {
	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return ErrCiphertextSize
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("decrypt data: %w", err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
