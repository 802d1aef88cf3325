// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

type payload struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

func newTestSealer(t *testing.T, secret string) Sealer {
	t.Helper()
	s, err := NewSealer([]byte(secret), bytes.Repeat([]byte{0xAB}, SaltSize))
	if err != nil {
		t.Fatalf("NewSealer error: %v", err)
	}
	return s
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateSecret_Length(t *testing.T) {
	s, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}
	if len(s) != SecretSize {
		t.Fatalf("secret length = %d, want %d", len(s), SecretSize)
	}
}

func TestNewSealer_RejectsBadInput(t *testing.T) {
	if _, err := NewSealer(nil, make([]byte, SaltSize)); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
	if _, err := NewSealer([]byte("secret"), []byte("short")); !errors.Is(err, ErrInvalidSalt) {
		t.Fatalf("expected ErrInvalidSalt, got %v", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "device secret")
	in := payload{Name: "Ann", Provider: "local"}

	blob, err := s.Seal(in)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, []byte("Ann")) {
		t.Fatalf("sealed blob leaks plaintext")
	}

	var out payload
	if err := s.Open(blob, &out); err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestSeal_RandomNonce(t *testing.T) {
	s := newTestSealer(t, "device secret")

	b1, _ := s.Seal(payload{Name: "Ann"})
	b2, _ := s.Seal(payload{Name: "Ann"})
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected different blobs for repeated Seal")
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	blob, err := newTestSealer(t, "secret A").Seal(payload{Name: "Ann"})
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	var out payload
	if err := newTestSealer(t, "secret B").Open(blob, &out); err == nil {
		t.Fatalf("expected authentication failure with a different secret")
	}
}

func TestOpen_TamperedAndShortBlobs(t *testing.T) {
	s := newTestSealer(t, "device secret")
	blob, _ := s.Seal(payload{Name: "Ann"})

	blob[len(blob)-1] ^= 0xFF
	var out payload
	if err := s.Open(blob, &out); err == nil {
		t.Fatalf("expected failure for tampered blob")
	}

	if err := s.Open([]byte{1, 2, 3}, &out); !errors.Is(err, ErrCiphertextSize) {
		t.Fatalf("expected ErrCiphertextSize, got %v", err)
	}
}
