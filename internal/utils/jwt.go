// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrIDTokenExpired is returned when an ID token's exp claim is in the past.
var ErrIDTokenExpired = errors.New("id token expired")

// IDTokenClaims is the subset of Google ID token claims the client reads.
type IDTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// ParseIDToken decodes an ID token without verifying its signature. The
// signature is verified server-side by the login function; the client only
// rejects tokens that are malformed, lack a subject or have already expired,
// so it never spends a network round trip on them.
func ParseIDToken(raw string, now time.Time) (IDTokenClaims, error) {
	var claims IDTokenClaims

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return claims, errors.New("empty id token")
	}

	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return claims, fmt.Errorf("error parsing id token: %w", err)
	}

	if claims.Subject == "" {
		return claims, errors.New("id token has no subject")
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return claims, ErrIDTokenExpired
	}

	return claims, nil
}
