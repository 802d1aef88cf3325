// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/arcent/internal/service"
	"github.com/MKhiriev/arcent/models"
)

var (
	ErrInvalidDate  = errors.New("date must look like YYYY-MM-DD")
	ErrReadingPhoto = errors.New("error reading photo file")

	ErrMissingDependency = errors.New("tui dependency is missing")
)

// humanizeError turns failures the user can act on into short messages.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var degraded *models.DegradedError
	switch {
	case errors.Is(err, service.ErrLoginTimeout):
		return "Sign-in took too long, please try again"
	case errors.Is(err, service.ErrInvalidIDToken):
		return "That is not a valid Google ID token"
	case errors.Is(err, service.ErrNameTooShort):
		return "Name must be at least 2 characters"
	case errors.As(err, &degraded):
		return "Could not save right now, please try again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
