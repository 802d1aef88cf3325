// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status-class sentinels wrapped by *BaaSError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrRemoteNotConfigured is returned by NewHTTPBaaSAdapter when no endpoint
// is configured.
var ErrRemoteNotConfigured = errors.New("remote endpoint is not configured")

// BaaSError is a non-2xx response of the BaaS.
type BaaSError struct {
	Status  int
	Type    string
	Message string
	Err     error
}

func (e *BaaSError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%v (%d %s): %s", e.Err, e.Status, e.Type, e.Message)
	}
	return fmt.Sprintf("%v (%d): %s", e.Err, e.Status, e.Message)
}

func (e *BaaSError) Unwrap() error {
	return e.Err
}
