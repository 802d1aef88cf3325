// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidIDToken   = errors.New("invalid id token")
	ErrLoginFailed      = errors.New("login failed")
	ErrLoginTimeout     = errors.New("login timed out")
	ErrNoLoginSession   = errors.New("login response has no session")
	ErrNameTooShort     = errors.New("name is too short")
	ErrSavingSession    = errors.New("error saving session")
	ErrSavingProfile    = errors.New("error saving profile")
	ErrClearingIdentity = errors.New("error clearing identity")
)
