// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoAddress = errors.New("no listen address configured")
	ErrListen    = errors.New("error binding listen address")
)
