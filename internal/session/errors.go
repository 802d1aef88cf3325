// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrReadingFile   = errors.New("error reading sealed file")
	ErrWritingFile   = errors.New("error writing sealed file")
	ErrRemovingFile  = errors.New("error removing sealed file")
	ErrOpeningFile   = errors.New("error opening sealed file")
	ErrInvalidDevKey = errors.New("device key file is corrupted")
)
