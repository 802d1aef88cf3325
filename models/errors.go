// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// DegradedError marks a result that was produced on a failure path. The
// accompanying value is still usable (an empty list or a placeholder
// record) and the cause has already been reported, so callers are free to
// ignore it.
type DegradedError struct {
	Op  string
	Err error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s degraded: %v", e.Op, e.Err)
}

func (e *DegradedError) Unwrap() error {
	return e.Err
}

// Degraded wraps err as a *DegradedError for op. A nil err yields nil.
func Degraded(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DegradedError{Op: op, Err: err}
}
