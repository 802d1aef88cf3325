// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	baasErr := &BaaSError{Status: resp.StatusCode()}

	body := strings.TrimSpace(string(resp.Body()))
	var parsed errorBody
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil && parsed.Message != "" {
		baasErr.Message = parsed.Message
		baasErr.Type = parsed.Type
	} else {
		baasErr.Message = body
	}
	if baasErr.Message == "" {
		baasErr.Message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		baasErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		baasErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		baasErr.Err = ErrForbidden
	case http.StatusNotFound:
		baasErr.Err = ErrNotFound
	case http.StatusConflict:
		baasErr.Err = ErrConflict
	case http.StatusTooManyRequests:
		baasErr.Err = ErrTooManyRequests
	case http.StatusInternalServerError:
		baasErr.Err = ErrInternalServerError
	case http.StatusBadGateway:
		baasErr.Err = ErrBadGateway
	case http.StatusServiceUnavailable:
		baasErr.Err = ErrServiceUnavailable
	default:
		baasErr.Err = ErrUnexpectedStatus
	}

	return baasErr
}
