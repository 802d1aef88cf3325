// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
	limiter *rate.Limiter
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRateLimit makes every request wait for a token from a limiter allowing
// rps requests per second (burst: ceil(rps)). The wait honours the request
// context. A non-positive rps leaves the client unlimited.
func (c *HTTPClient) WithRateLimit(rps float64) *HTTPClient {
	if rps <= 0 {
		return c
	}

	c.limiter = rate.NewLimiter(rate.Limit(rps), int(math.Ceil(rps)))
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		return c.limiter.Wait(r.Context())
	})

	return c
}

// Limiter returns the configured limiter, or nil when unlimited.
func (c *HTTPClient) Limiter() *rate.Limiter {
	return c.limiter
}
