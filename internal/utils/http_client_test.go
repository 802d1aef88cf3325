// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
	if client.Limiter() != nil {
		t.Fatal("expected no limiter by default")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestWithRateLimit_NonPositiveIsUnlimited(t *testing.T) {
	client := NewHTTPClient().WithRateLimit(0)
	if client.Limiter() != nil {
		t.Fatal("expected no limiter for rps=0")
	}
}

func TestWithRateLimit_Burst(t *testing.T) {
	client := NewHTTPClient().WithRateLimit(2.5)
	if client.Limiter() == nil {
		t.Fatal("expected limiter")
	}
	if client.Limiter().Burst() != 3 {
		t.Fatalf("expected burst 3, got %d", client.Limiter().Burst())
	}
}

// TestWithRateLimit_CancelledContext verifies that a request waiting for a
// token is abandoned when its context ends.
func TestWithRateLimit_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRateLimit(0.001)

	// consume the only token
	if _, err := client.R().Get(srv.URL); err != nil {
		t.Fatalf("first request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.R().SetContext(ctx).Get(srv.URL); err == nil {
		t.Fatal("expected rate-limited request to fail on context deadline")
	}
}
