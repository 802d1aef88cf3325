// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"
)

func recvWithin(t *testing.T, ch <-chan int, d time.Duration) (int, bool) {
	t.Helper()
	select {
	case v, ok := <-ch:
		return v, ok
	case <-time.After(d):
		t.Fatal("timed out waiting for value")
		return 0, false
	}
}

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroadcaster[int]()
	s1 := b.Subscribe(ctx)
	s2 := b.Subscribe(ctx)

	b.Publish(7)

	if v, _ := recvWithin(t, s1, time.Second); v != 7 {
		t.Fatalf("s1: expected 7, got %d", v)
	}
	if v, _ := recvWithin(t, s2, time.Second); v != 7 {
		t.Fatalf("s2: expected 7, got %d", v)
	}
}

func TestBroadcaster_LateSubscriberGetsLast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroadcaster[int]()
	b.Publish(1)
	b.Publish(2)

	if v, _ := recvWithin(t, b.Subscribe(ctx), time.Second); v != 2 {
		t.Fatalf("expected last value 2, got %d", v)
	}
}

func TestBroadcaster_SlowReaderSeesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroadcaster[int]()
	s := b.Subscribe(ctx)

	for i := 1; i <= 10; i++ {
		b.Publish(i)
	}

	if v, _ := recvWithin(t, s, time.Second); v != 10 {
		t.Fatalf("expected latest value 10, got %d", v)
	}
}

func TestBroadcaster_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	b := NewBroadcaster[int]()
	s := b.Subscribe(ctx)
	cancel()

	if _, ok := recvWithin(t, s, time.Second); ok {
		t.Fatal("expected closed channel")
	}

	deadline := time.Now().Add(time.Second)
	for b.Subscribers() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if b.Subscribers() != 0 {
		t.Fatal("expected subscription to be removed")
	}

	// publishing after close must not panic
	b.Publish(1)
}

func TestBroadcaster_Reset(t *testing.T) {
	b := NewBroadcaster[int]()
	b.Publish(3)
	b.Reset()

	if _, ok := b.Last(); ok {
		t.Fatal("expected no last value after reset")
	}
}

func TestSendLatest_ReplacesUnreadValue(t *testing.T) {
	ch := make(chan int, 1)

	SendLatest(ch, 1)
	SendLatest(ch, 2)

	if v := <-ch; v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}
