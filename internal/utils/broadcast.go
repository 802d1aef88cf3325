// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"sync"
)

// Broadcaster fans a stream of values out to any number of subscribers.
//
// Each subscriber channel has a buffer of one and always holds the latest
// value: a slow reader skips intermediate values instead of blocking the
// publisher. New subscribers immediately receive the last published value.
type Broadcaster[T any] struct {
	mu   sync.Mutex
	subs map[chan T]struct{}
	last T
	has  bool
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[chan T]struct{})}
}

// Subscribe returns a channel receiving published values until ctx is done,
// after which the channel is closed.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	if b.has {
		ch <- b.last
	}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Publish stores v as the latest value and hands it to every subscriber,
// replacing a value the subscriber has not read yet.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = v
	b.has = true

	for ch := range b.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

// Last returns the latest published value.
func (b *Broadcaster[T]) Last() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.has
}

// Reset forgets the latest value so new subscribers start empty.
func (b *Broadcaster[T]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	b.last = zero
	b.has = false
}

// Subscribers returns the number of live subscriptions.
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// SendLatest hands v to a channel with a buffer of one, replacing a value the
// reader has not taken yet. The channel must have a single sender.
func SendLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- v
}
