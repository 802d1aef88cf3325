// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/arcent/internal/utils"
)

// AuthChange tells what happened to the signed-in identity.
type AuthChange int

const (
	AuthSignedIn AuthChange = iota + 1
	AuthLocalMode
	AuthSignedOut
)

func (c AuthChange) String() string {
	switch c {
	case AuthSignedIn:
		return "signed_in"
	case AuthLocalMode:
		return "local_mode"
	case AuthSignedOut:
		return "signed_out"
	default:
		return "unknown"
	}
}

// Events broadcasts identity changes. Only subscribers present at the time
// of Fire see a change; nothing is replayed to later subscribers.
type Events struct {
	b *utils.Broadcaster[AuthChange]
}

func NewEvents() *Events {
	return &Events{b: utils.NewBroadcaster[AuthChange]()}
}

// Subscribe delivers changes until ctx is done. A slow subscriber only sees
// the latest change.
func (e *Events) Subscribe(ctx context.Context) <-chan AuthChange {
	return e.b.Subscribe(ctx)
}

func (e *Events) Fire(change AuthChange) {
	e.b.Publish(change)
	e.b.Reset()
}
