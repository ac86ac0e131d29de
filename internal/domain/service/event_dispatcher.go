// Package service defines domain-level service interfaces implemented by infra.
package service

import (
	"context"

	"huddle/internal/domain/entity"
)

// Subscription is one open receive side of the per-group fan-out. The channel
// is closed when the subscription is closed; a receive loop blocks on Events
// and exits on channel close.
type Subscription interface {
	// Events is the receive channel. Delivery is at-most-once: events published
	// while the subscriber is too slow or disconnected are dropped, not queued.
	Events() <-chan *entity.GeofenceEvent

	// Close removes the fan-out registration and closes the channel. Safe to
	// call more than once.
	Close()
}

// EventDispatcher fans boundary-crossing events out to every open subscription
// for a group. There is no replay or backlog; a subscriber opened after an
// event fired simply misses it.
type EventDispatcher interface {
	Subscribe(groupID string) Subscription
	Publish(ctx context.Context, groupID string, event *entity.GeofenceEvent) error
}
