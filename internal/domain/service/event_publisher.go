package service

import (
	"context"
	"time"
)

// GeofenceEventMessage is the wire form of a boundary-crossing event forwarded
// to an external message queue for cross-instance delivery.
type GeofenceEventMessage struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	GroupID   string    `json:"group_id"`
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	FenceID   string    `json:"fence_id"`
	UserID    string    `json:"user_id"`
	At        time.Time `json:"at"`
}

// EventPublisher defines the interface for forwarding events to a message queue.
type EventPublisher interface {
	// PublishGeofenceEvent forwards a geofence event for cross-instance fan-out.
	PublishGeofenceEvent(ctx context.Context, msg *GeofenceEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
