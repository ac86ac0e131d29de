package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceEventType distinguishes boundary-crossing directions.
type GeofenceEventType string

const (
	// GeofenceEnter marks an outside-to-inside transition.
	GeofenceEnter GeofenceEventType = "ENTER"
	// GeofenceExit marks an inside-to-outside transition.
	GeofenceExit GeofenceEventType = "EXIT"
)

// Valid reports whether the type is one of the known transitions.
func (t GeofenceEventType) Valid() bool {
	return t == GeofenceEnter || t == GeofenceExit
}

// GeofenceEvent is an ephemeral boundary-crossing notification. It is produced
// once by the boundary detector, fanned out to every open subscription for the
// group, and never persisted. Events carry no ordering guarantee relative to
// location updates; they are a separate channel.
type GeofenceEvent struct {
	ID      uuid.UUID         `json:"id"`
	Type    GeofenceEventType `json:"type"`
	FenceID string            `json:"fence_id"`
	UserID  string            `json:"user_id"`
	At      time.Time         `json:"at"`
}
