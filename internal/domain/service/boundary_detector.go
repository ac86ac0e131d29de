package service

import (
	"context"
	"time"
)

// BoundaryDetector observes position samples and publishes ENTER/EXIT events
// when a member crosses a configured fence. The core treats the detector as a
// collaborator: ingestion hands it every committed sample and never depends on
// its outcome.
type BoundaryDetector interface {
	Observe(ctx context.Context, groupID, userID string, lat, lng float64, at time.Time)
}
