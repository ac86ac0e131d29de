// Package geofence is the in-process boundary detector. It compares each
// committed position sample against the configured fences and publishes
// ENTER/EXIT events through the dispatcher on transitions.
package geofence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"go.uber.org/fx"
)

// fence is a compiled fence: either a circle or a polygon.
type fence struct {
	id      string
	center  orb.Point
	radius  float64
	polygon orb.Polygon
}

func (f *fence) contains(point orb.Point) bool {
	if f.radius > 0 {
		return geo.Distance(f.center, point) <= f.radius
	}

	return planar.PolygonContains(f.polygon, point)
}

type stateKey struct {
	groupID string
	fenceID string
	userID  string
}

type detector struct {
	fences     []*fence
	dispatcher service.EventDispatcher
	logger     *slog.Logger

	mu     sync.Mutex
	inside map[stateKey]bool
}

// noopDetector is used when the detector is disabled; an external detector may
// still publish through the HTTP surface.
type noopDetector struct{}

func (noopDetector) Observe(context.Context, string, string, float64, float64, time.Time) {}

// DetectorParams holds dependencies for the detector, injected by Fx.
type DetectorParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher service.EventDispatcher
}

// NewDetector compiles the configured fences. Returns a no-op detector when
// geofencing is disabled or no fences are declared.
func NewDetector(params DetectorParams) service.BoundaryDetector {
	cfg := params.Config.Geofence
	if cfg == nil || !cfg.Enabled || len(cfg.Fences) == 0 {
		params.Logger.Info("Geofence detector disabled")

		return noopDetector{}
	}

	fences := make([]*fence, 0, len(cfg.Fences))
	for _, fc := range cfg.Fences {
		compiled := compileFence(fc)
		if compiled == nil {
			params.Logger.Warn("Skipping fence without geometry", slog.String("fence_id", fc.ID))

			continue
		}
		fences = append(fences, compiled)
	}

	params.Logger.Info("Geofence detector enabled", slog.Int("fences", len(fences)))

	return &detector{
		fences:     fences,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
		inside:     make(map[stateKey]bool),
	}
}

func compileFence(fc config.FenceConfig) *fence {
	if fc.Circle != nil {
		return &fence{
			id:     fc.ID,
			center: orb.Point{fc.Circle.Longitude, fc.Circle.Latitude},
			radius: fc.Circle.RadiusMeters,
		}
	}

	if len(fc.Polygon) >= 3 {
		ring := make(orb.Ring, 0, len(fc.Polygon)+1)
		for _, pt := range fc.Polygon {
			ring = append(ring, orb.Point{pt.Longitude, pt.Latitude})
		}
		// Close the ring if the config leaves it open.
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		return &fence{id: fc.ID, polygon: orb.Polygon{ring}}
	}

	return nil
}

// Observe evaluates the sample against every fence and publishes one event per
// transition. A user never seen before counts as outside, so the first sample
// inside a fence emits ENTER.
func (d *detector) Observe(ctx context.Context, groupID, userID string, lat, lng float64, at time.Time) {
	point := orb.Point{lng, lat}

	for _, f := range d.fences {
		in := f.contains(point)
		key := stateKey{groupID: groupID, fenceID: f.id, userID: userID}

		d.mu.Lock()
		was := d.inside[key]
		d.inside[key] = in
		d.mu.Unlock()

		if in == was {
			continue
		}

		eventType := entity.GeofenceEnter
		if !in {
			eventType = entity.GeofenceExit
		}

		event := &entity.GeofenceEvent{
			ID:      uuid.New(),
			Type:    eventType,
			FenceID: f.id,
			UserID:  userID,
			At:      at,
		}
		if err := d.dispatcher.Publish(ctx, groupID, event); err != nil {
			d.logger.Warn("Failed to publish geofence event",
				slog.String("fence_id", f.id),
				slog.Any("error", err),
			)
		}
	}
}
