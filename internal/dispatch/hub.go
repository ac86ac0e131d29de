// Package dispatch implements the per-group fan-out of geofence events.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/feed"

	deliverycontext "huddle/internal/delivery/context"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Hub fans published events out to every open subscription for a group.
// Delivery is at-most-once: there is no backlog, and a subscriber whose buffer
// is full at publish time loses the event rather than blocking the publisher.
type Hub struct {
	logger   *slog.Logger
	bridge   service.EventPublisher // optional cross-instance forward, may be nil
	bufSize  int
	feedSize int

	mu     sync.Mutex
	groups map[string]map[*subscription]struct{}
	feeds  map[string]*feed.Feed
}

type subscription struct {
	hub     *Hub
	groupID string
	ch      chan *entity.GeofenceEvent
	once    sync.Once
}

// Events implements service.Subscription.
func (s *subscription) Events() <-chan *entity.GeofenceEvent {
	return s.ch
}

// Close removes the fan-out registration and closes the channel. Idempotent.
func (s *subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Bridge service.EventPublisher `optional:"true"`
}

// NewHub creates the fan-out hub.
func NewHub(params HubParams) *Hub {
	return &Hub{
		logger:   params.Logger,
		bridge:   params.Bridge,
		bufSize:  params.Config.Presence.EventBufferSize,
		feedSize: params.Config.Presence.EventFeedSize,
		groups:   make(map[string]map[*subscription]struct{}),
		feeds:    make(map[string]*feed.Feed),
	}
}

// AsEventDispatcher exposes the hub under its domain interface for injection.
func AsEventDispatcher(h *Hub) service.EventDispatcher {
	return h
}

// Subscribe registers a new subscription for the group. Every concurrent
// subscriber receives its own copy of each event published afterwards.
func (h *Hub) Subscribe(groupID string) service.Subscription {
	sub := &subscription{
		hub:     h,
		groupID: groupID,
		ch:      make(chan *entity.GeofenceEvent, h.bufSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.groups[groupID]
	if !ok {
		subs = make(map[*subscription]struct{})
		h.groups[groupID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Publish delivers the event to every subscription currently open for the
// group and forwards it to the cross-instance bridge when one is configured.
// A nil or invalid event is rejected; a bridge failure is logged but does not
// fail local delivery.
func (h *Hub) Publish(ctx context.Context, groupID string, event *entity.GeofenceEvent) error {
	if event == nil {
		return errors.New("nil geofence event")
	}
	if !event.Type.Valid() {
		return errors.Errorf("unknown geofence event type: %s", event.Type)
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	h.mu.Lock()
	delivered, dropped := 0, 0
	for sub := range h.groups[groupID] {
		select {
		case sub.ch <- event:
			delivered++
		default:
			// Slow consumer; at-most-once delivery drops instead of blocking.
			dropped++
		}
	}
	groupFeed := h.feeds[groupID]
	h.mu.Unlock()

	if groupFeed != nil {
		groupFeed.Push(event)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Debug("Geofence event dispatched",
		slog.String("group_id", groupID),
		slog.String("fence_id", event.FenceID),
		slog.String("type", string(event.Type)),
		slog.Int("delivered", delivered),
		slog.Int("dropped", dropped),
	)

	if h.bridge != nil {
		msg := &service.GeofenceEventMessage{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			GroupID:   groupID,
			EventID:   event.ID.String(),
			Type:      string(event.Type),
			FenceID:   event.FenceID,
			UserID:    event.UserID,
			At:        event.At,
		}
		if err := h.bridge.PublishGeofenceEvent(ctx, msg); err != nil {
			logger.Warn("Cross-instance event forward failed",
				slog.String("group_id", groupID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// remove unregisters the subscription and closes its channel under the hub
// lock, so a concurrent Publish can never send on a closed channel.
func (h *Hub) remove(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.groups[sub.groupID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.groups, sub.groupID)
		}
	}
	close(sub.ch)
}

// Feed returns the group's bounded display feed, creating it on first use.
// Events published before the first call are not backfilled.
func (h *Hub) Feed(groupID string) *feed.Feed {
	h.mu.Lock()
	defer h.mu.Unlock()

	groupFeed, ok := h.feeds[groupID]
	if !ok {
		groupFeed = feed.New(h.feedSize)
		h.feeds[groupID] = groupFeed
	}

	return groupFeed
}

// Subscribers reports the number of open subscriptions for a group.
func (h *Hub) Subscribers(groupID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.groups[groupID])
}
