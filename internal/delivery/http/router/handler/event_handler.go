package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"huddle/internal/delivery/http/response"
	"huddle/internal/dispatch"
	"huddle/internal/domain/entity"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// sseHeartbeatInterval keeps idle subscriptions alive through proxies.
const sseHeartbeatInterval = 30 * time.Second

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	Hub        *dispatch.Hub
	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// EventHandler serves the geofence event fan-out: the SSE push channel, the
// publish entry point and the bounded display feed.
type EventHandler struct {
	hub        *dispatch.Hub
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		hub:        params.Hub,
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// PublishEventRequest represents one boundary-crossing event handed in by a
// boundary detector
type PublishEventRequest struct {
	Type    string    `json:"type" validate:"required,oneof=ENTER EXIT"`
	FenceID string    `json:"fence_id" validate:"required"`
	UserID  string    `json:"user_id" validate:"required"`
	At      time.Time `json:"at"`
}

// Publish accepts an event from an external boundary detector and fans it out
// to the group's current subscribers. Delivery is at-most-once; no receipt is
// reported back to the detector.
func (h *EventHandler) Publish(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	var req PublishEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	// Reject events for unknown groups so typos do not fan out into silence
	if _, err := h.registryUC.GetGroup(c.Request().Context(), groupID); err != nil {
		return handleAppError(c, err)
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}

	event := &entity.GeofenceEvent{
		Type:    entity.GeofenceEventType(req.Type),
		FenceID: req.FenceID,
		UserID:  req.UserID,
		At:      at,
	}

	if err := h.hub.Publish(c.Request().Context(), groupID, event); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"event_id": event.ID.String()}, "Event published")
}

// Subscribe streams the group's geofence events to the caller over SSE. The
// subscription lives exactly as long as the request; a disconnect is a gap and
// the caller resubscribes without replay.
func (h *EventHandler) Subscribe(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	if _, err := h.registryUC.GetGroup(c.Request().Context(), groupID); err != nil {
		return handleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	sub := h.hub.Subscribe(groupID)
	defer sub.Close()

	ctx := c.Request().Context()
	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()

		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to encode geofence event",
					slog.String("group_id", groupID),
					slog.Any("error", err),
				)

				continue
			}

			if _, err := fmt.Fprintf(res, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// Feed returns the group's bounded newest-first display feed
func (h *EventHandler) Feed(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	if _, err := h.registryUC.GetGroup(c.Request().Context(), groupID); err != nil {
		return handleAppError(c, err)
	}

	entries := h.hub.Feed(groupID).Entries()

	return response.Success(c, http.StatusOK, entries, "Feed retrieved successfully")
}

// DismissFeedEntry removes one entry from the group's display feed
func (h *EventHandler) DismissFeedEntry(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	entryID, err := uuid.Parse(c.Param("entryID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid feed entry ID")
	}

	if !h.hub.Feed(groupID).Dismiss(entryID) {
		return response.NotFound(c, "ENTRY_NOT_FOUND", "Feed entry not found")
	}

	return response.Success(c, http.StatusOK, map[string]string{"entry_id": entryID.String()}, "Feed entry dismissed")
}
