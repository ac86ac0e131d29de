package handler

import (
	"log/slog"
	"net/http"
	"time"

	"huddle/internal/delivery/http/response"
	"huddle/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
	Logger     *slog.Logger
}

// PresenceHandler holds dependencies for location ingestion and snapshot handlers
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
	logger     *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: params.PresenceUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents one device location sample.
// Coordinate bounds are enforced again in the usecase; the tags reject the
// plainly malformed payloads before they reach it.
type ReportLocationRequest struct {
	Latitude        float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude       float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy        float64   `json:"accuracy" validate:"min=0"`
	Status          string    `json:"status"`
	ClientTimestamp time.Time `json:"client_timestamp"`
}

// SetStatusRequest represents a status-only update
type SetStatusRequest struct {
	Status string `json:"status"`
}

// ReportLocation handles one location report for the calling member
func (h *PresenceHandler) ReportLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.ReportLocationInput{
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Accuracy:        req.Accuracy,
		Status:          req.Status,
		ClientTimestamp: req.ClientTimestamp,
	}

	record, err := h.presenceUC.ReportLocation(c.Request().Context(), groupID, userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Location reported successfully")
}

// SetStatus updates only the caller's status string on the live record
func (h *PresenceHandler) SetStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	record, err := h.presenceUC.SetStatus(c.Request().Context(), groupID, userID, req.Status)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Status updated successfully")
}

// GroupSnapshot returns the group's non-expired presence records
func (h *PresenceHandler) GroupSnapshot(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	snapshot, err := h.presenceUC.GroupSnapshot(c.Request().Context(), groupID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Snapshot retrieved successfully")
}
