package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/delivery/http/middleware"
	"huddle/internal/delivery/http/response"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// GroupHandler holds dependencies for group registry handlers
type GroupHandler struct {
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		registryUC: params.RegistryUC,
		logger:     params.Logger,
	}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	DisplayName       string `json:"display_name" validate:"required,max=120"`
	MemberDisplayName string `json:"member_display_name" validate:"max=120"`
}

// JoinGroupRequest represents the request body for joining a group
type JoinGroupRequest struct {
	DisplayName string `json:"display_name" validate:"max=120"`
}

// CreateGroup handles creating a new group with a generated join code
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateGroupInput{
		DisplayName:       req.DisplayName,
		MemberDisplayName: req.MemberDisplayName,
	}

	group, err := h.registryUC.CreateGroup(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, group, "Group created successfully")
}

// JoinGroup handles joining an existing group by its join code
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	var req JoinGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.JoinGroupInput{
		DisplayName: req.DisplayName,
	}

	group, err := h.registryUC.JoinGroup(c.Request().Context(), userID, groupID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Group joined successfully")
}

// GetGroup handles retrieving a group by its join code
func (h *GroupHandler) GetGroup(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	group, err := h.registryUC.GetGroup(c.Request().Context(), groupID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Group retrieved successfully")
}

// ListMembers handles retrieving the group's membership roster
func (h *GroupHandler) ListMembers(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	members, err := h.registryUC.ListMembers(c.Request().Context(), groupID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved successfully")
}

// GroupInviteQR renders the group's join code as a QR code PNG
func (h *GroupHandler) GroupInviteQR(c echo.Context) error {
	groupID := c.Param("groupID")
	if groupID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing group code")
	}

	png, err := h.registryUC.GroupInviteQR(c.Request().Context(), groupID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (string, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError hands AppErrors to the central error handler untouched
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return errors.WithStack(err)
}
