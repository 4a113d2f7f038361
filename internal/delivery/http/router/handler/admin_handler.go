package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"reliefmap/internal/delivery/http/response"
	"reliefmap/internal/domain/entity"
	"reliefmap/internal/domain/repository"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for moderation and account administration.
type AdminHandler struct {
	moderationUC usecase.ModerationUsecase
	adminUC      usecase.AdminUsecase
	auditRepo    repository.AuditLogRepository
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	moderationUC usecase.ModerationUsecase,
	adminUC usecase.AdminUsecase,
	auditRepo repository.AuditLogRepository,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		moderationUC: moderationUC,
		adminUC:      adminUC,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// SetVerifiedRequest moves a point between Pending and Verified.
type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

// SetStatusRequest sets an explicit operational status.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetVerified handles approving or revoking a point's verification.
func (h *AdminHandler) SetVerified(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	var req SetVerifiedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	point, err := h.moderationUC.SetVerified(c.Request().Context(), userID, pointID, req.Verified)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "Verification updated successfully")
}

// ToggleStatus handles flipping a point between Open and Closed.
func (h *AdminHandler) ToggleStatus(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	point, err := h.moderationUC.ToggleStatus(c.Request().Context(), userID, pointID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "Status toggled successfully")
}

// SetStatus handles setting an explicit operational status.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Status is required")
	}

	point, err := h.moderationUC.SetStatus(c.Request().Context(), userID, pointID, entity.PointStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "Status updated successfully")
}

// RegisterAdmin handles creating a new administrative account.
func (h *AdminHandler) RegisterAdmin(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	// Echo leaves the pointer nil when the request carries no body.
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body is required")
	}

	admin, err := h.adminUC.RegisterAdmin(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Never echo the password hash back.
	return response.Success(c, http.StatusCreated, map[string]string{
		"user_id": admin.UserID.String(),
		"email":   admin.Email,
		"role":    admin.Role.String(),
	}, "Admin account created successfully")
}

// ListAuditLogs handles the administrative activity log view.
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid limit parameter")
		}
		limit = parsed
	}

	logs, err := h.auditRepo.ListRecent(c.Request().Context(), limit, c.QueryParam("action"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "Audit logs retrieved successfully")
}
