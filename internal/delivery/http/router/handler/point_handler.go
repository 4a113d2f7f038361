// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"reliefmap/internal/delivery/http/response"
	"reliefmap/internal/domain/entity"
	domainerrors "reliefmap/internal/domain/errors"
	"reliefmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PointHandler holds dependencies for relief point handlers.
type PointHandler struct {
	uc     usecase.PointUsecase
	logger *slog.Logger
}

// NewPointHandler is the constructor for PointHandler, injected by Fx.
func NewPointHandler(uc usecase.PointUsecase, logger *slog.Logger) *PointHandler {
	return &PointHandler{uc: uc, logger: logger}
}

// SubmitPointRequest is the public crowdsourced submission payload.
type SubmitPointRequest struct {
	Address     string `json:"address" validate:"required"`
	FacebookURL string `json:"facebook_url"`
	Phone       string `json:"phone"`
}

// ListVisible handles the public listing. Filtering is expressed through
// query parameters: either ?province=... or ?lat=...&lng=...&radius=...,
// with no parameters listing everything visible.
func (h *PointHandler) ListVisible(c echo.Context) error {
	// Clients that failed to acquire a position for a nearby query report
	// the failure kind instead of coordinates.
	if kind := c.QueryParam("geo_error"); kind != "" {
		return domainerrors.TranslateGeoFailure(kind)
	}

	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	points, err := h.uc.ListVisible(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "Relief points retrieved successfully")
}

// SubmitPoint handles an anonymous crowdsourced submission.
func (h *PointHandler) SubmitPoint(c echo.Context) error {
	var req SubmitPointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Địa chỉ là bắt buộc")
	}

	point, err := h.uc.SubmitPoint(c.Request().Context(), &usecase.SubmitPointInput{
		Address:     req.Address,
		FacebookURL: req.FacebookURL,
		Phone:       req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, point, "Submission received, pending review")
}

// ListAll handles the administrative listing over every point.
func (h *PointHandler) ListAll(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := usecase.ListAllInput{
		PendingOnly: c.QueryParam("pending") == "true",
		City:        c.QueryParam("city"),
	}

	points, err := h.uc.ListAll(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "Relief points retrieved successfully")
}

// CreatePoint handles administrative creation of a verified point.
func (h *PointHandler) CreatePoint(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreatePointInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}
	// Echo leaves the pointer nil when the request carries no body.
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body is required")
	}

	point, err := h.uc.CreatePoint(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, point, "Relief point created successfully")
}

// UpdatePoint handles a partial administrative edit.
func (h *PointHandler) UpdatePoint(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	var input *usecase.UpdatePointInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}
	if input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body is required")
	}

	point, err := h.uc.UpdatePoint(c.Request().Context(), userID, pointID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, point, "Relief point updated successfully")
}

// DeletePoint handles irreversible removal of a point.
func (h *PointHandler) DeletePoint(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pointID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid point ID")
	}

	if err := h.uc.DeletePoint(c.Request().Context(), userID, pointID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": pointID.String()}, "Relief point deleted successfully")
}

// parseListFilter builds the listing filter from query parameters. Province
// and radius narrowing are mutually exclusive; province wins when both are
// present.
func parseListFilter(c echo.Context) (entity.Filter, error) {
	if province := c.QueryParam("province"); province != "" {
		return entity.ByProvince(province), nil
	}

	radiusParam := c.QueryParam("radius")
	if radiusParam == "" {
		return entity.NoFilter(), nil
	}

	radius, err := strconv.ParseFloat(radiusParam, 64)
	if err != nil {
		return entity.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid radius parameter")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return entity.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid lat parameter")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return entity.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid lng parameter")
	}

	return entity.ByRadius(orb.Point{lng, lat}, radius), nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
