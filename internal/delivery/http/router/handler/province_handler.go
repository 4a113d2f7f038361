package handler

import (
	"net/http"

	"reliefmap/internal/delivery/http/response"
	"reliefmap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProvinceHandler serves the static province directory.
type ProvinceHandler struct {
	uc usecase.ProvinceUsecase
}

// NewProvinceHandler is the constructor for ProvinceHandler, injected by Fx.
func NewProvinceHandler(uc usecase.ProvinceUsecase) *ProvinceHandler {
	return &ProvinceHandler{uc: uc}
}

// Search handles province lookup by name, optionally narrowed by unit type.
func (h *ProvinceHandler) Search(c echo.Context) error {
	provinces := h.uc.SearchProvinces(c.QueryParam("q"), c.QueryParam("type"))

	return response.Success(c, http.StatusOK, provinces, "Provinces retrieved successfully")
}

// Stats handles the per-type province counts the filter UI displays.
func (h *ProvinceHandler) Stats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ProvinceStats(), "Province stats retrieved successfully")
}
