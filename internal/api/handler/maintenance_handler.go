package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

type createMaintenanceRequest struct {
	UnitID   string `json:"unit_id"  validate:"required"`
	Issue    string `json:"issue"    validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

// List handles GET /api/maintenance.
//
// @Summary      List maintenance requests
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.MaintenanceRequest
// @Failure      401  {object}  map[string]string
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []domain.MaintenanceRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /api/maintenance. New requests always open as "open".
//
// @Summary      Create a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaintenanceRequest  true  "Request details"
// @Success      201   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  map[string]string
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	var req createMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateMaintenanceInput{
		UnitID:   req.UnitID,
		Issue:    req.Issue,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}

	metrics.MaintenanceCreatedTotal.WithLabelValues(created.Priority).Inc()
	return c.JSON(http.StatusCreated, created)
}
