package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	LeaseID     string    `json:"lease_id"     validate:"required"`
	Amount      float64   `json:"amount"       validate:"required,gt=0"`
	Status      string    `json:"status"       validate:"required,oneof=paid pending overdue"`
	PaymentDate time.Time `json:"payment_date"`
}

// List handles GET /api/payments, newest payments first.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  map[string]string
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return c.JSON(http.StatusOK, payments)
}

// Create handles POST /api/payments.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		LeaseID:     req.LeaseID,
		Amount:      req.Amount,
		Status:      req.Status,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}
