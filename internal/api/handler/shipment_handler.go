package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/parceldesk/shipment-api/internal/api/metrics"
	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for booking and listing shipments.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Book a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      createShipmentRequest  true  "Shipment details in either the nested parcel or the legacy weightKg/dims shape"
// @Success      200   {object}  createShipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req))
	if err != nil {
		metrics.ShipmentCreateFailuresTotal.WithLabelValues(createFailureReason(err)).Inc()
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(carrierLabel(req.Carrier)).Inc()
	return c.JSON(http.StatusOK, createShipmentResponse{OK: true, ID: result.ID})
}

// List handles GET /v1/shipments — the most recently created shipments,
// newest first, capped at 50.
//
// @Summary      List recent shipments
// @Tags         shipments
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows (capped at 50)"
// @Success      200    {object}  listShipmentsResponse
// @Failure      500    {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	shipments, err := h.service.ListShipments(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(shipments))
}

func createFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAddress):
		return "missing_address"
	case errors.Is(err, domain.ErrInvalidParcel):
		return "invalid_parcel"
	}
	return "storage"
}

func carrierLabel(carrier string) string {
	if carrier == "" {
		return "unknown"
	}
	return carrier
}
