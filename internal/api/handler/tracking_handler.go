package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parceldesk/shipment-api/internal/api/metrics"
	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// TrackingHandler handles public tracking lookups.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /v1/track?trackingNo=<id>. The shorter ?tracking=<id>
// spelling is accepted for compatibility with older tracking links.
//
// @Summary      Track a shipment by its tracking number
// @Tags         tracking
// @Produce      json
// @Param        trackingNo  query     string  true  "Tracking number (the shipment identifier)"
// @Success      200         {object}  trackResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /v1/track [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	// Live tracking must never be served stale by an intermediary cache.
	c.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")

	trackingNo := strings.TrimSpace(c.QueryParam("trackingNo"))
	if trackingNo == "" {
		trackingNo = strings.TrimSpace(c.QueryParam("tracking"))
	}

	view, err := h.service.Track(c.Request().Context(), trackingNo)
	if err != nil {
		metrics.TrackingLookupsTotal.WithLabelValues(lookupResult(err)).Inc()
		return err
	}

	metrics.TrackingLookupsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toTrackResponse(view))
}

func lookupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingTrackingNo):
		return "missing_tracking_no"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "not_found"
	}
	return "error"
}
