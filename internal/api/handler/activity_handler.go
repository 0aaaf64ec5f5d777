package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// ActivityDispatcher is the interface the handler uses to enqueue events.
type ActivityDispatcher interface {
	Enqueue(event ports.ActivityEventInput)
	EnqueueBatch(events []ports.ActivityEventInput)
}

// ActivityHandler handles activity event ingestion.
type ActivityHandler struct {
	dispatcher ActivityDispatcher
}

// NewActivityHandler creates an ActivityHandler backed by the given
// dispatcher.
func NewActivityHandler(dispatcher ActivityDispatcher) *ActivityHandler {
	return &ActivityHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/events — enqueues a single event, returns 202.
//
// @Summary      Ingest a single activity event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      activityEventRequest  true  "Activity event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/events [post]
func (h *ActivityHandler) Receive(c echo.Context) error {
	var req activityEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.dispatcher.Enqueue(toActivityInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{OK: true, Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/events/batch — enqueues a batch of events,
// returns 202.
//
// @Summary      Ingest a batch of activity events
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      []activityEventRequest  true  "Array of activity events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/events/batch [post]
func (h *ActivityHandler) ReceiveBatch(c echo.Context) error {
	var reqs []activityEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.ActivityEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toActivityInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		OK:      true,
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toActivityInput maps the HTTP request to the service DTO.
func toActivityInput(r activityEventRequest) ports.ActivityEventInput {
	return ports.ActivityEventInput{
		TrackingNo: r.TrackingNo,
		Status:     r.Status,
		Location:   r.Location,
		Message:    r.Message,
		Note:       r.Note,
		Time:       r.Time,
	}
}
