package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/parceldesk/shipment-api/internal/core/ports"
)

type stubDispatcher struct {
	enqueued []ports.ActivityEventInput
}

func (d *stubDispatcher) Enqueue(event ports.ActivityEventInput) {
	d.enqueued = append(d.enqueued, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.ActivityEventInput) {
	d.enqueued = append(d.enqueued, events...)
}

func TestActivityHandler_Receive(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewActivityHandler(dispatcher)

	body := `{
		"trackingNo": "ship_0001",
		"status": "in transit",
		"location": "Hub 4",
		"message": "departed facility",
		"time": "2026-03-01T09:00:00Z"
	}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/events", body)

	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued event, got %d", len(dispatcher.enqueued))
	}

	ev := dispatcher.enqueued[0]
	if ev.TrackingNo != "ship_0001" || ev.Status != "in transit" || ev.Location != "Hub 4" {
		t.Errorf("event not mapped: %+v", ev)
	}
	if ev.Time == nil {
		t.Error("event time must be mapped")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true {
		t.Errorf("expected ok=true, got %v", resp["ok"])
	}
}

func TestActivityHandler_Receive_MissingTrackingNo(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewActivityHandler(dispatcher)

	c, _ := newTestContext(t, http.MethodPost, "/v1/events", `{"status": "in transit"}`)
	err := h.Receive(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Error("invalid event must not be enqueued")
	}
}

func TestActivityHandler_ReceiveBatch(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewActivityHandler(dispatcher)

	body := `[
		{"trackingNo": "ship_0001", "status": "in transit"},
		{"trackingNo": "ship_0002", "status": "delivered"}
	]`
	c, rec := newTestContext(t, http.MethodPost, "/v1/events/batch", body)

	if err := h.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 2 {
		t.Fatalf("expected 2 enqueued events, got %d", len(dispatcher.enqueued))
	}

	var resp struct {
		OK    bool `json:"ok"`
		Count int  `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.OK || resp.Count != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestActivityHandler_ReceiveBatch_Empty(t *testing.T) {
	h := NewActivityHandler(&stubDispatcher{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/events/batch", `[]`)
	err := h.ReceiveBatch(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 HTTPError, got %v", err)
	}
}

func TestActivityHandler_ReceiveBatch_InvalidItemRejectsWhole(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewActivityHandler(dispatcher)

	body := `[
		{"trackingNo": "ship_0001", "status": "in transit"},
		{"status": "missing tracking number"}
	]`
	c, _ := newTestContext(t, http.MethodPost, "/v1/events/batch", body)
	err := h.ReceiveBatch(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Error("a batch with an invalid item must not be partially enqueued")
	}
}
