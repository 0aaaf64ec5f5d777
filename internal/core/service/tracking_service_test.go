package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/parceldesk/shipment-api/internal/core/domain"
)

var frozenNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTrackingService(repo *stubShipmentRepo) *TrackingService {
	svc := NewTrackingService(repo, discardLogger)
	svc.now = func() time.Time { return frozenNow }
	return svc
}

func seedShipment(repo *stubShipmentRepo, id string, s domain.Shipment) *domain.Shipment {
	s.ID = id
	repo.byID[id] = &s
	repo.order = append(repo.order, id)
	return repo.byID[id]
}

func TestTracking_MissingTrackingNo(t *testing.T) {
	svc := newTrackingService(newStubShipmentRepo())
	_, err := svc.Track(context.Background(), "")
	if !errors.Is(err, domain.ErrMissingTrackingNo) {
		t.Errorf("want ErrMissingTrackingNo, got %v", err)
	}
}

func TestTracking_NotFound(t *testing.T) {
	svc := newTrackingService(newStubShipmentRepo())
	_, err := svc.Track(context.Background(), "ship_9999")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("want ErrShipmentNotFound, got %v", err)
	}
}

func TestTracking_SyntheticCreatedEvent(t *testing.T) {
	repo := newStubShipmentRepo()
	created := frozenNow.Add(-48 * time.Hour)
	seedShipment(repo, "ship_0001", domain.Shipment{
		To:        domain.Address{Line1: "2 Side St", City: "Dubai", Country: "AE"},
		CreatedAt: created,
		UpdatedAt: created,
	})
	svc := newTrackingService(repo)

	view, err := svc.Track(context.Background(), "ship_0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Events) != 1 {
		t.Fatalf("expected exactly the synthetic event, got %d", len(view.Events))
	}

	ev := view.Events[0]
	if !ev.Time.Equal(created) {
		t.Errorf("event time: want %v, got %v", created, ev.Time)
	}
	if ev.Status != domain.DisplayPending {
		t.Errorf("absent status must classify as Pending, got %q", ev.Status)
	}
	if ev.Location != "Dubai, AE" {
		t.Errorf("location: want %q, got %q", "Dubai, AE", ev.Location)
	}
	if ev.Message != "Shipment created" {
		t.Errorf("message: want %q, got %q", "Shipment created", ev.Message)
	}
	if ev.TrackingNo != "ship_0001" {
		t.Errorf("trackingNo: want ship_0001, got %q", ev.TrackingNo)
	}
}

func TestTracking_CreatedEventDefaultsToNow(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, "ship_0002", domain.Shipment{
		To: domain.Address{City: "Dubai", Country: "AE"},
	})
	svc := newTrackingService(repo)

	view, err := svc.Track(context.Background(), "ship_0002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Events[0].Time.Equal(frozenNow) {
		t.Errorf("missing createdAt must default to now, got %v", view.Events[0].Time)
	}
	if view.Package.CreatedAt != nil {
		t.Error("package createdAt must be absent when the record has none")
	}
}

func TestTracking_LocationRequiresCityAndCountry(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, "ship_0003", domain.Shipment{
		To:        domain.Address{City: "Dubai"}, // no country
		CreatedAt: frozenNow,
	})
	svc := newTrackingService(repo)

	view, _ := svc.Track(context.Background(), "ship_0003")
	if view.Events[0].Location != "" {
		t.Errorf("location must be absent without both city and country, got %q", view.Events[0].Location)
	}
	if view.Package.Location != "" {
		t.Errorf("package location must be absent, got %q", view.Package.Location)
	}
}

func TestTracking_ActivityTimeFallbackChain(t *testing.T) {
	repo := newStubShipmentRepo()
	parent := frozenNow.Add(-72 * time.Hour)
	entryTime := frozenNow.Add(-10 * time.Hour)
	entryCreated := frozenNow.Add(-20 * time.Hour)

	seedShipment(repo, "ship_0004", domain.Shipment{
		CreatedAt: parent,
		Activity: []domain.ActivityEntry{
			{Time: &entryTime, CreatedAt: &entryCreated, Status: "in transit"},
			{CreatedAt: &entryCreated, Status: "in transit"},
			{Status: "in transit"},
		},
	})
	svc := newTrackingService(repo)

	view, err := svc.Track(context.Background(), "ship_0004")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[time.Time]int)
	for _, ev := range view.Events {
		got[ev.Time]++
	}
	if got[entryTime] != 1 {
		t.Error("entry time must win when present")
	}
	if got[entryCreated] != 1 {
		t.Error("entry createdAt must be used when time is absent")
	}
	// Synthetic created event and the bare entry both resolve to the
	// shipment's createdAt.
	if got[parent] != 2 {
		t.Errorf("bare entry must fall back to the shipment createdAt, got %v", got)
	}
}

func TestTracking_ActivityFallsBackToNow(t *testing.T) {
	repo := newStubShipmentRepo()
	seedShipment(repo, "ship_0005", domain.Shipment{
		Activity: []domain.ActivityEntry{{Status: "in transit"}},
	})
	svc := newTrackingService(repo)

	view, _ := svc.Track(context.Background(), "ship_0005")
	for _, ev := range view.Events {
		if !ev.Time.Equal(frozenNow) {
			t.Errorf("with no timestamps anywhere, events default to now; got %v", ev.Time)
		}
	}
}

func TestTracking_EventsSortedDescending(t *testing.T) {
	repo := newStubShipmentRepo()
	t0 := frozenNow.Add(-24 * time.Hour)
	t1 := t0.Add(-1 * time.Hour) // before creation — still honored
	t2 := t0.Add(+3 * time.Hour)

	seedShipment(repo, "ship_0006", domain.Shipment{
		CreatedAt: t0,
		Activity: []domain.ActivityEntry{
			{Time: &t1, Status: "label"},
			{Time: &t2, Status: "in transit"},
		},
	})
	svc := newTrackingService(repo)

	view, err := svc.Track(context.Background(), "ship_0006")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Time{t2, t0, t1}
	if len(view.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(view.Events))
	}
	for i, w := range want {
		if !view.Events[i].Time.Equal(w) {
			t.Errorf("events[%d].Time = %v, want %v", i, view.Events[i].Time, w)
		}
	}
}

func TestTracking_MessageFallsBackToNote(t *testing.T) {
	repo := newStubShipmentRepo()
	ts := frozenNow.Add(-1 * time.Hour)
	seedShipment(repo, "ship_0007", domain.Shipment{
		CreatedAt: frozenNow.Add(-2 * time.Hour),
		Activity: []domain.ActivityEntry{
			{Time: &ts, Message: "scanned at hub", Note: "ignored"},
			{Time: &ts, Note: "left at door"},
		},
	})
	svc := newTrackingService(repo)

	view, _ := svc.Track(context.Background(), "ship_0007")
	msgs := map[string]bool{}
	for _, ev := range view.Events {
		msgs[ev.Message] = true
	}
	if !msgs["scanned at hub"] {
		t.Error("message must win over note")
	}
	if !msgs["left at door"] {
		t.Error("note must be used when message is absent")
	}
	if msgs["ignored"] {
		t.Error("note must not leak when message is present")
	}
}

func TestTracking_PackageSummary(t *testing.T) {
	repo := newStubShipmentRepo()
	created := frozenNow.Add(-30 * time.Hour)
	updated := frozenNow.Add(-2 * time.Hour)
	seedShipment(repo, "ship_0008", domain.Shipment{
		To:        domain.Address{City: "Abu Dhabi", Country: "AE"},
		Carrier:   "aramex",
		Status:    "out for delivery",
		CreatedAt: created,
		UpdatedAt: updated,
	})
	svc := newTrackingService(repo)

	view, err := svc.Track(context.Background(), "ship_0008")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pkg := view.Package
	if pkg.Tracking != "ship_0008" {
		t.Errorf("tracking: got %q", pkg.Tracking)
	}
	if pkg.Courier != "aramex" {
		t.Errorf("courier: got %q", pkg.Courier)
	}
	if pkg.Status != domain.DisplayOutForDelivery {
		t.Errorf("status: got %q", pkg.Status)
	}
	if pkg.Location != "Abu Dhabi, AE" {
		t.Errorf("location: got %q", pkg.Location)
	}
	if pkg.CreatedAt == nil || !pkg.CreatedAt.Equal(created) {
		t.Errorf("createdAt: got %v", pkg.CreatedAt)
	}
	if pkg.UpdatedAt == nil || !pkg.UpdatedAt.Equal(updated) {
		t.Errorf("updatedAt: got %v", pkg.UpdatedAt)
	}
}

func TestTracking_Idempotent(t *testing.T) {
	repo := newStubShipmentRepo()
	ts := frozenNow.Add(-5 * time.Hour)
	seedShipment(repo, "ship_0009", domain.Shipment{
		To:        domain.Address{City: "Dubai", Country: "AE"},
		Status:    "in transit",
		CreatedAt: frozenNow.Add(-10 * time.Hour),
		UpdatedAt: ts,
		Activity:  []domain.ActivityEntry{{Time: &ts, Status: "in transit", Location: "Hub 4"}},
	})
	svc := newTrackingService(repo)

	first, err := svc.Track(context.Background(), "ship_0009")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Track(context.Background(), "ship_0009")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("tracking must be a pure function of the stored record")
	}
}
