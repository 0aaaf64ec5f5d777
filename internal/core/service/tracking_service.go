package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// createdMessage is the fixed message of the synthetic first event.
const createdMessage = "Shipment created"

// TrackingService builds the public tracking view for a shipment. It is
// read-only: tracking never mutates a record, so repeated calls over an
// unchanged shipment yield identical output.
type TrackingService struct {
	repo   ports.ShipmentRepository
	logger zerolog.Logger

	// now is used whenever a missing timestamp must be defaulted.
	// Overridden in tests.
	now func() time.Time
}

func NewTrackingService(repo ports.ShipmentRepository, logger zerolog.Logger) *TrackingService {
	return &TrackingService{repo: repo, logger: logger, now: time.Now}
}

// Track resolves a tracking number into its package summary and event
// timeline. Returns domain.ErrMissingTrackingNo for empty input and
// domain.ErrShipmentNotFound when the identifier matches nothing.
func (s *TrackingService) Track(ctx context.Context, trackingNo string) (*ports.TrackingView, error) {
	if trackingNo == "" {
		return nil, domain.ErrMissingTrackingNo
	}

	shipment, err := s.repo.FindByID(ctx, trackingNo)
	if err != nil {
		return nil, err
	}

	return s.buildView(shipment, trackingNo), nil
}

// buildView derives the tracking view from an already-fetched record. Pure
// transformation: no storage calls, no mutation of the shipment.
func (s *TrackingService) buildView(shipment *domain.Shipment, trackingNo string) *ports.TrackingView {
	events := make([]ports.TrackEvent, 0, len(shipment.Activity)+1)

	// Synthetic base event marking the booking itself.
	createdTime := shipment.CreatedAt
	if createdTime.IsZero() {
		createdTime = s.now()
	}
	events = append(events, ports.TrackEvent{
		Time:       createdTime,
		Status:     domain.ClassifyStatus(shipment.Status),
		Location:   destinationLocation(shipment.To),
		Message:    createdMessage,
		TrackingNo: trackingNo,
		CreatedAt:  optionalTime(shipment.CreatedAt),
	})

	for _, act := range shipment.Activity {
		events = append(events, ports.TrackEvent{
			Time:       activityTime(act, shipment.CreatedAt, s.now),
			Status:     domain.ClassifyStatus(act.Status),
			Location:   act.Location,
			Message:    activityMessage(act),
			TrackingNo: trackingNo,
			CreatedAt:  act.CreatedAt,
		})
	}

	// Most recent first. Hard postcondition: the tracking page renders the
	// timeline in response order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.After(events[j].Time)
	})

	return &ports.TrackingView{
		Package: ports.PackageSummary{
			Tracking:  trackingNo,
			Courier:   shipment.Carrier,
			Status:    domain.ClassifyStatus(shipment.Status),
			Location:  destinationLocation(shipment.To),
			CreatedAt: optionalTime(shipment.CreatedAt),
			UpdatedAt: optionalTime(shipment.UpdatedAt),
		},
		Events: events,
	}
}

// activityTime resolves an entry's timestamp through the documented
// fallback chain: entry time, entry createdAt, shipment createdAt, now.
func activityTime(act domain.ActivityEntry, parentCreated time.Time, now func() time.Time) time.Time {
	switch {
	case act.Time != nil:
		return *act.Time
	case act.CreatedAt != nil:
		return *act.CreatedAt
	case !parentCreated.IsZero():
		return parentCreated
	}
	return now()
}

// activityMessage prefers message over the older note field.
func activityMessage(act domain.ActivityEntry) string {
	if act.Message != "" {
		return act.Message
	}
	return act.Note
}

// destinationLocation renders "{city}, {country}" when both are present on
// the destination address, empty otherwise.
func destinationLocation(to domain.Address) string {
	if to.City != "" && to.Country != "" {
		return to.City + ", " + to.Country
	}
	return ""
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
