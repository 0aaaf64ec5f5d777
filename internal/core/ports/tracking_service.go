package ports

import (
	"context"
	"time"
)

// TrackEvent is a single entry in the public tracking timeline.
type TrackEvent struct {
	Time       time.Time
	Status     string
	Location   string // empty = unknown
	Message    string
	TrackingNo string
	CreatedAt  *time.Time
}

// PackageSummary describes the shipment's current derived state.
type PackageSummary struct {
	Tracking  string
	Courier   string
	Status    string
	Location  string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// TrackingView is the full public tracking response: a package summary and
// the event timeline, sorted most recent first.
type TrackingView struct {
	Package PackageSummary
	Events  []TrackEvent
}

// TrackingService resolves a tracking number into its public view.
type TrackingService interface {
	Track(ctx context.Context, trackingNo string) (*TrackingView, error)
}
