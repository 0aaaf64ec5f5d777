package ports

import (
	"context"
	"time"
)

// ActivityEventInput is the DTO passed from the transport layer to
// ActivityService. All fields except the tracking number are optional.
type ActivityEventInput struct {
	TrackingNo string
	Status     string
	Location   string
	Message    string
	Note       string
	Time       *time.Time
}

// ActivityService processes incoming activity events and appends them to
// the owning shipment's activity log.
type ActivityService interface {
	Process(ctx context.Context, event ActivityEventInput) error
}
