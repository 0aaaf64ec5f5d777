package handler

import (
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

func toTrackResponse(v *ports.TrackingView) trackResponse {
	events := make([]trackEventResponse, len(v.Events))
	for i, e := range v.Events {
		events[i] = trackEventResponse{
			Time:       e.Time.UTC(),
			Status:     e.Status,
			Location:   e.Location,
			Message:    e.Message,
			TrackingNo: e.TrackingNo,
			CreatedAt:  e.CreatedAt,
		}
	}
	return trackResponse{
		OK: true,
		Package: packageSummaryResponse{
			Tracking:  v.Package.Tracking,
			Courier:   v.Package.Courier,
			Status:    v.Package.Status,
			Location:  v.Package.Location,
			CreatedAt: v.Package.CreatedAt,
			UpdatedAt: v.Package.UpdatedAt,
		},
		Events: events,
	}
}
