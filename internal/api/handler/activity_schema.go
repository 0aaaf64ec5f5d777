package handler

import "time"

// activityEventRequest carries one raw activity event. Everything but the
// tracking number is optional; message and note are alternate spellings of
// the same field, message preferred.
type activityEventRequest struct {
	TrackingNo string     `json:"trackingNo" validate:"required"`
	Status     string     `json:"status"`
	Location   string     `json:"location"`
	Message    string     `json:"message"`
	Note       string     `json:"note"`
	Time       *time.Time `json:"time"`
}

type acceptedResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
