package handler

import "time"

// trackEventResponse is a single timeline entry. Optional fields are
// omitted rather than rendered as null.
type trackEventResponse struct {
	Time       time.Time  `json:"time"`
	Status     string     `json:"status,omitempty"`
	Location   string     `json:"location,omitempty"`
	Message    string     `json:"message,omitempty"`
	TrackingNo string     `json:"trackingNo,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

type packageSummaryResponse struct {
	Tracking  string     `json:"tracking"`
	Courier   string     `json:"courier,omitempty"`
	Status    string     `json:"status"`
	Location  string     `json:"location,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type trackResponse struct {
	OK      bool                   `json:"ok"`
	Package packageSummaryResponse `json:"package"`
	Events  []trackEventResponse   `json:"events"`
}
