package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Display statuses derived from free-text shipment status values.
const (
	DisplayPending        = "Pending"
	DisplayInTransit      = "In Transit"
	DisplayOutForDelivery = "Out for Delivery"
	DisplayDelivered      = "Delivered"
	DisplayProblem        = "Problem"
)

// ClassifyStatus maps a free-text status to its human-facing display form
// using case-insensitive substring matching. The first matching rule wins.
// Unrecognised text is passed through with its first letter capitalized;
// empty input classifies as Pending.
func ClassifyStatus(raw string) string {
	if raw == "" {
		return DisplayPending
	}

	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "out") && strings.Contains(t, "deliver"):
		return DisplayOutForDelivery
	case strings.Contains(t, "deliver"):
		return DisplayDelivered
	case strings.Contains(t, "transit"):
		return DisplayInTransit
	case strings.Contains(t, "exception"), strings.Contains(t, "fail"), strings.Contains(t, "problem"):
		return DisplayProblem
	case strings.Contains(t, "pending"), strings.Contains(t, "created"), strings.Contains(t, "label"):
		return DisplayPending
	}

	r, size := utf8.DecodeRuneInString(raw)
	return string(unicode.ToUpper(r)) + raw[size:]
}
