// Package metrics defines all custom Prometheus metrics for the parcel
// booking and tracking API. It is the single source of truth for metric
// names, labels, and help strings. Metrics auto-register with the default
// registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parceldesk"

// ShipmentsCreatedTotal counts successfully booked shipments.
// Label:
//   - carrier: the carrier supplied on the booking, or "unknown"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by carrier.",
	},
	[]string{"carrier"},
)

// ShipmentCreateFailuresTotal counts rejected or failed bookings.
// Label:
//   - reason: "missing_address", "invalid_parcel", or "storage"
var ShipmentCreateFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_create_failures_total",
		Help:      "Total number of shipment creations that failed, by reason.",
	},
	[]string{"reason"},
)

// TrackingLookupsTotal counts public tracking lookups.
// Label:
//   - result: "ok", "not_found", or "missing_tracking_no"
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of tracking lookups, by result.",
	},
	[]string{"result"},
)

// ActivityProcessedTotal counts activity events appended successfully.
// Label:
//   - status: the raw status carried by the event (may be empty)
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_processed_total",
		Help:      "Total number of activity events successfully appended.",
	},
	[]string{"status"},
)

// ActivityErrorsTotal counts activity events that failed processing.
// Label:
//   - reason: short description of the failure
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_errors_total",
		Help:      "Total number of activity events that failed processing.",
	},
	[]string{"reason"},
)

// ActivityDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var ActivityDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks the number of events waiting per worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures end-to-end processing of one event.
var ActivityProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
