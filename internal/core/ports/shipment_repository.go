package ports

import (
	"context"

	"github.com/parceldesk/shipment-api/internal/core/domain"
)

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	// Create persists the canonical shipment, assigning its identifier and
	// createdAt/updatedAt timestamps, and returns the stored record.
	Create(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error)

	// FindByID retrieves a shipment by its storage-assigned identifier,
	// which is also the public tracking number.
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)

	// ListRecent returns up to limit shipments, newest-created first.
	ListRecent(ctx context.Context, limit int64) ([]*domain.Shipment, error)

	// AppendActivity pushes an entry onto the shipment's activity log and
	// bumps updatedAt.
	AppendActivity(ctx context.Context, id string, entry domain.ActivityEntry) error
}
