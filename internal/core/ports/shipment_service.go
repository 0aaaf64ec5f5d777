package ports

import (
	"context"

	"github.com/parceldesk/shipment-api/internal/core/domain"
)

// AddressInput holds a sender or receiver address from a creation payload.
type AddressInput struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
	Phone      string
	Email      string
}

// ParcelInput is the current nested parcel shape. The shape is only used
// when all four fields are non-zero.
type ParcelInput struct {
	Weight float64
	Length float64
	Width  float64
	Height float64
}

// DimsInput is the legacy per-dimension shape. Each side length may arrive
// under the modern field name or the single-letter one; the modern name is
// preferred when both are set.
type DimsInput struct {
	Length float64
	Width  float64
	Height float64
	L      float64
	W      float64
	H      float64
}

// CreateShipmentInput carries a creation payload in either historical
// shape. Parcel and WeightKg/Dims are mutually exclusive as far as
// resolution goes: a complete Parcel wins outright, otherwise the legacy
// pair is used outright, and the shapes are never merged.
type CreateShipmentInput struct {
	From     *AddressInput
	To       *AddressInput
	Parcel   *ParcelInput
	WeightKg float64
	Dims     *DimsInput
	Speed    string
	Carrier  string
	Service  string
	PriceAED float64
	Currency string
}

// CreateShipmentResult is returned by the service after creating a shipment.
type CreateShipmentResult struct {
	ID string
}

// ShipmentService defines the booking use cases.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*CreateShipmentResult, error)
	ListShipments(ctx context.Context, limit int64) ([]*domain.Shipment, error)
}
