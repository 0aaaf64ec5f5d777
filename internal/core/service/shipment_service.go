package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// maxListLimit is the page-size cap for the recent-shipments listing.
const maxListLimit = 50

type ShipmentService struct {
	repo   ports.ShipmentRepository
	logger zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, logger: logger}
}

// CreateShipment normalizes the payload into the canonical dual-schema
// record and persists it. The storage layer assigns the identifier that
// doubles as the public tracking number.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.CreateShipmentResult, error) {
	shipment, err := normalizeShipment(input)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, shipment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().
		Str("shipment_id", stored.ID).
		Str("carrier", stored.Carrier).
		Str("currency", stored.Currency).
		Msg("shipment created")

	return &ports.CreateShipmentResult{ID: stored.ID}, nil
}

// ListShipments returns the most recently created shipments, newest first.
// The limit is defaulted and capped at maxListLimit.
func (s *ShipmentService) ListShipments(ctx context.Context, limit int64) ([]*domain.Shipment, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	shipments, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list shipments")
		return nil, err
	}
	return shipments, nil
}
