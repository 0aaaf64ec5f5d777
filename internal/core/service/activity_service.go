package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingNo, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingNo, status string, ts time.Time) error
}

type activityService struct {
	repo  ports.ShipmentRepository
	dedup DedupChecker
	log   zerolog.Logger
	now   func() time.Time
}

// NewActivityService returns an ActivityService that appends deduplicated
// activity entries to shipments.
func NewActivityService(repo ports.ShipmentRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log, now: time.Now}
}

// Process validates, deduplicates, and appends a single activity event to
// the owning shipment's activity log.
func (s *activityService) Process(ctx context.Context, in ports.ActivityEventInput) error {
	ts := s.now().UTC()
	if in.Time != nil {
		ts = in.Time.UTC()
	}

	// Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingNo, in.Status, ts)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", in.TrackingNo).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("tracking", in.TrackingNo).Str("status", in.Status).Msg("duplicate activity event skipped")
		return nil
	}

	// Verify the shipment exists before touching its activity log.
	if _, err := s.repo.FindByID(ctx, in.TrackingNo); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	// Mark as processed before writing (prevents double-append on retry).
	if markErr := s.dedup.Mark(ctx, in.TrackingNo, in.Status, ts); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking", in.TrackingNo).Msg("failed to set dedup key")
	}

	received := s.now().UTC()
	entry := domain.ActivityEntry{
		Time:      &ts,
		CreatedAt: &received,
		Status:    in.Status,
		Location:  in.Location,
		Message:   in.Message,
		Note:      in.Note,
	}

	if err := s.repo.AppendActivity(ctx, in.TrackingNo, entry); err != nil {
		return fmt.Errorf("process activity: append: %w", err)
	}

	s.log.Info().
		Str("tracking", in.TrackingNo).
		Str("status", in.Status).
		Msg("activity event appended")

	return nil
}
