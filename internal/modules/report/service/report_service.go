package service

import (
	"context"
	"time"

	"tally/internal/modules/report/domain"
	reportout "tally/internal/modules/report/port/out"
	"tally/internal/platform/clock"
)

// ReportService answers reporting queries live against the session
// source on every call. Nothing is cached, so deletions are reflected
// immediately.
type ReportService struct {
	clock    clock.Clock
	location *time.Location
	source   reportout.SessionSource
}

func NewReportService(clock clock.Clock, location *time.Location, source reportout.SessionSource) *ReportService {
	return &ReportService{clock: clock, location: location, source: source}
}

func (s *ReportService) Day(ctx context.Context, label string) (domain.Bucket, domain.Summary, int, error) {
	bucket, err := domain.DayBucket(label, s.clock.Now(), s.location)
	if err != nil {
		return domain.Bucket{}, domain.Summary{}, 0, err
	}
	return s.summarize(ctx, bucket)
}

func (s *ReportService) Month(ctx context.Context, label string) (domain.Bucket, domain.Summary, int, error) {
	bucket, err := domain.MonthBucket(label, s.clock.Now(), s.location)
	if err != nil {
		return domain.Bucket{}, domain.Summary{}, 0, err
	}
	return s.summarize(ctx, bucket)
}

func (s *ReportService) summarize(ctx context.Context, bucket domain.Bucket) (domain.Bucket, domain.Summary, int, error) {
	sessions, err := s.source.InRange(ctx, bucket.Start, bucket.End)
	if err != nil {
		return domain.Bucket{}, domain.Summary{}, 0, err
	}
	return bucket, domain.Summarize(sessions), len(sessions), nil
}

// History returns sessions ascending by start instant. A positive limit
// keeps the most recent limit rows; the tail of an ascending listing is
// exactly that subset, already in ascending order.
func (s *ReportService) History(ctx context.Context, limit int) ([]domain.Session, error) {
	sessions, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}
	return sessions, nil
}

func (s *ReportService) Remove(ctx context.Context, id int64) error {
	return s.source.Delete(ctx, id)
}

func (s *ReportService) Location() *time.Location {
	return s.location
}
