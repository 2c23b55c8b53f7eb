package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/hoikunavi/hoikunavi/internal/platform/validate"
)

// Service implements snapshot queries and writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the snapshot service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Months returns the distinct snapshot months, newest first.
func (service *Service) Months(ctx context.Context) ([]string, error) {
	return service.repo.ListMonths(ctx)
}

// Month returns all facility snapshots for one month. The month parameter
// accepts YYYY-MM or YYYY-MM-DD and is canonicalized to the first of month.
func (service *Service) Month(ctx context.Context, month string) ([]*Snapshot, error) {
	canonical, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}
	return service.repo.ListByMonth(ctx, canonical)
}

// FacilityHistory returns one facility's availability history, newest first.
func (service *Service) FacilityHistory(ctx context.Context, facilityID string) ([]*Snapshot, error) {
	if err := (&validate.Validator{}).Required("facility_id", facilityID).Err(); err != nil {
		return nil, err
	}
	return service.repo.ListByFacility(ctx, facilityID)
}

// Upsert validates and writes one snapshot. Used by ingest and admin flows.
func (service *Service) Upsert(ctx context.Context, s *Snapshot) error {
	v := &validate.Validator{}
	if err := v.Required("facility_id", s.FacilityID).Required("month", s.Month).Err(); err != nil {
		return err
	}

	canonical, err := NormalizeMonth(s.Month)
	if err != nil {
		return err
	}
	s.Month = canonical

	return service.repo.Upsert(ctx, s)
}

// NormalizeMonth canonicalizes a month string to YYYY-MM-01. It accepts
// YYYY-MM and YYYY-MM-DD (the day is discarded).
func NormalizeMonth(month string) (string, error) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, month); err == nil {
			first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
			return first.Format(monthLayout), nil
		}
	}
	return "", validate.RequiredError("month", "Must be a month in YYYY-MM or YYYY-MM-DD format")
}
