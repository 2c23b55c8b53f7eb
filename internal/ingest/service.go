package ingest

import (
	"context"
	"io"
	"log/slog"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/core/snapshot"
)

// Result summarizes one ingest run.
type Result struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

// Service orchestrates CSV ingestion into the facility and snapshot stores.
type Service struct {
	facilities *facility.Service
	snapshots  *snapshot.Service
	logger     *slog.Logger
}

// NewService constructs the ingest service.
func NewService(facilities *facility.Service, snapshots *snapshot.Service, logger *slog.Logger) *Service {
	return &Service{
		facilities: facilities,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// Master loads or refreshes facility master data from one CSV document.
//
// Rows that fail validation are logged and skipped — a bad row in the city
// export must not abort the rest of the load.
func (service *Service) Master(ctx context.Context, reader io.Reader) (*Result, error) {
	facilities, err := ParseMaster(reader)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, f := range facilities {
		if err := service.facilities.UpsertMaster(ctx, f); err != nil {
			service.logger.Warn("master_row_skipped",
				slog.String("facility_id", f.ID),
				slog.Any("error", err),
			)
			result.Skipped++
			continue
		}
		result.Written++
	}

	service.logger.Info("master_ingest_finished",
		slog.Int("written", result.Written),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

// Month loads one month of availability snapshots from the city CSVs.
// The enrolled reader may be nil.
func (service *Service) Month(ctx context.Context, month string, accept, wait, enrolled io.Reader) (*Result, error) {
	canonical, err := snapshot.NormalizeMonth(month)
	if err != nil {
		return nil, err
	}

	files, err := ParseMonthFiles(accept, wait, enrolled)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, s := range BuildSnapshots(files, canonical) {
		if err := service.snapshots.Upsert(ctx, s); err != nil {
			service.logger.Warn("snapshot_row_skipped",
				slog.String("facility_id", s.FacilityID),
				slog.String("month", canonical),
				slog.Any("error", err),
			)
			result.Skipped++
			continue
		}
		result.Written++
	}

	service.logger.Info("month_ingest_finished",
		slog.String("month", canonical),
		slog.Int("written", result.Written),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
