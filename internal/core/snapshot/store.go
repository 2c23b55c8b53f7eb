package snapshot

import "context"

// Repository defines the data access contract for availability snapshots.
type Repository interface {
	// Upsert writes one facility-month snapshot, replacing an existing row.
	Upsert(ctx context.Context, s *Snapshot) error

	// ListMonths returns the distinct snapshot months, newest first.
	ListMonths(ctx context.Context) ([]string, error)

	// ListByMonth returns every facility snapshot for one month.
	ListByMonth(ctx context.Context, month string) ([]*Snapshot, error)

	// ListByFacility returns one facility's history, newest first.
	ListByFacility(ctx context.Context, facilityID string) ([]*Snapshot, error)
}
