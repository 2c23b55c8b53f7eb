package facility

import "context"

// Repository defines the data access contract for facility master records.
type Repository interface {
	// List returns a filtered, paginated page of facilities plus the total
	// count matching the filter.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Facility, int, error)

	// ListAll returns the full facility corpus, used by the in-process
	// search path and its cache.
	ListAll(ctx context.Context) ([]*Facility, error)

	// GetByID returns a single facility by its registry ID.
	GetByID(ctx context.Context, id string) (*Facility, error)

	// Upsert inserts or replaces a master record. Derived search and
	// station keys are recomputed on every write.
	Upsert(ctx context.Context, f *Facility) error
}
