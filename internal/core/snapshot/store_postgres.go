/*
Package snapshot stores monthly availability data per facility: how many
children each facility can accept, how many are enrolled, and how many are
waiting, in total and per age band.

Age bands are persisted as a jsonb column — they are always read and written
as a unit, and the band set (ages 0-5) is fixed by the city data format.
*/
package snapshot

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoikunavi/hoikunavi/internal/platform/database/schema"
	"github.com/hoikunavi/hoikunavi/internal/platform/dberr"
)

// monthLayout is the canonical month format (first of month).
const monthLayout = "2006-01-02"

// snapshotColumns is the SELECT list shared by every read query.
var snapshotColumns = strings.Join(schema.CoreSnapshot.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed snapshot store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Upsert writes one facility-month snapshot.
func (repository *PostgresRepository) Upsert(ctx context.Context, s *Snapshot) error {
	query := `
		INSERT INTO ` + schema.CoreSnapshot.Table + ` (
			` + snapshotColumns + `
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (facility_id, month) DO UPDATE SET
			accept = EXCLUDED.accept,
			wait = EXCLUDED.wait,
			enrolled = EXCLUDED.enrolled,
			capacity = EXCLUDED.capacity,
			wait_ratio = EXCLUDED.wait_ratio,
			ages = EXCLUDED.ages,
			updated_at = now();
	`

	_, err := repository.pool.Exec(ctx, query,
		s.FacilityID, s.Month,
		s.Totals.Accept, s.Totals.Wait, s.Totals.Enrolled,
		s.Totals.Capacity, s.Totals.WaitPerCapacity,
		s.Ages,
	)
	return dberr.Wrap(err, "upsert_snapshot")
}

// ListMonths returns the distinct snapshot months, newest first.
func (repository *PostgresRepository) ListMonths(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT month FROM ` + schema.CoreSnapshot.Table + ` ORDER BY month DESC;`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_months")
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month time.Time
		if err := rows.Scan(&month); err != nil {
			return nil, dberr.Wrap(err, "scan_month")
		}
		months = append(months, month.Format(monthLayout))
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_months_rows")
	}

	return months, nil
}

// ListByMonth returns every facility snapshot for one month, ordered by
// facility ID for deterministic output.
func (repository *PostgresRepository) ListByMonth(ctx context.Context, month string) ([]*Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM ` + schema.CoreSnapshot.Table + `
		WHERE month = $1
		ORDER BY facility_id;
	`
	return repository.querySnapshots(ctx, query, month)
}

// ListByFacility returns one facility's availability history, newest first.
func (repository *PostgresRepository) ListByFacility(ctx context.Context, facilityID string) ([]*Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM ` + schema.CoreSnapshot.Table + `
		WHERE facility_id = $1
		ORDER BY month DESC;
	`
	return repository.querySnapshots(ctx, query, facilityID)
}

func (repository *PostgresRepository) querySnapshots(ctx context.Context, query string, arg any) ([]*Snapshot, error) {
	rows, err := repository.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, dberr.Wrap(err, "list_snapshots")
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		s := &Snapshot{}
		var month time.Time
		if err := rows.Scan(
			&s.FacilityID, &month,
			&s.Totals.Accept, &s.Totals.Wait, &s.Totals.Enrolled,
			&s.Totals.Capacity, &s.Totals.WaitPerCapacity,
			&s.Ages,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_snapshot")
		}
		s.Month = month.Format(monthLayout)
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_snapshots_rows")
	}

	return snapshots, nil
}
