/*
Package facility provides the childcare-facility master domain: the entity,
kana-aware search/sort key derivation, and the listing/search services.

The PostgreSQL store keeps the derived keys (haystack, station key, numeric
walk minutes) as columns maintained on every write, so paginated SQL listings
can filter and order without re-deriving per row.
*/
package facility

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoikunavi/hoikunavi/internal/platform/database/schema"
	"github.com/hoikunavi/hoikunavi/internal/platform/dberr"
	"github.com/hoikunavi/hoikunavi/pkg/kana"
)

// facilityColumns is the SELECT list shared by every read query.
var facilityColumns = " " + strings.Join(schema.CoreFacility.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed facility store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns a filtered, paginated slice of facilities and the total count.
//
// The total is obtained with COUNT(*) OVER() so no second query is needed.
// Free-text queries match against the precomputed search_key column with the
// same normalization applied to the query string.
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Facility, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(`
		SELECT` + facilityColumns + `,
			COUNT(*) OVER() AS total_count
		FROM ` + schema.CoreFacility.Table + `
		WHERE TRUE
	`)

	if len(filter.Wards) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND ward = ANY($%d)", argID))
		args = append(args, filter.Wards)
		argID++
	}

	if q := kana.NormalizeForSearch(filter.Query); q != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND search_key LIKE '%%' || $%d || '%%'", argID))
		args = append(args, q)
		argID++
	}

	if filter.MaxWalk > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND walk_min <= $%d", argID))
		args = append(args, filter.MaxWalk)
		argID++
	}

	switch filter.Sort {
	case SortByStationWalk:
		queryBuilder.WriteString(" ORDER BY station_key, walk_min, id")
	case SortByWalk:
		queryBuilder.WriteString(" ORDER BY walk_min, station_key, id")
	default:
		queryBuilder.WriteString(" ORDER BY name, id")
	}

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_facilities")
	}
	defer rows.Close()

	var facilities []*Facility
	total := 0
	for rows.Next() {
		f := &Facility{}
		if err := rows.Scan(
			&f.ID, &f.Name, &f.NameKana, &f.Ward, &f.Address,
			&f.NearestStation, &f.StationKana, &f.WalkMinutes,
			&f.FacilityType, &f.Phone, &f.Website, &f.MapURL, &f.Slug,
			&f.Lat, &f.Lng, &f.CreatedAt, &f.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_facility")
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_facilities_rows")
	}

	return facilities, total, nil
}

// ListAll returns every facility ordered by ID. The corpus is small (a few
// hundred records per ward), so loading it whole is the cheap option for the
// in-process search path.
func (repository *PostgresRepository) ListAll(ctx context.Context) ([]*Facility, error) {
	query := `SELECT` + facilityColumns + ` FROM ` + schema.CoreFacility.Table + ` ORDER BY id`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_facilities")
	}
	defer rows.Close()

	var facilities []*Facility
	for rows.Next() {
		f := &Facility{}
		if err := rows.Scan(
			&f.ID, &f.Name, &f.NameKana, &f.Ward, &f.Address,
			&f.NearestStation, &f.StationKana, &f.WalkMinutes,
			&f.FacilityType, &f.Phone, &f.Website, &f.MapURL, &f.Slug,
			&f.Lat, &f.Lng, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_facility")
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_all_facilities_rows")
	}

	return facilities, nil
}

// GetByID fetches one facility by its registry ID.
func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	query := `SELECT` + facilityColumns + ` FROM ` + schema.CoreFacility.Table + ` WHERE id = $1`

	f := &Facility{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.NameKana, &f.Ward, &f.Address,
		&f.NearestStation, &f.StationKana, &f.WalkMinutes,
		&f.FacilityType, &f.Phone, &f.Website, &f.MapURL, &f.Slug,
		&f.Lat, &f.Lng, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_facility")
	}
	return f, nil
}

// Upsert inserts or replaces a master record, recomputing the derived
// search_key, station_key and walk_min columns from the written fields.
func (repository *PostgresRepository) Upsert(ctx context.Context, f *Facility) error {
	query := `
		INSERT INTO ` + schema.CoreFacility.Table + ` (
			id, name, name_kana, ward, address, nearest_station, station_kana,
			walk_minutes, facility_type, phone, website, map_url, slug, lat, lng,
			search_key, station_key, walk_min
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			name_kana = EXCLUDED.name_kana,
			ward = EXCLUDED.ward,
			address = EXCLUDED.address,
			nearest_station = EXCLUDED.nearest_station,
			station_kana = EXCLUDED.station_kana,
			walk_minutes = EXCLUDED.walk_minutes,
			facility_type = EXCLUDED.facility_type,
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			map_url = EXCLUDED.map_url,
			slug = EXCLUDED.slug,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			search_key = EXCLUDED.search_key,
			station_key = EXCLUDED.station_key,
			walk_min = EXCLUDED.walk_min,
			updated_at = now();
	`

	_, err := repository.pool.Exec(ctx, query,
		f.ID, f.Name, f.NameKana, f.Ward, f.Address, f.NearestStation,
		f.StationKana, f.WalkMinutes, f.FacilityType, f.Phone, f.Website,
		f.MapURL, f.Slug, f.Lat, f.Lng,
		BuildHaystack(f), PickStationKey(f), PickWalkMinutes(f),
	)
	return dberr.Wrap(err, "upsert_facility")
}
