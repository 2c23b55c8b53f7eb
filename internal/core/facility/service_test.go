package facility_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/platform/apperr"
)

// stubRepository is an in-memory [facility.Repository] for service tests.
type stubRepository struct {
	records  []*facility.Facility
	upserted []*facility.Facility
}

func (s *stubRepository) List(_ context.Context, _ facility.Filter, limit, offset int) ([]*facility.Facility, int, error) {
	if offset >= len(s.records) {
		return nil, len(s.records), nil
	}
	end := offset + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[offset:end], len(s.records), nil
}

func (s *stubRepository) ListAll(_ context.Context) ([]*facility.Facility, error) {
	return s.records, nil
}

func (s *stubRepository) GetByID(_ context.Context, id string) (*facility.Facility, error) {
	for _, f := range s.records {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, apperr.NotFound("Facility")
}

func (s *stubRepository) Upsert(_ context.Context, f *facility.Facility) error {
	s.upserted = append(s.upserted, f)
	return nil
}

func newTestService(records ...*facility.Facility) (*facility.Service, *stubRepository) {
	repo := &stubRepository{records: records}
	return facility.NewService(repo, nil, slog.Default()), repo
}

/*
TestService_Search verifies kana-insensitive matching plus the station/walk
ordering applied by the service.
*/
func TestService_Search(t *testing.T) {
	service, _ := newTestService(
		&facility.Facility{ID: "1", Name: "ひよし保育園", StationKana: "ひよし", WalkMinutes: "8"},
		&facility.Facility{ID: "2", Name: "ヒヨシ第二園", StationKana: "ひよし", WalkMinutes: "3"},
		&facility.Facility{ID: "3", Name: "つなしま園", StationKana: "つなしま", WalkMinutes: "5"},
	)

	results, err := service.Search(context.Background(), "ヒヨシ", facility.SortByStationWalk)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Same station key; nearer facility first.
	assert.Equal(t, "2", results[0].ID)
	assert.Equal(t, "1", results[1].ID)
}

/*
TestService_Search_EmptyQueryReturnsAll checks that a blank query matches the
whole corpus in name order.
*/
func TestService_Search_EmptyQueryReturnsAll(t *testing.T) {
	service, _ := newTestService(
		&facility.Facility{ID: "1", Name: "ひよし園"},
		&facility.Facility{ID: "2", Name: "つなしま園"},
	)

	results, err := service.Search(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// つ (U+3064) sorts before ひ (U+3072).
	assert.Equal(t, "2", results[0].ID)
	assert.Equal(t, "1", results[1].ID)
}

/*
TestService_UpsertMaster_Validation checks required-field and kana-reading
rules fail before any write happens.
*/
func TestService_UpsertMaster_Validation(t *testing.T) {
	tests := []struct {
		name string
		f    facility.Facility
	}{
		{"missing_id", facility.Facility{Name: "x", Ward: "港北区"}},
		{"missing_name", facility.Facility{ID: "f1", Ward: "港北区"}},
		{"missing_ward", facility.Facility{ID: "f1", Name: "x"}},
		{"kanji_in_name_kana", facility.Facility{ID: "f1", Name: "x", Ward: "港北区", NameKana: "漢字"}},
		{"kanji_in_station_kana", facility.Facility{ID: "f1", Name: "x", Ward: "港北区", StationKana: "新横浜"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()
			err := service.UpsertMaster(context.Background(), &tt.f)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repo.upserted)
		})
	}
}

/*
TestService_UpsertMaster_DerivesSlug verifies the slug fallback from the
facility name.
*/
func TestService_UpsertMaster_DerivesSlug(t *testing.T) {
	service, repo := newTestService()

	f := &facility.Facility{
		ID:          "k001",
		Name:        "ヒヨシ Kids Room",
		Ward:        "港北区",
		StationKana: "ひよし",
	}
	require.NoError(t, service.UpsertMaster(context.Background(), f))

	require.Len(t, repo.upserted, 1)
	assert.NotEmpty(t, repo.upserted[0].Slug)
	assert.Regexp(t, `^[a-z0-9]+(?:-[a-z0-9]+)*$`, repo.upserted[0].Slug)
}
