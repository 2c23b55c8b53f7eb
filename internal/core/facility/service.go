package facility

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/hoikunavi/hoikunavi/internal/platform/constants"
	"github.com/hoikunavi/hoikunavi/internal/platform/validate"
	"github.com/hoikunavi/hoikunavi/pkg/kana"
	"github.com/hoikunavi/hoikunavi/pkg/slice"
	"github.com/hoikunavi/hoikunavi/pkg/slug"
)

// Service implements facility listing, search and master maintenance.
type Service struct {
	repo   Repository
	cache  *redis.Client
	logger *slog.Logger
}

// NewService constructs the facility service. The cache client may be nil,
// in which case the search corpus is loaded from the store on every call.
func NewService(repo Repository, cache *redis.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns a paginated, filtered facility page and the total count.
func (service *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]*Facility, int, error) {
	return service.repo.List(ctx, filter, limit, offset)
}

// Get returns a single facility by registry ID.
func (service *Service) Get(ctx context.Context, id string) (*Facility, error) {
	return service.repo.GetByID(ctx, id)
}

// Search runs the kana-aware free-text search over the whole corpus and
// orders the result.
//
// # Behavior
//
// The query is normalized once, then tested for substring containment
// against each record's haystack — the same matching the original site
// performed in the browser, moved server-side. Ordering is a stable sort:
// station key then walk minutes for SortByStationWalk, walk minutes first
// for SortByWalk, canonical name otherwise.
func (service *Service) Search(ctx context.Context, query, sortOrder string) ([]*Facility, error) {
	corpus, err := service.corpus(ctx)
	if err != nil {
		return nil, err
	}

	canonical := kana.NormalizeForSearch(query)

	matched := slice.Filter(corpus, func(f *Facility) bool {
		return MatchesQuery(f, canonical)
	})

	switch sortOrder {
	case SortByStationWalk:
		SortByStation(matched)
	case SortByWalk:
		SortByWalkMinutes(matched)
	default:
		SortByDisplayName(matched)
	}

	return matched, nil
}

// UpsertMaster validates and writes one master record, then drops the
// search corpus cache. Derived keys are recomputed by the store.
func (service *Service) UpsertMaster(ctx context.Context, f *Facility) error {
	v := &validate.Validator{}
	err := v.
		Required("id", f.ID).
		Required("name", f.Name).
		Required("ward", f.Ward).
		MaxLen("name", f.Name, 200).
		KanaReading("name_kana", f.NameKana).
		KanaReading("station_kana", f.StationKana).
		Err()
	if err != nil {
		return err
	}

	if strings.TrimSpace(f.Slug) == "" {
		f.Slug = slug.From(f.Name)
	}

	if err := service.repo.Upsert(ctx, f); err != nil {
		return err
	}

	service.InvalidateCache(ctx)
	return nil
}

// InvalidateCache drops the cached search corpus. Safe to call when the
// cache is nil or unreachable; the next search falls back to the store.
func (service *Service) InvalidateCache(ctx context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Del(ctx, constants.RedisKeyFacilityCorpus).Err(); err != nil {
		service.logger.Warn("facility_corpus_cache_invalidate_failed", slog.Any("error", err))
	}
}

// corpus returns the full facility list, via the cache when possible.
func (service *Service) corpus(ctx context.Context) ([]*Facility, error) {
	if service.cache != nil {
		raw, err := service.cache.Get(ctx, constants.RedisKeyFacilityCorpus).Bytes()
		if err == nil {
			var cached []*Facility
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached, nil
			}
			// A corrupt cache entry is dropped, not served.
			service.InvalidateCache(ctx)
		} else if !errors.Is(err, redis.Nil) {
			service.logger.Warn("facility_corpus_cache_read_failed", slog.Any("error", err))
		}
	}

	corpus, err := service.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if raw, jsonErr := json.Marshal(corpus); jsonErr == nil {
			setErr := service.cache.Set(ctx, constants.RedisKeyFacilityCorpus, raw,
				constants.FacilityCorpusTTL).Err()
			if setErr != nil {
				service.logger.Warn("facility_corpus_cache_write_failed", slog.Any("error", setErr))
			}
		}
	}

	return corpus, nil
}
