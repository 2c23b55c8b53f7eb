// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package facility

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hoikunavi/hoikunavi/pkg/kana"
)

// StationKeySentinel sorts after every canonical (hiragana-folded) key, so
// facilities with no station identity group together at the end of a
// station-ordered listing.
const StationKeySentinel = "\uffff"

// WalkMinutesSentinel is returned for absent or unparseable walk times. It
// pushes unknown distances to the end of an ascending sort.
const WalkMinutesSentinel = 9999

// stationSuffix is the station glyph trailing display names ("新横浜駅").
const stationSuffix = "駅"

// BuildHaystack concatenates every textual identity field of f and
// normalizes the result once. A record matches a query q iff the haystack
// contains kana.NormalizeForSearch(q).
func BuildHaystack(f *Facility) string {
	joined := strings.Join([]string{
		f.Name,
		f.NameKana,
		f.NearestStation,
		f.StationKana,
		f.Ward,
		f.Address,
	}, " ")
	return kana.NormalizeForSearch(joined)
}

// MatchesQuery reports whether f's haystack contains the already-normalized
// query. Callers normalize the query once per request, not once per record.
func MatchesQuery(f *Facility, canonicalQuery string) bool {
	if canonicalQuery == "" {
		return true
	}
	return strings.Contains(BuildHaystack(f), canonicalQuery)
}

// PickStationKey derives the canonical ordering key for f's nearest station.
//
// # Selection
//
//  1. A non-blank station kana reading wins.
//  2. Otherwise the display name is used, with a single trailing 駅 stripped
//     so "渋谷駅" and a reading "しぶや" can land on the same key.
//  3. With no station identity at all, [StationKeySentinel] is returned:
//     such records sort last and compare equal to each other.
func PickStationKey(f *Facility) string {
	if v := strings.TrimSpace(f.StationKana); v != "" {
		return kana.NormalizeForSearch(v)
	}
	if v := strings.TrimSpace(f.NearestStation); v != "" {
		v = strings.TrimSuffix(v, stationSuffix)
		return kana.NormalizeForSearch(v)
	}
	return StationKeySentinel
}

// PickWalkMinutes parses f's raw walk-minutes value, truncating toward zero.
// Absent, blank, "-", "null" and unparseable values all degrade to
// [WalkMinutesSentinel] rather than failing: a record with unknown distance
// must never abort a sort, only lose it.
func PickWalkMinutes(f *Facility) int {
	raw := strings.TrimSpace(f.WalkMinutes)
	if raw == "" || raw == "-" || strings.EqualFold(raw, "null") {
		return WalkMinutesSentinel
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return WalkMinutesSentinel
	}
	return int(v)
}

// CompareByStation orders two facilities by (station key, walk minutes).
// It returns a negative value when a sorts before b, zero when they tie.
func CompareByStation(a, b *Facility) int {
	if c := strings.Compare(PickStationKey(a), PickStationKey(b)); c != 0 {
		return c
	}
	return PickWalkMinutes(a) - PickWalkMinutes(b)
}

// SortByStation stably sorts facilities by nearest station, then walk time.
// Records tying on both keys keep their input order.
func SortByStation(list []*Facility) {
	sort.SliceStable(list, func(i, j int) bool {
		return CompareByStation(list[i], list[j]) < 0
	})
}

// SortByWalkMinutes stably sorts facilities by walk time, breaking ties on
// the station key.
func SortByWalkMinutes(list []*Facility) {
	sort.SliceStable(list, func(i, j int) bool {
		wi, wj := PickWalkMinutes(list[i]), PickWalkMinutes(list[j])
		if wi != wj {
			return wi < wj
		}
		return PickStationKey(list[i]) < PickStationKey(list[j])
	})
}

// SortByDisplayName stably sorts facilities by the canonical form of their
// name, so かな and カナ spellings interleave correctly.
func SortByDisplayName(list []*Facility) {
	sort.SliceStable(list, func(i, j int) bool {
		return kana.NormalizeForSearch(list[i].Name) < kana.NormalizeForSearch(list[j].Name)
	})
}
