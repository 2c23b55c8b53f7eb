package facility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/pkg/kana"
)

/*
TestBuildHaystack verifies that every textual identity field lands in the
haystack and that the haystack is fully normalized.
*/
func TestBuildHaystack(t *testing.T) {
	f := &facility.Facility{
		Name:           "Aビル保育園",
		NameKana:       "えーびるほいくえん",
		NearestStation: "新横浜駅",
		StationKana:    "しんよこはま",
		Ward:           "港北区",
		Address:        "横浜市港北区　新横浜1-2-3",
	}

	haystack := facility.BuildHaystack(f)

	// Normalized once: no whitespace, lowercase, hiragana-folded.
	assert.Equal(t, haystack, kana.NormalizeForSearch(haystack))
	assert.Contains(t, haystack, "aびる保育園")
	assert.Contains(t, haystack, "しんよこはま")
	assert.Contains(t, haystack, "港北区")
}

/*
TestMatchesQuery checks kana-insensitive substring matching across all
haystack fields.
*/
func TestMatchesQuery(t *testing.T) {
	f := &facility.Facility{
		Name:        "つなしま保育園",
		StationKana: "つなしま",
		Ward:        "港北区",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty_query_matches", "", true},
		{"hiragana_query", "つなしま", true},
		{"katakana_query", "ツナシマ", true},
		{"halfwidth_katakana_query", "ﾂﾅｼﾏ", true},
		{"ward_field", "港北", true},
		{"spaced_query", "つな しま", true},
		{"no_match", "しんよこ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical := kana.NormalizeForSearch(tt.query)
			assert.Equal(t, tt.want, facility.MatchesQuery(f, canonical))
		})
	}
}

/*
TestPickStationKey covers the selection priority: station kana, then display
name with a trailing 駅 stripped, then the sentinel.
*/
func TestPickStationKey(t *testing.T) {
	tests := []struct {
		name string
		f    facility.Facility
		want string
	}{
		{
			"kana_preferred",
			facility.Facility{StationKana: "しんよこはま", NearestStation: "新横浜駅"},
			"しんよこはま",
		},
		{
			"kana_already_canonical",
			facility.Facility{StationKana: "しんよこはま"},
			"しんよこはま",
		},
		{
			"katakana_reading_folded",
			facility.Facility{StationKana: "ツナシマ"},
			"つなしま",
		},
		{
			"display_name_suffix_stripped",
			facility.Facility{NearestStation: "新横浜駅"},
			"新横浜",
		},
		{
			"suffix_stripped_once_only",
			facility.Facility{NearestStation: "駅駅"},
			"駅",
		},
		{
			"blank_kana_falls_through",
			facility.Facility{StationKana: "　 ", NearestStation: "綱島駅"},
			"綱島",
		},
		{
			"no_station_identity",
			facility.Facility{},
			facility.StationKeySentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, facility.PickStationKey(&tt.f))
		})
	}
}

/*
TestPickStationKey_SentinelSortsLast asserts the sentinel orders after any
real key.
*/
func TestPickStationKey_SentinelSortsLast(t *testing.T) {
	withKey := &facility.Facility{StationKana: "あ"}
	without := &facility.Facility{}

	assert.Less(t, facility.PickStationKey(withKey), facility.PickStationKey(without))
	assert.Equal(t, facility.PickStationKey(without), facility.PickStationKey(&facility.Facility{}))
}

/*
TestPickWalkMinutes covers numeric parsing and every sentinel-producing
degenerate input.
*/
func TestPickWalkMinutes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain_integer", "7", 7},
		{"padded", " 12 ", 12},
		{"float_truncates", "7.9", 7},
		{"zero", "0", 0},
		{"empty", "", facility.WalkMinutesSentinel},
		{"dash", "-", facility.WalkMinutesSentinel},
		{"null_literal", "null", facility.WalkMinutesSentinel},
		{"null_uppercase", "NULL", facility.WalkMinutesSentinel},
		{"not_a_number", "徒歩7分", facility.WalkMinutesSentinel},
		{"nan", "NaN", facility.WalkMinutesSentinel},
		{"infinity", "Inf", facility.WalkMinutesSentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &facility.Facility{WalkMinutes: tt.raw}
			assert.Equal(t, tt.want, facility.PickWalkMinutes(f))
		})
	}
}

/*
TestSortByStation is the end-to-end ordering scenario: a kana reading and a
stripped display name landing on the same key tie-break on walk minutes, and
records without station identity sort last.
*/
func TestSortByStation(t *testing.T) {
	// A katakana reading and a hiragana reading land on the same canonical
	// key, so ordering falls to walk minutes. A record without any station
	// identity sorts last.
	a := &facility.Facility{Name: "Aビル", StationKana: "しぶや", WalkMinutes: "5"}
	b := &facility.Facility{Name: "Bビル", StationKana: "シブヤ", WalkMinutes: "3"}
	c := &facility.Facility{Name: "Cビル"}

	list := []*facility.Facility{a, b, c}
	facility.SortByStation(list)

	require.Len(t, list, 3)
	assert.Equal(t, "Bビル", list[0].Name) // same key as A, 3 < 5
	assert.Equal(t, "Aビル", list[1].Name)
	assert.Equal(t, "Cビル", list[2].Name) // sentinel sorts last
}

/*
TestSortByStation_StableOnFullTies verifies input order survives full key
ties.
*/
func TestSortByStation_StableOnFullTies(t *testing.T) {
	first := &facility.Facility{Name: "first", StationKana: "ひよし", WalkMinutes: "4"}
	second := &facility.Facility{Name: "second", StationKana: "ヒヨシ", WalkMinutes: "4"}
	third := &facility.Facility{Name: "third"}
	fourth := &facility.Facility{Name: "fourth"}

	list := []*facility.Facility{first, second, third, fourth}
	facility.SortByStation(list)

	assert.Equal(t, []string{"first", "second", "third", "fourth"},
		[]string{list[0].Name, list[1].Name, list[2].Name, list[3].Name})
}

/*
TestSortByWalkMinutes checks the walk-first ordering with sentinel placement.
*/
func TestSortByWalkMinutes(t *testing.T) {
	near := &facility.Facility{Name: "near", StationKana: "つなしま", WalkMinutes: "2"}
	far := &facility.Facility{Name: "far", StationKana: "つなしま", WalkMinutes: "15"}
	unknown := &facility.Facility{Name: "unknown", StationKana: "つなしま"}

	list := []*facility.Facility{unknown, far, near}
	facility.SortByWalkMinutes(list)

	assert.Equal(t, "near", list[0].Name)
	assert.Equal(t, "far", list[1].Name)
	assert.Equal(t, "unknown", list[2].Name)
}
