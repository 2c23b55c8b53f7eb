package facility

import "time"

// Facility is a childcare facility from the city registry.
//
// Kana fields hold hiragana readings used for search and ordering. They may
// be empty when the registry has no reading and ingest could not derive one.
// WalkMinutes is kept as the raw registry value ("7", "", "-", "null" have
// all been observed); [PickWalkMinutes] owns the parsing rules.
type Facility struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	NameKana       string     `json:"name_kana,omitempty"`
	Ward           string     `json:"ward"`
	Address        string     `json:"address,omitempty"`
	NearestStation string     `json:"nearest_station,omitempty"`
	StationKana    string     `json:"station_kana,omitempty"`
	WalkMinutes    string     `json:"walk_minutes,omitempty"`
	FacilityType   string     `json:"facility_type,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Website        string     `json:"website,omitempty"`
	MapURL         string     `json:"map_url,omitempty"`
	Slug           string     `json:"slug"`
	Lat            *float64   `json:"lat,omitempty"`
	Lng            *float64   `json:"lng,omitempty"`
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`
}

// Sort orders accepted by the list and search endpoints.
const (
	SortByName        = "name"
	SortByStationWalk = "station"
	SortByWalk        = "walk"
)

// Filter narrows the facility list query.
type Filter struct {
	// Query is a free-text search string; it is normalized before matching.
	Query string
	// Wards restricts results to the given ward names.
	Wards []string
	// MaxWalk drops facilities farther than this many minutes from their
	// nearest station. Zero means no limit.
	MaxWalk int
	// Sort is one of the Sort* constants. Empty means SortByName.
	Sort string
}
