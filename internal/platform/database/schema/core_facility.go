package schema

// CoreFacilityTable represents the 'core.facility' table
type CoreFacilityTable struct {
	Table          string
	ID             string
	Name           string
	NameKana       string
	Ward           string
	Address        string
	NearestStation string
	StationKana    string
	WalkMinutes    string
	FacilityType   string
	Phone          string
	Website        string
	MapURL         string
	Slug           string
	Lat            string
	Lng            string
	SearchKey      string
	StationKey     string
	WalkMin        string
	CreatedAt      string
	UpdatedAt      string
}

// CoreFacility is the schema definition for core.facility
var CoreFacility = CoreFacilityTable{
	Table:          "core.facility",
	ID:             "id",
	Name:           "name",
	NameKana:       "name_kana",
	Ward:           "ward",
	Address:        "address",
	NearestStation: "nearest_station",
	StationKana:    "station_kana",
	WalkMinutes:    "walk_minutes",
	FacilityType:   "facility_type",
	Phone:          "phone",
	Website:        "website",
	MapURL:         "map_url",
	Slug:           "slug",
	Lat:            "lat",
	Lng:            "lng",
	SearchKey:      "search_key",
	StationKey:     "station_key",
	WalkMin:        "walk_min",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

// Columns lists the entity columns in scan order. The derived key columns
// (search_key, station_key, walk_min) are write-only from the store's view
// and are deliberately not part of the list.
func (t CoreFacilityTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NameKana, t.Ward, t.Address, t.NearestStation,
		t.StationKana, t.WalkMinutes, t.FacilityType, t.Phone, t.Website,
		t.MapURL, t.Slug, t.Lat, t.Lng, t.CreatedAt, t.UpdatedAt,
	}
}
