package schema

// CoreSnapshotTable represents the 'core.snapshot' table
type CoreSnapshotTable struct {
	Table      string
	FacilityID string
	Month      string
	Accept     string
	Wait       string
	Enrolled   string
	Capacity   string
	WaitRatio  string
	Ages       string
	UpdatedAt  string
}

// CoreSnapshot is the schema definition for core.snapshot
var CoreSnapshot = CoreSnapshotTable{
	Table:      "core.snapshot",
	FacilityID: "facility_id",
	Month:      "month",
	Accept:     "accept",
	Wait:       "wait",
	Enrolled:   "enrolled",
	Capacity:   "capacity",
	WaitRatio:  "wait_ratio",
	Ages:       "ages",
	UpdatedAt:  "updated_at",
}

// Columns lists the columns in scan order. updated_at is bookkeeping only
// and is not scanned into the entity.
func (t CoreSnapshotTable) Columns() []string {
	return []string{
		t.FacilityID, t.Month, t.Accept, t.Wait, t.Enrolled,
		t.Capacity, t.WaitRatio, t.Ages,
	}
}
