package snapshot

import "github.com/hoikunavi/hoikunavi/pkg/pointer"

// Measure is one set of availability numbers, either facility totals or a
// single age band. Unknown values stay nil — the city CSVs leave cells blank
// and a blank is not a zero.
type Measure struct {
	Accept          *int     `json:"accept"`
	Wait            *int     `json:"wait"`
	Enrolled        *int     `json:"enrolled"`
	Capacity        *int     `json:"capacity"`
	WaitPerCapacity *float64 `json:"wait_per_capacity"`
}

// AgeBands are keyed "0" through "5", matching the per-age columns of the
// city CSVs.
type AgeBands map[string]Measure

// Snapshot is one facility's availability for one month.
type Snapshot struct {
	FacilityID string   `json:"facility_id"`
	Month      string   `json:"month"` // first of month, YYYY-MM-01
	Totals     Measure  `json:"totals"`
	Ages       AgeBands `json:"ages"`
}

// NewMeasure derives capacity and the wait-per-capacity ratio from the three
// raw counts. Capacity is enrolled + accept when both are known;
// the ratio needs a known, positive capacity.
func NewMeasure(accept, wait, enrolled *int) Measure {
	m := Measure{Accept: accept, Wait: wait, Enrolled: enrolled}

	if accept != nil && enrolled != nil {
		m.Capacity = pointer.To(*enrolled + *accept)
	}
	if wait != nil && m.Capacity != nil && *m.Capacity > 0 {
		m.WaitPerCapacity = pointer.To(float64(*wait) / float64(*m.Capacity))
	}

	return m
}
