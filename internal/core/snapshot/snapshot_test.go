package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoikunavi/hoikunavi/internal/core/snapshot"
	"github.com/hoikunavi/hoikunavi/internal/platform/apperr"
	"github.com/hoikunavi/hoikunavi/pkg/pointer"
)

/*
TestNewMeasure covers capacity and ratio derivation, including the partial
data cases where derived values must stay unknown.
*/
func TestNewMeasure(t *testing.T) {
	tests := []struct {
		name         string
		accept       *int
		wait         *int
		enrolled     *int
		wantCapacity *int
		wantRatio    *float64
	}{
		{
			"all_known",
			pointer.To(2), pointer.To(3), pointer.To(18),
			pointer.To(20), pointer.To(0.15),
		},
		{
			"missing_enrolled_no_capacity",
			pointer.To(2), pointer.To(3), nil,
			nil, nil,
		},
		{
			"missing_wait_no_ratio",
			pointer.To(2), nil, pointer.To(18),
			pointer.To(20), nil,
		},
		{
			"zero_capacity_no_ratio",
			pointer.To(0), pointer.To(5), pointer.To(0),
			pointer.To(0), nil,
		},
		{
			"nothing_known",
			nil, nil, nil,
			nil, nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := snapshot.NewMeasure(tt.accept, tt.wait, tt.enrolled)
			assert.Equal(t, tt.wantCapacity, m.Capacity)
			if tt.wantRatio == nil {
				assert.Nil(t, m.WaitPerCapacity)
			} else {
				require.NotNil(t, m.WaitPerCapacity)
				assert.InDelta(t, *tt.wantRatio, *m.WaitPerCapacity, 1e-9)
			}
		})
	}
}

/*
TestNormalizeMonth checks month canonicalization and rejection of malformed
input.
*/
func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full_date", "2026-04-01", "2026-04-01", false},
		{"mid_month_date_snaps_to_first", "2026-04-15", "2026-04-01", false},
		{"year_month", "2026-04", "2026-04-01", false},
		{"empty", "", "", true},
		{"garbage", "april", "", true},
		{"month_out_of_range", "2026-13", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := snapshot.NormalizeMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
