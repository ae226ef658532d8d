package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stallbook/internal/core/apperror"
)

func TestTotalUnits_Weight(t *testing.T) {
	tests := []struct {
		name    string
		parts   Parts
		want    int64
		wantErr bool
	}{
		{name: "jin and tael", parts: Parts{Jin: 3, Tael: 5}, want: 53},
		{name: "tael only", parts: Parts{Tael: 15}, want: 15},
		{name: "jin only", parts: Parts{Jin: 2}, want: 32},
		{name: "zero", parts: Parts{}, want: 0},
		{name: "tael at limit rejected", parts: Parts{Jin: 1, Tael: 16}, wantErr: true},
		{name: "tael above limit rejected", parts: Parts{Tael: 20}, wantErr: true},
		{name: "negative jin rejected", parts: Parts{Jin: -1}, wantErr: true},
		{name: "negative tael rejected", parts: Parts{Jin: 1, Tael: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalUnits(UnitWeight, tt.parts)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsAppError(err))
				assert.Equal(t, 400, apperror.GetHTTPStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalUnits_Count(t *testing.T) {
	got, err := TotalUnits(UnitCount, Parts{Count: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = TotalUnits(UnitCount, Parts{Count: -1})
	require.Error(t, err)
}

func TestTotalUnits_UnknownType(t *testing.T) {
	_, err := TotalUnits(UnitType("volume"), Parts{Count: 1})
	require.Error(t, err)
}

func TestSplitUnits_RoundTrip(t *testing.T) {
	// jin=3, tael=5 -> 53 -> jin=3, tael=5
	total, err := TotalUnits(UnitWeight, Parts{Jin: 3, Tael: 5})
	require.NoError(t, err)
	require.Equal(t, int64(53), total)

	p := SplitUnits(UnitWeight, total)
	assert.Equal(t, int64(3), p.Jin)
	assert.Equal(t, int64(5), p.Tael)
}

func TestSplitUnits_Count(t *testing.T) {
	p := SplitUnits(UnitCount, 9)
	assert.Equal(t, int64(9), p.Count)
	assert.Zero(t, p.Jin)
	assert.Zero(t, p.Tael)
}

func TestSplitUnits_Zero(t *testing.T) {
	p := SplitUnits(UnitWeight, 0)
	assert.Zero(t, p.Jin)
	assert.Zero(t, p.Tael)
}
