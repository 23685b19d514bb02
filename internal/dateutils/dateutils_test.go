package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raj/stmt-extract/internal/parsererror"
)

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		value  string
		want   time.Time
	}{
		{"us full year", LayoutUS, "10/28/2025", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)},
		{"us short year", LayoutUSShortYear, "10/28/25", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)},
		{"word month", LayoutWordMonth, "Nov 4, 2025", time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)},
		{"month day", LayoutMonthDay, "Nov 10 2025", time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)},
		{"dashed", LayoutDashed, "10-31-25", time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)},
		{"whitespace tolerated", LayoutUS, "  10/28/2025  ", time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.layout, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse(LayoutUS, "13/45/2025")
	require.Error(t, err)

	var dateErr *parsererror.DateParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "13/45/2025", dateErr.Value)
	assert.Equal(t, LayoutUS, dateErr.Layout)
}

func TestResolveMonthDay(t *testing.T) {
	got, err := ResolveMonthDay("10/28", "2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveWordMonthDay(t *testing.T) {
	got, err := ResolveWordMonthDay("Nov", "10", "2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveAbbrevDay(t *testing.T) {
	got, err := ResolveAbbrevDay("OCT", "02", "2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = ResolveAbbrevDay("XYZ", "02", "2025")
	require.Error(t, err)
	var dateErr *parsererror.DateParseError
	assert.ErrorAs(t, err, &dateErr)
}

func TestMonthNumber(t *testing.T) {
	m, ok := MonthNumber("oct")
	assert.True(t, ok)
	assert.Equal(t, time.October, m)

	_, ok = MonthNumber("ABC")
	assert.False(t, ok)
}
