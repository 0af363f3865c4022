package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(DefaultOffsetTable())

	tests := []struct {
		name     string
		raw      string
		zone     string
		expected time.Time
	}{
		{
			name:     "utc suffix ignores unit zone",
			raw:      "2024-06-01T10:00:00Z",
			zone:     "America/Manaus",
			expected: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit offset is authoritative",
			raw:      "2024-06-01T10:00:00+01:00",
			zone:     "America/Sao_Paulo",
			expected: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "local time in known zone",
			raw:      "2024-06-01T10:00:00",
			zone:     "America/Manaus",
			expected: time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name:     "unknown zone falls back to -03:00",
			raw:      "2024-06-01T10:00:00",
			zone:     "Europe/Nowhere",
			expected: time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "minute precision with space separator",
			raw:      "2024-06-01 10:30",
			zone:     "America/Sao_Paulo",
			expected: time.Date(2024, 6, 1, 13, 30, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			raw:      "2024-06-01T10:00:00.500",
			zone:     "UTC",
			expected: time.Date(2024, 6, 1, 10, 0, 0, 500000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.raw, tt.zone)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNormalizer_Normalize_Invalid(t *testing.T) {
	n := NewNormalizer(nil)

	for _, raw := range []string{"", "amanhã às 10", "2024-13-01T10:00:00", "2024-06-01T25:00:00Z"} {
		_, err := n.Normalize(raw, "America/Sao_Paulo")
		assert.ErrorIs(t, err, ErrInvalidTimestamp, raw)
	}
}

func TestNormalizer_DayBounds(t *testing.T) {
	n := NewNormalizer(DefaultOffsetTable())

	start, end, err := n.DayBounds("2024-06-01", "America/Sao_Paulo")
	require.NoError(t, err)

	assert.True(t, time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC).Equal(start))
	assert.True(t, time.Date(2024, 6, 2, 3, 0, 0, 0, time.UTC).Equal(end))

	_, _, err = n.DayBounds("01/06/2024", "America/Sao_Paulo")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewOffsetTable(t *testing.T) {
	table, err := NewOffsetTable(map[string]string{"Europe/Lisbon": "+00:00"}, "")
	require.NoError(t, err)

	assert.Equal(t, "+00:00", table.Offset("Europe/Lisbon"))
	assert.Equal(t, "-03:00", table.Offset("America/Sao_Paulo"))
	assert.Equal(t, "-03:00", table.Default())

	_, err = NewOffsetTable(map[string]string{"X": "3h"}, "")
	assert.ErrorIs(t, err, ErrInvalidOffset)

	_, err = NewOffsetTable(nil, "+25:00")
	assert.ErrorIs(t, err, ErrInvalidOffset)
}
