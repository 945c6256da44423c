package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "iso passes through", input: "2025-03-01", expected: "2025-03-01"},
		{name: "display form converted", input: "01.03.2025", expected: "2025-03-01"},
		{name: "display form across year", input: "31.12.2024", expected: "2024-12-31"},
		{name: "garbage rejected", input: "next tuesday", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "us slash format rejected", input: "03/01/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// The legacy client compared dd.mm.yyyy strings lexicographically, which
// orders "01.02.2025" before "15.01.2025" even though February 1st is the
// later day. Normalization reverses that verdict; this test pins down the
// intentional divergence from the old behavior.
func TestNormalizeDate_FixesLexicographicOrdering(t *testing.T) {
	displayA := "01.02.2025" // February 1st
	displayB := "15.01.2025" // January 15th

	// Raw display strings compare in the wrong order.
	assert.True(t, displayA < displayB)

	isoA, err := NormalizeDate(displayA)
	require.NoError(t, err)
	isoB, err := NormalizeDate(displayB)
	require.NoError(t, err)

	assert.True(t, Before(isoB, isoA))
	assert.False(t, Before(isoA, isoB))
}

func TestAddDays(t *testing.T) {
	t.Run("within month", func(t *testing.T) {
		got, err := AddDays("2025-03-01", 14)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15", got)
	})

	t.Run("across month boundary", func(t *testing.T) {
		got, err := AddDays("2025-03-25", 14)
		require.NoError(t, err)
		assert.Equal(t, "2025-04-08", got)
	})

	t.Run("across year boundary", func(t *testing.T) {
		got, err := AddDays("2025-12-28", 14)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-11", got)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := AddDays("28.12.2025", 14)
		assert.Error(t, err)
	})
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "01.03.2025", FormatDisplay("2025-03-01"))
	assert.Equal(t, "not-a-date", FormatDisplay("not-a-date"))
}
