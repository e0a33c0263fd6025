package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtoservice/workshop-scheduler/internal/httperr"
)

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity(30)
	require.NoError(t, err)
	assert.Equal(t, Granularity30, g)

	g, err = ParseGranularity(60)
	require.NoError(t, err)
	assert.Equal(t, Granularity60, g)

	for _, bad := range []int{0, 15, 45, 90, -30} {
		_, err := ParseGranularity(bad)
		assert.True(t, httperr.IsBusiness(err, "unsupported_granularity"), "minutes=%d", bad)
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9, Minute: 30}, c)
	assert.Equal(t, "09:30", c.String())
	assert.Equal(t, 570, c.Minutes())

	for _, bad := range []string{"", "9:99", "24:00", "noon", "10-00"} {
		_, err := ParseClock(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_hours"), "input=%q", bad)
	}
}

func TestSlotLabels_Hourly(t *testing.T) {
	opens, err := ParseClock("10:00")
	require.NoError(t, err)
	closes, err := ParseClock("20:00")
	require.NoError(t, err)

	labels := SlotLabels(opens, closes, Granularity60)

	require.Len(t, labels, 11)
	assert.Equal(t, "10:00", labels[0])
	assert.Equal(t, "11:00", labels[1])
	assert.Equal(t, "20:00", labels[10])
}

func TestSlotLabels_HalfHourly(t *testing.T) {
	opens, err := ParseClock("10:00")
	require.NoError(t, err)
	closes, err := ParseClock("20:00")
	require.NoError(t, err)

	labels := SlotLabels(opens, closes, Granularity30)

	require.Len(t, labels, 21)
	assert.Equal(t, "10:00", labels[0])
	assert.Equal(t, "10:30", labels[1])
	assert.Equal(t, "19:30", labels[19])
	assert.Equal(t, "20:00", labels[20])
}

func TestSlotLabels_ZeroPadding(t *testing.T) {
	opens, err := ParseClock("08:30")
	require.NoError(t, err)
	closes, err := ParseClock("09:30")
	require.NoError(t, err)

	labels := SlotLabels(opens, closes, Granularity30)
	assert.Equal(t, []string{"08:30", "09:00", "09:30"}, labels)
}

func TestSlotLabels_ClosingBeforeOpening(t *testing.T) {
	opens, err := ParseClock("20:00")
	require.NoError(t, err)
	closes, err := ParseClock("10:00")
	require.NoError(t, err)

	// Degenerate configuration yields an empty list, not an error.
	assert.Empty(t, SlotLabels(opens, closes, Granularity60))
}

func TestSlotLabels_SingleSlot(t *testing.T) {
	opens, err := ParseClock("12:00")
	require.NoError(t, err)

	labels := SlotLabels(opens, opens, Granularity60)
	assert.Equal(t, []string{"12:00"}, labels)
}
