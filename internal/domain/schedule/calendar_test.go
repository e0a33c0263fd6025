package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "%d-%d", tt.year, tt.month)
	}
}

func TestMonthGrid_NonZeroCellsAreTheMonth(t *testing.T) {
	// Flattened and filtered to non-zero, the grid must be exactly
	// 1..daysInMonth for any month.
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := NewMonthGrid(year, month)

			var nonZero []int
			for _, v := range grid.Cells() {
				if v != 0 {
					nonZero = append(nonZero, v)
				}
			}

			n := DaysInMonth(year, month)
			require.Len(t, nonZero, n, "%d-%d", year, month)
			for i, v := range nonZero {
				require.Equal(t, i+1, v, "%d-%d", year, month)
			}

			assert.Equal(t, nonZero, grid.Days())
		}
	}
}

func TestMonthGrid_MondayFirstOffset(t *testing.T) {
	// June 2025 starts on a Sunday: six leading zero cells.
	grid := NewMonthGrid(2025, time.June)
	cells := grid.Cells()

	for i := 0; i < 6; i++ {
		assert.Zero(t, cells[i])
	}
	assert.Equal(t, 1, cells[6])

	// February 2021 starts on a Monday and has 28 days: exactly four
	// full rows, then two empty ones.
	grid = NewMonthGrid(2021, time.February)
	cells = grid.Cells()

	assert.Equal(t, 1, cells[0])
	assert.Equal(t, 28, cells[27])
	for i := 28; i < GridCells; i++ {
		assert.Zero(t, cells[i])
	}
}

func TestMonthGrid_Weeks(t *testing.T) {
	grid := NewMonthGrid(2025, time.March)

	weeks := grid.Weeks()
	cells := grid.Cells()

	var flat []int
	for _, w := range weeks {
		flat = append(flat, w[:]...)
	}
	assert.Equal(t, cells, flat)

	// March 1st 2025 is a Saturday.
	assert.Equal(t, [7]int{0, 0, 0, 0, 0, 1, 2}, weeks[0])
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), 1},  // Monday
		{time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), 5},  // Friday
		{time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC), 6},  // Saturday
		{time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), 7},  // Sunday
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ISOWeekday(tt.date), tt.date.Format("2006-01-02"))
	}
}
