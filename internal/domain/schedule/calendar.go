package schedule

import "time"

// GridCells is the size of a month grid: 6 weeks of 7 days, Monday first.
const GridCells = 42

// MonthGrid is the calendar page for one month. Cells outside the month
// hold zero; cells inside hold the day of month in order.
type MonthGrid struct {
	Year  int
	Month time.Month

	cells [GridCells]int
}

// NewMonthGrid builds the grid for (year, month). Pure function of its inputs.
func NewMonthGrid(year int, month time.Month) MonthGrid {
	g := MonthGrid{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := ISOWeekday(first) - 1

	for day := 1; day <= DaysInMonth(year, month); day++ {
		g.cells[offset+day-1] = day
	}

	return g
}

// Cells returns all 42 cell values in order.
func (g MonthGrid) Cells() []int {
	out := make([]int, GridCells)
	copy(out, g.cells[:])
	return out
}

// Weeks returns the grid as 6 rows of 7 cells.
func (g MonthGrid) Weeks() [6][7]int {
	var weeks [6][7]int
	for i, v := range g.cells {
		weeks[i/7][i%7] = v
	}
	return weeks
}

// Days returns the non-zero cells, i.e. 1..daysInMonth ascending.
func (g MonthGrid) Days() []int {
	days := make([]int, 0, DaysInMonth(g.Year, g.Month))
	for _, v := range g.cells {
		if v != 0 {
			days = append(days, v)
		}
	}
	return days
}

// DaysInMonth returns the Gregorian length of (year, month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ISOWeekday maps time.Weekday to ISO numbering: 1=Monday .. 7=Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
