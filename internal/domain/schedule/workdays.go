package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avtoservice/workshop-scheduler/internal/httperr"
)

// WeekdaySet is a set of ISO weekday indices (1=Monday .. 7=Sunday).
type WeekdaySet map[int]struct{}

// ParseWeekdaySet parses the stored comma separated form, e.g. "1,2,3,4,5".
// An empty string is a valid empty set: the service simply never works.
func ParseWeekdaySet(csv string) (WeekdaySet, error) {
	set := WeekdaySet{}

	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 7 {
			return nil, httperr.ErrBusiness("invalid_working_days")
		}
		set[n] = struct{}{}
	}

	return set, nil
}

// Contains reports whether weekday (ISO) is in the set.
func (s WeekdaySet) Contains(weekday int) bool {
	_, ok := s[weekday]
	return ok
}

// String renders the set back to the stored comma separated form.
func (s WeekdaySet) String() string {
	days := make([]int, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Ints(days)

	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// WorkingDays filters the month's days down to those whose ISO weekday is in
// the set, preserving ascending day order. An empty set yields an empty list.
func WorkingDays(year int, month time.Month, set WeekdaySet) []int {
	grid := NewMonthGrid(year, month)

	var working []int
	for _, day := range grid.Days() {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if set.Contains(ISOWeekday(date)) {
			working = append(working, day)
		}
	}
	return working
}
