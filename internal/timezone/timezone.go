package timezone

import "time"

// Workshops run on local wall-clock time; the current month for
// reconciliation is derived from it.
const DefaultTimezone = "Europe/Moscow"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
