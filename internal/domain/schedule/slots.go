package schedule

import (
	"fmt"
	"time"

	"github.com/avtoservice/workshop-scheduler/internal/httperr"
)

// Granularity is the slot step. Only two values are recognized; anything
// else in a service's configuration is rejected.
type Granularity int

const (
	Granularity30 Granularity = 30
	Granularity60 Granularity = 60
)

// ParseGranularity validates a configured slot step in minutes.
func ParseGranularity(minutes int) (Granularity, error) {
	switch minutes {
	case 30:
		return Granularity30, nil
	case 60:
		return Granularity60, nil
	default:
		return 0, httperr.ErrBusiness("unsupported_granularity")
	}
}

// Duration returns the granularity as a time.Duration.
func (g Granularity) Duration() time.Duration {
	return time.Duration(g) * time.Minute
}

// Clock is a time of day, independent of any date or location.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a zero padded "HH:MM" label.
func ParseClock(hm string) (Clock, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return Clock{}, httperr.ErrBusiness("invalid_hours")
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// SlotLabels generates the ordered slot start labels from opens to closes
// inclusive, stepped by the granularity. A closing time before the opening
// time yields an empty list, not an error: the caller decides whether a
// degenerate configuration is worth reporting.
func SlotLabels(opens, closes Clock, g Granularity) []string {
	step := int(g)

	var labels []string
	for m := opens.Minutes(); m <= closes.Minutes(); m += step {
		labels = append(labels, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return labels
}
