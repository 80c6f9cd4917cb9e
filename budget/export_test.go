package budget

import "time"

// NewWithNow exposes a clock driven by a fake time source.
func NewWithNow(limit time.Duration, now func() time.Time) *Clock {
	return newClock(limit, now)
}
