package domain

import "time"

// Clock supplies the current time for expiry checks. Injecting it keeps
// expiry logic deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the real-time clock.
func SystemClock() Clock { return systemClock{} }

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock{}
	}
	return c
}

// dateOnly truncates a time to its calendar date. Expiry comparisons work at
// day granularity: a product is fresh through the whole of its expiry date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
