package kernel

import "time"

// Clock is the time source used by aggregates that stamp themselves,
// injected so callers and tests control "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns wall-clock time in UTC, truncated to microseconds
// so values survive a round trip through a postgres timestamp column.
func SystemClock() Clock {
	return ClockFunc(func() time.Time {
		return time.Now().UTC().Truncate(time.Microsecond)
	})
}
