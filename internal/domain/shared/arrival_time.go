package shared

import (
	"fmt"
	"time"
)

// Clock is an abstraction for time operations, allowing time to be fixed in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time
type RealClock struct{}

// Now returns the current system time in UTC
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always reports the same instant
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// ArrivalTime is an immutable tick count translated to wall-clock time
// using the game's tick interval
type ArrivalTime struct {
	ticks int
	at    time.Time
}

// NewArrivalTime projects ticks from now. A zero tick interval yields a zero
// timestamp; the tick count is still carried.
func NewArrivalTime(now time.Time, ticks int, tickInterval time.Duration) (ArrivalTime, error) {
	if ticks < 0 {
		return ArrivalTime{}, NewInvalidInputError("ticks", fmt.Sprintf("must be >= 0, got %d", ticks))
	}
	if tickInterval < 0 {
		return ArrivalTime{}, NewInvalidInputError("tick_interval", "must be >= 0")
	}
	if tickInterval == 0 {
		return ArrivalTime{ticks: ticks}, nil
	}
	return ArrivalTime{
		ticks: ticks,
		at:    now.Add(time.Duration(ticks) * tickInterval),
	}, nil
}

// Ticks returns the number of ticks until arrival
func (a ArrivalTime) Ticks() int {
	return a.ticks
}

// At returns the projected arrival instant, zero when the tick interval is unknown
func (a ArrivalTime) At() time.Time {
	return a.at
}

// WaitFrom returns the wall-clock wait from now, never negative
func (a ArrivalTime) WaitFrom(now time.Time) time.Duration {
	if a.at.IsZero() || a.at.Before(now) {
		return 0
	}
	return a.at.Sub(now)
}

func (a ArrivalTime) String() string {
	if a.at.IsZero() {
		return fmt.Sprintf("ArrivalTime(%d ticks)", a.ticks)
	}
	return fmt.Sprintf("ArrivalTime(%d ticks, %s)", a.ticks, a.at.Format(time.RFC3339))
}
