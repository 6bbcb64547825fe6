package workshop

import "time"

// INR is a helper for tests to create rupee money from const.
func INR(v float64) Money { return M(v, "INR") }

// fixedClock returns a clock frozen at the given instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// testInstant is an arbitrary fixed instant used by lifecycle tests.
var testInstant = time.Date(2024, time.December, 26, 10, 30, 0, 0, time.UTC)
