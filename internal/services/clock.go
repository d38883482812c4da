package services

import "time"

// Clock returns the current instant. Services take one so tests can pin time.
type Clock func() time.Time

// SystemClock is UTC wall time truncated to the microsecond precision
// Firestore keeps, so a stored record reads back identical.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
