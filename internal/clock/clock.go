// Package clock supplies the current time as an injected collaborator so
// lifecycle timestamps are deterministic in tests.
package clock

import "time"

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}
