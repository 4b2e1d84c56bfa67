package core

import (
	"time"
)

// TimeProvider abstracts the clock so timestamps can be fixed in tests
type TimeProvider interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}
