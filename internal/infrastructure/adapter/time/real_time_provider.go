package time

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time in UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// FixedTimeProvider always reports the same instant. Since is measured from it.
type FixedTimeProvider struct {
	At time.Time
}

// NewFixedTimeProvider creates a clock frozen at t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{At: t}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}

// Since returns the distance between the frozen instant and t
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.At.Sub(t)
}

// Advance moves the frozen instant forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.At = p.At.Add(d)
}
