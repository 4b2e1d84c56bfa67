package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), time.Duration(0))
}

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	p := NewFixedTimeProvider(start)

	assert.Equal(t, start, p.Now())

	p.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), p.Now())
	assert.Equal(t, time.Minute, p.Since(start))
}
