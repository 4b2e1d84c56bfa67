package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
)

// PoolHealth is one sample of the connection pool together with a ping result
type PoolHealth struct {
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	Driver    string    `json:"driver"`
	Open      int       `json:"open"`
	Idle      int       `json:"idle"`
	InUse     int       `json:"inUse"`
	MaxOpen   int       `json:"maxOpen"`
	WaitCount int64     `json:"waitCount"`
	WaitTime  string    `json:"waitTime"`
	SampledAt time.Time `json:"sampledAt"`
}

// ConnectionPoolMonitor pings the database on an interval and keeps the
// latest pool sample
type ConnectionPoolMonitor struct {
	db           *sql.DB
	driver       string
	pingTimeout  time.Duration
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mutex    sync.RWMutex
	last     PoolHealth
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a monitor for an open pool
func NewConnectionPoolMonitor(db *sql.DB, driver string, pingTimeout time.Duration, logger coreport.Logger, timeProvider coreport.TimeProvider) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:           db,
		driver:       driver,
		pingTimeout:  pingTimeout,
		logger:       logger,
		timeProvider: timeProvider,
		stopChan:     make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.Sample(context.Background())

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sample(context.Background())
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop ends the sampling loop. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Last returns the latest sample without touching the database
func (m *ConnectionPoolMonitor) Last() PoolHealth {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

// Sample pings the database, records the pool stats and returns them
func (m *ConnectionPoolMonitor) Sample(ctx context.Context) PoolHealth {
	ctx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	defer cancel()

	pingErr := m.db.PingContext(ctx)
	stats := m.db.Stats()

	health := PoolHealth{
		Healthy:   pingErr == nil,
		Driver:    m.driver,
		Open:      stats.OpenConnections,
		Idle:      stats.Idle,
		InUse:     stats.InUse,
		MaxOpen:   stats.MaxOpenConnections,
		WaitCount: stats.WaitCount,
		WaitTime:  stats.WaitDuration.String(),
		SampledAt: m.timeProvider.Now(),
	}
	if pingErr != nil {
		health.Error = pingErr.Error()
		m.logger.Error("Database ping failed", map[string]any{
			"error": pingErr.Error(),
		})
	}

	m.mutex.Lock()
	m.last = health
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 1 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return health
}
