package database

import (
	"context"
	"errors"
	"testing"
	"time"

	timeadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	mocks "github.com/amirhossein-jamali/finance-records/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := func() (string, int64) { return "SELECT * FROM `transactions` WHERE id = 1", 1 }

	testCases := []struct {
		name       string
		level      string
		elapsed    time.Duration
		err        error
		setupMocks func(l *mocks.MockLogger)
	}{
		{
			name:    "Error",
			level:   "warn",
			elapsed: time.Millisecond,
			err:     errors.New("syntax error"),
			setupMocks: func(l *mocks.MockLogger) {
				l.EXPECT().Error("SQL error", mock.MatchedBy(func(f map[string]any) bool {
					return f["error"] == "syntax error" && f["table"] == "transactions" && f["type"] == "SELECT"
				})).Once()
			},
		},
		{
			name:    "Not found is not an error",
			level:   "warn",
			elapsed: time.Millisecond,
			err:     gorm.ErrRecordNotFound,
		},
		{
			name:    "Slow query",
			level:   "warn",
			elapsed: time.Second,
			setupMocks: func(l *mocks.MockLogger) {
				l.EXPECT().Warn("Slow SQL query", mock.Anything).Once()
			},
		},
		{
			name:    "Regular query at info",
			level:   "info",
			elapsed: time.Millisecond,
			setupMocks: func(l *mocks.MockLogger) {
				l.EXPECT().Debug("SQL query", mock.Anything).Once()
			},
		},
		{
			name:    "Silent",
			level:   "silent",
			elapsed: time.Hour,
			err:     errors.New("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core := mocks.NewMockLogger(t)
			if tc.setupMocks != nil {
				tc.setupMocks(core)
			}
			clock := timeadapter.NewFixedTimeProvider(begin.Add(tc.elapsed))

			l := NewDatabaseLogger(core, clock, tc.level, 200*time.Millisecond)
			l.Trace(context.Background(), begin, query, tc.err)
		})
	}
}

func TestDatabaseLogger_LogMode(t *testing.T) {
	core := mocks.NewMockLogger(t)
	l := NewDatabaseLogger(core, timeadapter.NewRealTimeProvider(), "info", 0)

	silent := l.LogMode(logger.Silent)
	silent.Info(context.Background(), "hidden %d", 1)

	core.EXPECT().Info("shown 2", map[string]any{"source": "database"}).Once()
	l.Info(context.Background(), "shown %d", 2)
}

func TestExtractHelpers(t *testing.T) {
	assert.Equal(t, "INSERT", extractQueryType(`  insert into "users" (id) values ($1)`))
	assert.Equal(t, "", extractQueryType("PRAGMA foreign_keys"))

	assert.Equal(t, "users", extractTableName(`INSERT INTO "users" ("id") VALUES ($1)`))
	assert.Equal(t, "app_urls", extractTableName("UPDATE `app_urls` SET `url`=?"))
	assert.Equal(t, "balances", extractTableName("SELECT count(*) FROM balances"))
	assert.Equal(t, "", extractTableName("BEGIN"))
}
