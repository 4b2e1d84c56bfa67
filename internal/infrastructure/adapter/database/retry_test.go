package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/repository"
	mocks "github.com/amirhossein-jamali/finance-records/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastRetry(n int) RetryConfig {
	return RetryConfig{MaxRetries: n, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	testCases := []struct {
		name     string
		errs     []error
		expCalls int
		expErr   bool
	}{
		{"Succeeds first time", []error{nil}, 1, false},
		{"Retries deadlock", []error{errors.New("deadlock detected"), nil}, 2, false},
		{"Gives up", []error{errors.New("deadlock detected"), errors.New("deadlock detected"), errors.New("deadlock detected")}, 3, true},
		{"Duplicate is final", []error{errors.New("duplicate key value"), nil}, 1, true},
		{"Domain error is final", []error{errors.New("validation failed"), nil}, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := mocks.NewMockLogger(t)
			logger.On("Warn", mock.Anything, mock.Anything).Maybe()
			logger.On("Error", mock.Anything, mock.Anything).Maybe()

			calls := 0
			err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
				e := tc.errs[calls]
				calls++
				return e
			}, repository.NewErrorClassifier(), logger)

			assert.Equal(t, tc.expCalls, calls)
			if tc.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetryOnTransientError_ContextCancelled(t *testing.T) {
	logger := mocks.NewMockLogger(t)
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 5, RetryInterval: time.Hour}, func() error {
		calls++
		cancel()
		return errors.New("connection reset by peer")
	}, repository.NewErrorClassifier(), logger)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	got := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, got, 10*time.Millisecond)
	assert.LessOrEqual(t, got, 15*time.Millisecond)
}
