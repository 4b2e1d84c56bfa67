package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/database"
	timeadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	mockusecase "github.com/amirhossein-jamali/finance-records/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProbe struct {
	health database.PoolHealth
}

func (p stubProbe) Health(context.Context) database.PoolHealth { return p.health }

func TestHealthHandler_Check(t *testing.T) {
	testCases := []struct {
		name       string
		probe      handler.DatabaseProbe
		expectCode int
		expectBody []string
	}{
		{
			name:       "Process only",
			expectCode: http.StatusOK,
			expectBody: []string{`"status":"ok"`},
		},
		{
			name:       "Database up",
			probe:      stubProbe{database.PoolHealth{Healthy: true, Driver: "sqlite", Open: 1, MaxOpen: 1}},
			expectCode: http.StatusOK,
			expectBody: []string{`"status":"ok"`, `"healthy":true`, `"driver":"sqlite"`},
		},
		{
			name:       "Database down",
			probe:      stubProbe{database.PoolHealth{Driver: "postgres", Error: "connection refused"}},
			expectCode: http.StatusServiceUnavailable,
			expectBody: []string{`"status":"degraded"`, `"error":"connection refused"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			logger := quietLogger(t)
			auth := mockusecase.NewMockAuthUseCase(t)

			router := routes.NewRouter(routes.Handlers{
				Health:       handler.NewHealthHandler(tc.probe),
				Auth:         handler.NewAuthHandler(auth, logger),
				Transactions: handler.NewTransactionHandler(mockusecase.NewMockTransactionUseCase(t), timeadapter.NewFixedTimeProvider(fixedNow), logger),
				AppURLs:      handler.NewAppURLHandler(mockusecase.NewMockAppURLUseCase(t), logger),
				Balances:     handler.NewBalanceHandler(mockusecase.NewMockBalanceUseCase(t), logger),
			}, auth, logger, timeadapter.NewFixedTimeProvider(fixedNow))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.expectCode, w.Code)
			for _, fragment := range tc.expectBody {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}
