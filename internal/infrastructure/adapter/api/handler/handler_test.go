package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/routes"
	timeadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/finance-records/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/finance-records/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionToken = "session-token"

var fixedNow = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

type apiFixture struct {
	router       *gin.Engine
	auth         *mockusecase.MockAuthUseCase
	transactions *mockusecase.MockTransactionUseCase
	appURLs      *mockusecase.MockAppURLUseCase
	balances     *mockusecase.MockBalanceUseCase
	user         *entity.User
}

func quietLogger(t *testing.T) coreport.Logger {
	logger := mockcore.NewMockLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(method, mock.Anything, mock.Anything).Maybe()
	}
	return logger
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		auth:         mockusecase.NewMockAuthUseCase(t),
		transactions: mockusecase.NewMockTransactionUseCase(t),
		appURLs:      mockusecase.NewMockAppURLUseCase(t),
		balances:     mockusecase.NewMockBalanceUseCase(t),
		user:         &entity.User{ID: "user-1", Email: "ana@example.com", UserName: "Ana", IsActive: true},
	}
	logger := quietLogger(t)
	clock := timeadapter.NewFixedTimeProvider(fixedNow)

	f.router = routes.NewRouter(routes.Handlers{
		Auth:         handler.NewAuthHandler(f.auth, logger),
		Transactions: handler.NewTransactionHandler(f.transactions, clock, logger),
		AppURLs:      handler.NewAppURLHandler(f.appURLs, logger),
		Balances:     handler.NewBalanceHandler(f.balances, logger),
	}, f.auth, logger, clock)
	return f
}

// signedIn lets the session token resolve to the fixture user
func (f *apiFixture) signedIn() {
	f.auth.EXPECT().Authenticate(mock.Anything, sessionToken).Return(f.user, nil).Maybe()
}

func (f *apiFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
