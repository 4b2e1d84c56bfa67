package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/security"
	timeadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	mocksecurity "github.com/amirhossein-jamali/finance-records/mocks/port/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []messaging.RecordEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e messaging.RecordEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) actions(kind string) []messaging.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []messaging.Action
	for _, e := range p.events {
		if e.Kind == kind {
			out = append(out, e.Action)
		}
	}
	return out
}

type scenario struct {
	t         *testing.T
	router    *gin.Engine
	token     string
	publisher *recordingPublisher
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	gin.SetMode(gin.TestMode)

	appLogger := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, appLogger)
	db := testDB.Connect(t)
	clock := timeadapter.NewRealTimeProvider()

	tokens, err := security.NewJWTTokenService("scenario-secret-scenario-secret-32", "finance-records", time.Hour, clock)
	require.NoError(t, err)

	verifier := mocksecurity.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "google-id-token").Return(entity.Identity{
		Subject: "google-1",
		Email:   "ana@example.com",
		Name:    "Ana",
	}, nil).Maybe()

	publisher := &recordingPublisher{}
	router := buildRouter(dependencies{
		db:           db,
		probe:        testDB.Manager,
		uow:          testDB.Manager.CreateUnitOfWork(),
		verifier:     verifier,
		tokens:       tokens,
		publisher:    publisher,
		timeProvider: clock,
		logger:       appLogger,
	})
	return &scenario{t: t, router: router, publisher: publisher}
}

func (s *scenario) request(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *scenario) login() {
	s.t.Helper()
	w := s.request(http.MethodPost, "/api/auth/google", `{"idToken":"google-id-token"}`)
	require.Contains(s.t, []int{http.StatusOK, http.StatusCreated}, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	s.token = resp.Token
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestScenario_TransactionLifecycle(t *testing.T) {
	s := newScenario(t)

	w := s.request(http.MethodGet, "/api/records/transactions", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/auth/google", `{"idToken":"google-id-token"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s.login()

	w = s.request(http.MethodGet, "/api/auth/verify", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", decodeBody[dto.UserResponse](t, w).UserName)

	w = s.request(http.MethodPost, "/api/records/transactions",
		`{"transactionType":"expense","amount":"100.00","account":"Cash","subcategory":"Food"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[dto.TransactionResponse](t, w)
	path := fmt.Sprintf("/api/records/transactions/%d", created.TransactionID)

	w = s.request(http.MethodGet, "/api/records/transactions?search=Cash", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeBody[dto.PagedResponse[dto.TransactionResponse]](t, w)
	require.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, created.TransactionID, page.Items[0].TransactionID)
	require.NotNil(t, page.Items[0].User)
	assert.Equal(t, "ana@example.com", page.Items[0].User.Email)

	w = s.request(http.MethodPatch, path, `{"note":"lunch"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[dto.TransactionResponse](t, w)
	assert.Equal(t, "100.00", updated.Amount)
	assert.Equal(t, "lunch", updated.Note)
	assert.Equal(t, "Cash", updated.Account)
	require.NotNil(t, updated.UpdatedAt)

	w = s.request(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lunch", decodeBody[dto.TransactionResponse](t, w).Note)

	assert.Equal(t, http.StatusNoContent, s.request(http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodDelete, path, "").Code)

	w = s.request(http.MethodGet, "/api/records/transactions?search=Cash", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), decodeBody[dto.PagedResponse[dto.TransactionResponse]](t, w).TotalCount)

	assert.Equal(t,
		[]messaging.Action{messaging.ActionCreated, messaging.ActionUpdated, messaging.ActionDeleted},
		s.publisher.actions(entity.TransactionSchema.Name))
}

func TestScenario_AppURLRequiresTransaction(t *testing.T) {
	s := newScenario(t)
	s.login()

	w := s.request(http.MethodPost, "/api/records/app-urls", `{"url":"https://app.example.com/x","transactionId":999}`)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = s.request(http.MethodPost, "/api/records/transactions",
		`{"transactionType":2,"amount":50,"account":"Bank","subcategory":"Refund"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	txID := decodeBody[dto.TransactionResponse](t, w).TransactionID

	body := fmt.Sprintf(`{"url":"https://app.example.com/x","transactionId":%d}`, txID)
	w = s.request(http.MethodPost, "/api/records/app-urls", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appURL := decodeBody[dto.AppURLResponse](t, w)

	w = s.request(http.MethodPost, "/api/records/app-urls", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	path := fmt.Sprintf("/api/records/app-urls/%d", appURL.AppURLID)
	w = s.request(http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[dto.AppURLResponse](t, w)
	require.NotNil(t, got.Transaction)
	assert.Equal(t, "50.00", got.Transaction.Amount)

	assert.Equal(t, http.StatusNoContent, s.request(http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodPatch, path, `{"isFinished":true}`).Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodDelete, path, "").Code)
}

func TestScenario_Health(t *testing.T) {
	s := newScenario(t)

	w := s.request(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"healthy":true`)
}

func TestScenario_BalancesPageNewestFirst(t *testing.T) {
	s := newScenario(t)
	s.login()

	for i := 1; i <= 3; i++ {
		w := s.request(http.MethodPost, "/api/records/balances",
			fmt.Sprintf(`{"account":"Bank","amount":"%d.00","date":"2025.01.0%d"}`, i*10, i))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.request(http.MethodGet, "/api/records/balances?pageSize=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeBody[dto.PagedResponse[dto.BalanceResponse]](t, w)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "30.00", page.Items[0].Amount)

	w = s.request(http.MethodGet, "/api/records/balances?sortBy=amount&sortOrder=asc&page=2&pageSize=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	page = decodeBody[dto.PagedResponse[dto.BalanceResponse]](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "30.00", page.Items[0].Amount)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestScenario_OutOfRangeAddressing(t *testing.T) {
	s := newScenario(t)
	s.login()

	for i := 1; i <= 2; i++ {
		w := s.request(http.MethodPost, "/api/records/balances",
			fmt.Sprintf(`{"account":"Bank","amount":"%d.00","date":"2025.02.0%d"}`, i, i))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.request(http.MethodGet, "/api/records/balances?page=9223372036854775807&pageSize=5", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decodeBody[dto.PagedResponse[dto.BalanceResponse]](t, w)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(2), page.TotalCount)
	assert.False(t, page.HasNextPage)

	path := "/api/records/balances/18446744073709551615"
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodGet, path, "").Code)
	assert.Equal(t, http.StatusNotFound, s.request(http.MethodDelete, path, "").Code)
}
