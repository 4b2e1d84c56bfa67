package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func cashTransaction(id uint64) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("100"),
		Account:     "Cash",
		Subcategory: "Food",
		CreatedAt:   fixedNow,
		IsActive:    true,
		UserID:      "user-1",
	}
}

func TestTransactionHandler_List(t *testing.T) {
	testCases := []struct {
		name          string
		path          string
		expectedQuery usecase.ListQuery
	}{
		{
			name:          "Defaults sort ascending",
			path:          "/api/records/transactions",
			expectedQuery: usecase.ListQuery{},
		},
		{
			name:          "All parameters",
			path:          "/api/records/transactions?page=2&pageSize=5&sortBy=amount&sortOrder=desc&search=Cash",
			expectedQuery: usecase.ListQuery{Page: 2, PageSize: 5, SortBy: "amount", Descending: true, Search: "Cash"},
		},
		{
			name:          "Upper case order",
			path:          "/api/records/transactions?sortOrder=DESC",
			expectedQuery: usecase.ListQuery{Descending: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signedIn()
			f.transactions.EXPECT().List(mock.Anything, "user-1", tc.expectedQuery).Return(record.Result[*entity.Transaction]{
				Items:      []*entity.Transaction{cashTransaction(6), cashTransaction(7)},
				TotalCount: 12,
				Page:       2,
				PageSize:   5,
			}, nil).Once()

			w := f.do(http.MethodGet, tc.path, nil)

			require.Equal(t, http.StatusOK, w.Code)
			page := decode[dto.PagedResponse[dto.TransactionResponse]](t, w)
			assert.Len(t, page.Items, 2)
			assert.Equal(t, int64(12), page.TotalCount)
			assert.Equal(t, 2, page.CurrentPage)
			assert.Equal(t, 3, page.TotalPages)
			assert.True(t, page.HasPreviousPage)
			assert.True(t, page.HasNextPage)
			assert.Equal(t, "100.00", page.Items[0].Amount)
			assert.Equal(t, "expense", page.Items[0].TransactionType)
		})
	}
}

func TestTransactionHandler_ListRejectsBadParameters(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn()

	for _, path := range []string{
		"/api/records/transactions?page=abc",
		"/api/records/transactions?sortOrder=sideways",
	} {
		w := f.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		setupMocks     func(f *apiFixture)
		expectedStatus int
	}{
		{
			name: "Found with owner",
			path: "/api/records/transactions/5",
			setupMocks: func(f *apiFixture) {
				tx := cashTransaction(5)
				tx.User = f.user
				f.transactions.EXPECT().Get(mock.Anything, "user-1", uint64(5)).Return(tx, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/api/records/transactions/9",
			setupMocks: func(f *apiFixture) {
				f.transactions.EXPECT().Get(mock.Anything, "user-1", uint64(9)).
					Return(nil, domainerr.NewRecordError("transaction", uint64(9), "get", domainerr.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed id",
			path:           "/api/records/transactions/abc",
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero id",
			path:           "/api/records/transactions/0",
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Id beyond key range",
			path:           "/api/records/transactions/18446744073709551615",
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Id just past int64",
			path:           "/api/records/transactions/9223372036854775808",
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signedIn()
			tc.setupMocks(f)

			w := f.do(http.MethodGet, tc.path, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				resp := decode[dto.TransactionResponse](t, w)
				require.NotNil(t, resp.User)
				assert.Equal(t, "Ana", resp.User.UserName)
			}
		})
	}
}

func TestTransactionHandler_Create(t *testing.T) {
	testCases := []struct {
		name           string
		body           any
		setupMocks     func(f *apiFixture)
		expectedStatus int
		expectedCode   int
	}{
		{
			name: "Created for the session user",
			body: `{"transactionType":"expense","amount":"100.00","account":"Cash","subcategory":"Food","userId":"someone-else"}`,
			setupMocks: func(f *apiFixture) {
				f.transactions.EXPECT().Create(mock.Anything, "user-1", mock.MatchedBy(func(tx *entity.Transaction) bool {
					return tx.Account == "Cash" && tx.Amount.Equal(decimal.NewFromInt(100)) && tx.Type == entity.TransactionTypeExpense
				})).Return(cashTransaction(11), nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Numeric type and amount",
			body:           `{"transactionType":2,"amount":12.5,"account":"Bank","subcategory":"Salary","fee":null}`,
			expectedStatus: http.StatusCreated,
			setupMocks: func(f *apiFixture) {
				f.transactions.EXPECT().Create(mock.Anything, "user-1", mock.MatchedBy(func(tx *entity.Transaction) bool {
					return tx.Type == entity.TransactionTypeIncome && tx.Amount.Equal(decimal.RequireFromString("12.5")) && !tx.Fee.Valid
				})).Return(cashTransaction(12), nil).Once()
			},
		},
		{
			name:           "Missing amount",
			body:           `{"transactionType":1,"account":"Cash","subcategory":"Food"}`,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeInvalidRequest,
		},
		{
			name:           "Unknown type",
			body:           `{"transactionType":"gift","amount":1,"account":"Cash","subcategory":"Food"}`,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Rule violation",
			body: `{"transactionType":1,"amount":"1.234","account":"Cash","subcategory":"Food"}`,
			setupMocks: func(f *apiFixture) {
				f.transactions.EXPECT().Create(mock.Anything, "user-1", mock.Anything).
					Return(nil, domainerr.ErrInvalidAmount).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeInvalidAmount,
		},
		{
			name: "Storage failure",
			body: `{"transactionType":1,"amount":1,"account":"Cash","subcategory":"Food"}`,
			setupMocks: func(f *apiFixture) {
				f.transactions.EXPECT().Create(mock.Anything, "user-1", mock.Anything).
					Return(nil, errors.New("connection reset by peer")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   domainerr.CodeInternalServer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signedIn()
			tc.setupMocks(f)

			w := f.do(http.MethodPost, "/api/records/transactions", tc.body)

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
			switch {
			case tc.expectedStatus == http.StatusCreated:
				assert.NotEmpty(t, w.Header().Get("Location"))
			case tc.expectedCode != 0:
				body := decode[dto.ErrorResponse](t, w)
				assert.Equal(t, tc.expectedCode, body.Code)
				assert.NotEmpty(t, body.RequestID)
				if tc.expectedStatus == http.StatusInternalServerError {
					assert.Equal(t, "Internal server error", body.Message)
				}
			}
		})
	}
}

func TestTransactionHandler_UpdateSendsOnlyPresentFields(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn()

	var got entity.TransactionPatch
	f.transactions.EXPECT().Update(mock.Anything, "user-1", uint64(4), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ uint64, p entity.TransactionPatch) (*entity.Transaction, error) {
			got = p
			tx := cashTransaction(4)
			tx.Note = "lunch"
			return tx, nil
		}).Once()

	w := f.do(http.MethodPatch, "/api/records/transactions/4", `{"note":"lunch","tags":null}`)

	require.Equal(t, http.StatusOK, w.Code)
	note, ok := got.Note.Get()
	assert.True(t, ok)
	assert.Equal(t, "lunch", note)
	assert.False(t, got.Tags.IsSet())
	assert.False(t, got.Amount.IsSet())
	assert.Equal(t, "lunch", decode[dto.TransactionResponse](t, w).Note)
}

func TestTransactionHandler_Delete(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn()
	f.transactions.EXPECT().Delete(mock.Anything, "user-1", uint64(3)).Return(nil).Once()
	f.transactions.EXPECT().Delete(mock.Anything, "user-1", uint64(3)).
		Return(domainerr.NewRecordError("transaction", uint64(3), "delete", domainerr.ErrNotFound)).Once()

	first := f.do(http.MethodDelete, "/api/records/transactions/3", nil)
	second := f.do(http.MethodDelete, "/api/records/transactions/3", nil)

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestTransactionHandler_RequiresSession(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		header     string
		setupMocks func(f *apiFixture)
	}{
		{
			name:       "No token",
			setupMocks: func(*apiFixture) {},
		},
		{
			name:       "Query token outside export",
			target:     "/api/records/transactions?token=" + sessionToken,
			setupMocks: func(*apiFixture) {},
		},
		{
			name:       "Query token on a record",
			target:     "/api/records/transactions/1?token=" + sessionToken,
			setupMocks: func(*apiFixture) {},
		},
		{
			name:   "Rejected token",
			header: "Bearer stale",
			setupMocks: func(f *apiFixture) {
				f.auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerr.ErrInvalidToken).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t)
			tc.setupMocks(f)

			target := tc.target
			if target == "" {
				target = "/api/records/transactions"
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestTransactionHandler_Export(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Authenticate(mock.Anything, "link-token").Return(f.user, nil).Once()
	f.transactions.EXPECT().Export(mock.Anything, "user-1", "Cash").
		Return([]*entity.Transaction{cashTransaction(1), cashTransaction(2)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/records/transactions/export?search=Cash&token=link-token", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_20250520.xlsx")

	book, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestTransactionHandler_ExportPrefersHeader(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn()
	f.transactions.EXPECT().Export(mock.Anything, "user-1", "").Return([]*entity.Transaction{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/records/transactions/export?token=ignored", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	f.auth.AssertNotCalled(t, "Authenticate", mock.Anything, "ignored")
}
