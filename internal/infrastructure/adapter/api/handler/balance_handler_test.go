package handler_test

import (
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBalanceHandler_List(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn()
	f.balances.EXPECT().List(mock.Anything, usecase.ListQuery{PageSize: 20, Descending: true, Search: "Bank"}).
		Return(record.Result[*entity.Balance]{
			Items:      []*entity.Balance{{ID: 3, Account: "Bank", Amount: decimal.RequireFromString("-20.5"), IsActive: true}},
			TotalCount: 1,
			Page:       1,
			PageSize:   20,
		}, nil).Once()

	w := f.do(http.MethodGet, "/api/records/balances?pageSize=20&search=Bank", nil)

	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.PagedResponse[dto.BalanceResponse]](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "-20.50", page.Items[0].Amount)
	assert.Equal(t, 1, page.TotalPages)
}

func TestBalanceHandler_CRUD(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		path           string
		body           any
		setupMocks     func(f *apiFixture)
		expectedStatus int
	}{
		{
			name:   "Create",
			method: http.MethodPost,
			path:   "/api/records/balances",
			body:   `{"account":"Bank","amount":"250.00","note":"opening"}`,
			setupMocks: func(f *apiFixture) {
				f.balances.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Balance) bool {
					return b.Account == "Bank" && b.Amount.Equal(decimal.NewFromInt(250)) && b.Note == "opening"
				})).Return(&entity.Balance{ID: 1, Account: "Bank", Amount: decimal.NewFromInt(250)}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Create without account",
			method:         http.MethodPost,
			path:           "/api/records/balances",
			body:           `{"amount":"1"}`,
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Get",
			method: http.MethodGet,
			path:   "/api/records/balances/1",
			setupMocks: func(f *apiFixture) {
				f.balances.EXPECT().Get(mock.Anything, uint64(1)).Return(&entity.Balance{ID: 1, Account: "Bank"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Update clears note",
			method: http.MethodPatch,
			path:   "/api/records/balances/1",
			body:   `{"note":""}`,
			setupMocks: func(f *apiFixture) {
				f.balances.EXPECT().Update(mock.Anything, uint64(1), mock.MatchedBy(func(p entity.BalancePatch) bool {
					note, ok := p.Note.Get()
					return ok && note == "" && !p.Account.IsSet()
				})).Return(&entity.Balance{ID: 1, Account: "Bank"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Delete inactive",
			method: http.MethodDelete,
			path:   "/api/records/balances/1",
			setupMocks: func(f *apiFixture) {
				f.balances.EXPECT().Delete(mock.Anything, uint64(1)).
					Return(domainerr.NewRecordError("balance", uint64(1), "delete", domainerr.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Zero id",
			method:         http.MethodDelete,
			path:           "/api/records/balances/0",
			setupMocks:     func(*apiFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signedIn()
			tc.setupMocks(f)

			w := f.do(tc.method, tc.path, tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
		})
	}
}
