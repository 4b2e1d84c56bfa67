package appurl

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/event"
	timeadapter "github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/time"
	mcore "github.com/amirhossein-jamali/finance-records/mocks/port/core"
	mmsg "github.com/amirhossein-jamali/finance-records/mocks/port/messaging"
	mpers "github.com/amirhossein-jamali/finance-records/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)

type fixture struct {
	service      *Service
	store        *mpers.MockRecordStore[*entity.AppURL]
	transactions *mpers.MockRecordStore[*entity.Transaction]
	publisher    *mmsg.MockEventPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := mpers.NewMockRecordStore[*entity.AppURL](t)
	transactions := mpers.NewMockRecordStore[*entity.Transaction](t)
	uow := mpers.NewMockUnitOfWork(t)
	publisher := mmsg.NewMockEventPublisher(t)
	logger := mcore.NewMockLogger(t)
	clock := timeadapter.NewFixedTimeProvider(now)

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()

	return &fixture{
		service:      NewAppURLUseCase(store, transactions, uow, clock, event.NewNotifier(publisher, clock, logger), logger),
		store:        store,
		transactions: transactions,
		publisher:    publisher,
	}
}

func (f *fixture) expectEvent(action messaging.Action, id uint64) {
	f.publisher.EXPECT().Publish(mock.Anything, messaging.RecordEvent{
		Kind:       "app_url",
		Action:     action,
		RecordID:   id,
		OccurredAt: now,
	}).Return(nil).Once()
}

func storedURL(id, txID uint64) *entity.AppURL {
	return &entity.AppURL{ID: id, URL: "https://bank.example/tx", TransactionID: txID, CreatedAt: now.Add(-time.Hour)}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		input       *entity.AppURL
		setupMocks  func(f *fixture)
		expectedErr error
	}{
		{
			name:  "Binds to free transaction",
			input: &entity.AppURL{URL: "https://bank.example/tx/1", TransactionID: 1},
			setupMocks: func(f *fixture) {
				f.transactions.EXPECT().Exists(mock.Anything, query.Eq("id", uint64(1))).Return(true, nil).Once()
				f.store.EXPECT().First(mock.Anything, query.Eq("transaction_id", uint64(1))).Return(nil, errs.ErrNotFound).Once()
				f.store.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, a *entity.AppURL) error {
					a.ID = 10
					return nil
				}).Once()
				f.expectEvent(messaging.ActionCreated, 10)
			},
		},
		{
			name:  "Missing transaction",
			input: &entity.AppURL{URL: "https://bank.example/tx/2", TransactionID: 2},
			setupMocks: func(f *fixture) {
				f.transactions.EXPECT().Exists(mock.Anything, query.Eq("id", uint64(2))).Return(false, nil).Once()
			},
			expectedErr: errs.ErrTransactionNotFound,
		},
		{
			name:  "Transaction already bound",
			input: &entity.AppURL{URL: "https://bank.example/tx/3", TransactionID: 3},
			setupMocks: func(f *fixture) {
				f.transactions.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Once()
				f.store.EXPECT().First(mock.Anything, query.Eq("transaction_id", uint64(3))).Return(storedURL(4, 3), nil).Once()
			},
			expectedErr: errs.ErrDuplicate,
		},
		{
			name:        "Missing url",
			input:       &entity.AppURL{TransactionID: 3},
			setupMocks:  func(f *fixture) {},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "Missing transaction id",
			input:       &entity.AppURL{URL: "https://bank.example"},
			setupMocks:  func(f *fixture) {},
			expectedErr: errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			created, err := f.service.Create(context.Background(), tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(10), created.ID)
			assert.Equal(t, now, created.CreatedAt)
			assert.False(t, created.IsFinished)
		})
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	stored := storedURL(7, 1)
	stored.Transaction = &entity.Transaction{ID: 1, Account: "Cash"}
	f.store.EXPECT().First(mock.Anything, query.Eq("id", uint64(7)), "Transaction").Return(stored, nil).Once()

	got, err := f.service.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Cash", got.Transaction.Account)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Find(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, spec persistence.FindSpec) ([]*entity.AppURL, int64, error) {
		assert.Nil(t, spec.Filter, "app urls have no active filter")
		assert.Equal(t, query.Sort{Column: "created_at", Descending: true}, spec.Sort)
		assert.Equal(t, []string{"Transaction"}, spec.Preload)
		return nil, 0, nil
	}).Once()

	res, err := f.service.List(context.Background(), usecase.ListQuery{Descending: true})

	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestUpdate(t *testing.T) {
	t.Run("Mark finished keeps binding", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().First(mock.Anything, query.Eq("id", uint64(7))).Return(storedURL(7, 1), nil).Once()
		f.store.EXPECT().Update(mock.Anything, mock.Anything, []string{"is_finished", patch.UpdatedColumn}).Return(nil).Once()
		f.expectEvent(messaging.ActionUpdated, 7)

		updated, err := f.service.Update(context.Background(), 7, entity.AppURLPatch{IsFinished: patch.Some(true)})

		require.NoError(t, err)
		assert.True(t, updated.IsFinished)
		assert.Equal(t, "https://bank.example/tx", updated.URL)
	})

	t.Run("Rebinding to an owned transaction", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().First(mock.Anything, query.Eq("id", uint64(7))).Return(storedURL(7, 1), nil).Once()
		f.transactions.EXPECT().Exists(mock.Anything, query.Eq("id", uint64(2))).Return(true, nil).Once()
		f.store.EXPECT().First(mock.Anything, query.Eq("transaction_id", uint64(2))).Return(storedURL(8, 2), nil).Once()

		_, err := f.service.Update(context.Background(), 7, entity.AppURLPatch{TransactionID: patch.Some(uint64(2))})

		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})

	t.Run("Rebinding to its own transaction", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().First(mock.Anything, query.Eq("id", uint64(7))).Return(storedURL(7, 1), nil).Once()
		f.transactions.EXPECT().Exists(mock.Anything, query.Eq("id", uint64(1))).Return(true, nil).Once()
		f.store.EXPECT().First(mock.Anything, query.Eq("transaction_id", uint64(1))).Return(storedURL(7, 1), nil).Once()
		f.store.EXPECT().Update(mock.Anything, mock.Anything, []string{"transaction_id", patch.UpdatedColumn}).Return(nil).Once()
		f.expectEvent(messaging.ActionUpdated, 7)

		_, err := f.service.Update(context.Background(), 7, entity.AppURLPatch{TransactionID: patch.Some(uint64(1))})

		assert.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Removes the row", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().Delete(mock.Anything, query.Eq("id", uint64(7))).Return(int64(1), nil).Once()
		f.expectEvent(messaging.ActionDeleted, 7)

		require.NoError(t, f.service.Delete(context.Background(), 7))
	})

	t.Run("Missing row", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().Delete(mock.Anything, query.Eq("id", uint64(7))).Return(int64(0), nil).Once()

		assert.ErrorIs(t, f.service.Delete(context.Background(), 7), errs.ErrNotFound)
	})
}
