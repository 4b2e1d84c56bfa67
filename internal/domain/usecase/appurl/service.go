package appurl

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
)

// Service implements usecase.AppURLUseCase
type Service struct {
	records      *record.Lifecycle[*entity.AppURL]
	store        persistence.RecordStore[*entity.AppURL]
	transactions persistence.RecordStore[*entity.Transaction]
	notifier     *event.Notifier
	logger       coreport.Logger
}

var _ usecase.AppURLUseCase = (*Service)(nil)

// NewAppURLUseCase creates the app url service
func NewAppURLUseCase(
	store persistence.RecordStore[*entity.AppURL],
	transactions persistence.RecordStore[*entity.Transaction],
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	notifier *event.Notifier,
	logger coreport.Logger,
) *Service {
	return &Service{
		records:      record.NewLifecycle(entity.AppURLSchema, store, uow, timeProvider),
		store:        store,
		transactions: transactions,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create stores an app url bound to an existing transaction that has none yet
func (s *Service) Create(ctx context.Context, a *entity.AppURL) (*entity.AppURL, error) {
	a.Transaction = nil
	if err := s.records.Create(ctx, a, s.bindable); err != nil {
		return nil, err
	}

	s.logger.Info("App url created", map[string]any{
		"app_url_id":     a.ID,
		"transaction_id": a.TransactionID,
	})
	s.notifier.Notify(ctx, entity.AppURLSchema.Name, messaging.ActionCreated, a.ID, "")
	return a, nil
}

// Get returns the app url with its transaction
func (s *Service) Get(ctx context.Context, id uint64) (*entity.AppURL, error) {
	return s.records.Get(ctx, id, nil, entity.AppURLRelationTransaction)
}

// List returns one page of app urls with their transactions
func (s *Service) List(ctx context.Context, q usecase.ListQuery) (record.Result[*entity.AppURL], error) {
	return s.records.List(ctx, record.FindRequest{
		Page:       q.Page,
		PageSize:   q.PageSize,
		SortField:  q.SortBy,
		Descending: q.Descending,
		Search:     q.Search,
		EagerLoads: []string{entity.AppURLRelationTransaction},
	})
}

// Update applies the present fields of p. Moving the url to another
// transaction is checked like a create.
func (s *Service) Update(ctx context.Context, id uint64, p entity.AppURLPatch) (*entity.AppURL, error) {
	var checks []record.Check[*entity.AppURL]
	if p.TransactionID.IsSet() {
		checks = append(checks, s.bindable)
	}

	a, err := s.records.Update(ctx, id, nil, p.Setters(), checks...)
	if err != nil {
		return nil, err
	}

	s.logger.Info("App url updated", map[string]any{
		"app_url_id": id,
	})
	s.notifier.Notify(ctx, entity.AppURLSchema.Name, messaging.ActionUpdated, id, "")
	return a, nil
}

// Delete removes the app url
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.records.Delete(ctx, id, nil); err != nil {
		return err
	}

	s.logger.Info("App url deleted", map[string]any{
		"app_url_id": id,
	})
	s.notifier.Notify(ctx, entity.AppURLSchema.Name, messaging.ActionDeleted, id, "")
	return nil
}

// bindable checks that the referenced transaction exists and that no other
// app url is bound to it
func (s *Service) bindable(ctx context.Context, a *entity.AppURL) error {
	exists, err := s.transactions.Exists(ctx, entity.TransactionSchema.KeyFilter(a.TransactionID))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %d", errs.ErrTransactionNotFound, a.TransactionID)
	}

	bound, err := s.store.First(ctx, query.Eq("transaction_id", a.TransactionID))
	switch {
	case errs.IsNotFoundError(err):
		return nil
	case err != nil:
		return err
	case bound.ID != a.ID:
		s.logger.Debug("Transaction already has an app url", map[string]any{
			"transaction_id": a.TransactionID,
			"app_url_id":     bound.ID,
		})
		return fmt.Errorf("%w: transaction %d already has app url %d", errs.ErrDuplicate, a.TransactionID, bound.ID)
	default:
		return nil
	}
}
