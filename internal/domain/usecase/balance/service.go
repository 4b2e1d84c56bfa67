package balance

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
)

// Service implements usecase.BalanceUseCase
type Service struct {
	records  *record.Lifecycle[*entity.Balance]
	notifier *event.Notifier
	logger   coreport.Logger
}

var _ usecase.BalanceUseCase = (*Service)(nil)

// NewBalanceUseCase creates the balance service
func NewBalanceUseCase(
	store persistence.RecordStore[*entity.Balance],
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	notifier *event.Notifier,
	logger coreport.Logger,
) *Service {
	return &Service{
		records:  record.NewLifecycle(entity.BalanceSchema, store, uow, timeProvider),
		notifier: notifier,
		logger:   logger,
	}
}

// Create stores a new balance adjustment
func (s *Service) Create(ctx context.Context, b *entity.Balance) (*entity.Balance, error) {
	if err := s.records.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Balance created", map[string]any{
		"balance_id": b.ID,
		"account":    b.Account,
		"amount":     entity.FormatAmount(b.Amount),
	})
	s.notifier.Notify(ctx, entity.BalanceSchema.Name, messaging.ActionCreated, b.ID, "")
	return b, nil
}

// Get returns an active balance adjustment
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Balance, error) {
	return s.records.Get(ctx, id, nil)
}

// List returns one page of active balance adjustments
func (s *Service) List(ctx context.Context, q usecase.ListQuery) (record.Result[*entity.Balance], error) {
	return s.records.List(ctx, record.FindRequest{
		Page:       q.Page,
		PageSize:   q.PageSize,
		SortField:  q.SortBy,
		Descending: q.Descending,
		Search:     q.Search,
	})
}

// Update applies the present fields of p
func (s *Service) Update(ctx context.Context, id uint64, p entity.BalancePatch) (*entity.Balance, error) {
	b, err := s.records.Update(ctx, id, nil, p.Setters())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Balance updated", map[string]any{"balance_id": id})
	s.notifier.Notify(ctx, entity.BalanceSchema.Name, messaging.ActionUpdated, id, "")
	return b, nil
}

// Delete deactivates the balance adjustment
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.records.Delete(ctx, id, nil); err != nil {
		return err
	}

	s.logger.Info("Balance deleted", map[string]any{"balance_id": id})
	s.notifier.Notify(ctx, entity.BalanceSchema.Name, messaging.ActionDeleted, id, "")
	return nil
}
