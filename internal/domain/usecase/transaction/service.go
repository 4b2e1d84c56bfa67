package transaction

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
)

// MaxExportRows caps the number of transactions in one export
const MaxExportRows = 50000

// Service implements usecase.TransactionUseCase
type Service struct {
	records  *record.Lifecycle[*entity.Transaction]
	users    persistence.UserRepository
	notifier *event.Notifier
	logger   coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionUseCase creates the transaction service
func NewTransactionUseCase(
	store persistence.RecordStore[*entity.Transaction],
	users persistence.UserRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	notifier *event.Notifier,
	logger coreport.Logger,
) *Service {
	return &Service{
		records:  record.NewLifecycle(entity.TransactionSchema, store, uow, timeProvider),
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

func ownerScope(ownerID string) query.Predicate {
	return query.Eq("user_id", ownerID)
}

// Create stores tx for ownerID. The owner always comes from the session,
// whatever the payload carried.
func (s *Service) Create(ctx context.Context, ownerID string, tx *entity.Transaction) (*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	tx.UserID = ownerID
	tx.User = nil

	if err := s.records.Create(ctx, tx, s.ownerIsActive); err != nil {
		s.logger.Debug("Transaction create failed", map[string]any{
			"user_id": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        ownerID,
		"type":           tx.Type.String(),
		"amount":         entity.FormatAmount(tx.Amount),
	})
	s.notifier.Notify(ctx, entity.TransactionSchema.Name, messaging.ActionCreated, tx.ID, ownerID)
	return tx, nil
}

// Get returns the owner's active transaction with the owner loaded
func (s *Service) Get(ctx context.Context, ownerID string, id uint64) (*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.records.Get(ctx, id, ownerScope(ownerID), entity.TransactionRelationUser)
}

// List returns one page of the owner's active transactions
func (s *Service) List(ctx context.Context, ownerID string, q usecase.ListQuery) (record.Result[*entity.Transaction], error) {
	if err := requireOwner(ownerID); err != nil {
		return record.Result[*entity.Transaction]{}, err
	}
	return s.records.List(ctx, record.FindRequest{
		Page:       q.Page,
		PageSize:   q.PageSize,
		Filter:     ownerScope(ownerID),
		SortField:  q.SortBy,
		Descending: q.Descending,
		Search:     q.Search,
		EagerLoads: []string{entity.TransactionRelationUser},
	})
}

// Update applies the present fields of p to the owner's transaction
func (s *Service) Update(ctx context.Context, ownerID string, id uint64, p entity.TransactionPatch) (*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	tx, err := s.records.Update(ctx, id, ownerScope(ownerID), p.Setters(), s.ownerIsActive)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": id,
		"user_id":        ownerID,
	})
	s.notifier.Notify(ctx, entity.TransactionSchema.Name, messaging.ActionUpdated, id, ownerID)
	return tx, nil
}

// Delete deactivates the owner's transaction
func (s *Service) Delete(ctx context.Context, ownerID string, id uint64) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id, ownerScope(ownerID)); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"user_id":        ownerID,
	})
	s.notifier.Notify(ctx, entity.TransactionSchema.Name, messaging.ActionDeleted, id, ownerID)
	return nil
}

// Export walks the owner's matching transactions page by page in id order
func (s *Service) Export(ctx context.Context, ownerID string, search string) ([]*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	out := make([]*entity.Transaction, 0)
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.records.List(ctx, record.FindRequest{
			Page:      page,
			PageSize:  record.MaxPageSize,
			Filter:    ownerScope(ownerID),
			SortField: "transactionId",
			Search:    search,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, res.Items...)

		if len(res.Items) < res.PageSize || int64(len(out)) >= res.TotalCount {
			break
		}
		if len(out) >= MaxExportRows {
			s.logger.Warn("Export truncated", map[string]any{
				"user_id": ownerID,
				"rows":    len(out),
				"total":   res.TotalCount,
			})
			break
		}
	}
	return out, nil
}
