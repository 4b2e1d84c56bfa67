package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
)

// ListQuery carries the list parameters accepted by every record endpoint
type ListQuery struct {
	Page     int
	PageSize int
	// SortBy is an API field name such as "amount"; unknown names use the default
	SortBy     string
	Descending bool
	Search     string
}

// TransactionUseCase manages the transactions of one owner. Records of
// other owners behave as if they did not exist.
type TransactionUseCase interface {
	// Create stores a new transaction for ownerID
	Create(ctx context.Context, ownerID string, tx *entity.Transaction) (*entity.Transaction, error)

	// Get returns an active transaction with its owner loaded
	Get(ctx context.Context, ownerID string, id uint64) (*entity.Transaction, error)

	// List returns one page of the owner's active transactions
	List(ctx context.Context, ownerID string, q ListQuery) (record.Result[*entity.Transaction], error)

	// Update applies a partial update
	Update(ctx context.Context, ownerID string, id uint64, p entity.TransactionPatch) (*entity.Transaction, error)

	// Delete deactivates the transaction
	Delete(ctx context.Context, ownerID string, id uint64) error

	// Export returns every active transaction of the owner matching search,
	// in transaction id order
	Export(ctx context.Context, ownerID string, search string) ([]*entity.Transaction, error)
}

// AppURLUseCase manages app urls
type AppURLUseCase interface {
	// Create stores an app url bound to an existing, unbound transaction
	Create(ctx context.Context, a *entity.AppURL) (*entity.AppURL, error)

	// Get returns an app url with its transaction loaded
	Get(ctx context.Context, id uint64) (*entity.AppURL, error)

	// List returns one page of app urls
	List(ctx context.Context, q ListQuery) (record.Result[*entity.AppURL], error)

	// Update applies a partial update
	Update(ctx context.Context, id uint64, p entity.AppURLPatch) (*entity.AppURL, error)

	// Delete removes the app url
	Delete(ctx context.Context, id uint64) error
}

// BalanceUseCase manages balance adjustments
type BalanceUseCase interface {
	// Create stores a new balance adjustment
	Create(ctx context.Context, b *entity.Balance) (*entity.Balance, error)

	// Get returns an active balance adjustment
	Get(ctx context.Context, id uint64) (*entity.Balance, error)

	// List returns one page of active balance adjustments
	List(ctx context.Context, q ListQuery) (record.Result[*entity.Balance], error)

	// Update applies a partial update
	Update(ctx context.Context, id uint64, p entity.BalancePatch) (*entity.Balance, error)

	// Delete deactivates the balance adjustment
	Delete(ctx context.Context, id uint64) error
}
