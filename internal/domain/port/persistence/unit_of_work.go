package persistence

import (
	"context"
)

// UnitOfWork scopes one logical operation to one storage transaction
type UnitOfWork interface {
	// Do runs fn in a transaction carried by the context passed to fn. The
	// transaction commits when fn returns nil and rolls back when it returns
	// an error or panics. Nested calls join the outer transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
