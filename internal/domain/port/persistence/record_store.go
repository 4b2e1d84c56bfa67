package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
)

// FindSpec is one fully resolved page query
type FindSpec struct {
	// Filter is applied before counting; nil matches everything
	Filter query.Predicate
	Sort   query.Sort
	Offset int
	Limit  int
	// Preload names relations fetched in the same round trip as the page
	Preload []string
}

// RecordStore gives generic access to one record kind. Implementations read
// the active unit of work from the context.
type RecordStore[E any] interface {
	// Find returns one page of records matching spec.Filter, in spec.Sort
	// order, plus the number of matching records before paging.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Find(ctx context.Context, spec FindSpec) ([]E, int64, error)

	// First returns the first record matching filter
	//
	// Possible errors:
	// - ErrNotFound: If no record matches
	// - ErrDatabaseConnection: If database connection fails
	First(ctx context.Context, filter query.Predicate, preload ...string) (E, error)

	// Exists reports whether any record matches filter
	Exists(ctx context.Context, filter query.Predicate) (bool, error)

	// Create inserts rec and stores the generated id on it
	//
	// Possible errors:
	// - ErrDuplicate: If a unique constraint is violated
	// - ErrConstraintViolation: If a foreign key or not-null constraint is violated
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, rec E) error

	// Update writes the given columns of rec
	//
	// Possible errors:
	// - ErrNotFound: If the record no longer exists
	// - ErrDuplicate: If a unique constraint is violated
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, rec E, columns []string) error

	// Delete removes every record matching filter and returns how many were removed
	Delete(ctx context.Context, filter query.Predicate) (int64, error)
}
