package record

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
)

// Check is an extra rule run inside the unit of work before a record is
// written, e.g. a relationship invariant.
type Check[E any] func(ctx context.Context, rec E) error

type validator interface {
	Validate() error
}

// Lifecycle creates, reads, patches and deletes records of one kind. Each
// call is one unit of work. Whether delete removes the row or deactivates
// it comes from the schema's SoftDelete flag.
type Lifecycle[E entity.Record] struct {
	schema *query.Schema[E]
	store  persistence.RecordStore[E]
	uow    persistence.UnitOfWork
	clock  core.TimeProvider
	finder *Finder[E]
}

// NewLifecycle creates a lifecycle manager for the kind described by schema
func NewLifecycle[E entity.Record](
	schema *query.Schema[E],
	store persistence.RecordStore[E],
	uow persistence.UnitOfWork,
	clock core.TimeProvider,
) *Lifecycle[E] {
	return &Lifecycle[E]{
		schema: schema,
		store:  store,
		uow:    uow,
		clock:  clock,
		finder: NewFinder(schema, store),
	}
}

// Schema returns the descriptor of the managed kind
func (l *Lifecycle[E]) Schema() *query.Schema[E] {
	return l.schema
}

// Create stamps the creation time, activates soft-delete kinds, validates,
// runs checks and persists. The generated id is set on rec.
func (l *Lifecycle[E]) Create(ctx context.Context, rec E, checks ...Check[E]) error {
	return l.uow.Do(ctx, func(ctx context.Context) error {
		rec.Created(l.clock.Now())
		if l.schema.SoftDelete {
			if sd, ok := any(rec).(entity.SoftDeletable); ok {
				sd.Activate()
			}
		}
		if err := l.admit(ctx, rec, checks); err != nil {
			return err
		}
		return l.store.Create(ctx, rec)
	})
}

// Get loads one record visible under scope. Inactive records are not found.
func (l *Lifecycle[E]) Get(ctx context.Context, id uint64, scope query.Predicate, eager ...string) (E, error) {
	var out E
	preload, err := resolveRelations(l.schema, eager)
	if err != nil {
		return out, err
	}

	err = l.uow.Do(ctx, func(ctx context.Context) error {
		rec, err := l.load(ctx, id, scope, "get", preload...)
		if err != nil {
			return err
		}
		out = rec
		return nil
	})
	return out, err
}

// Update loads the record, merges the present patch fields, stamps the update
// time and writes only the changed columns, all in one unit of work.
func (l *Lifecycle[E]) Update(ctx context.Context, id uint64, scope query.Predicate, setters []patch.Setter[E], checks ...Check[E]) (E, error) {
	var out E
	err := l.uow.Do(ctx, func(ctx context.Context) error {
		rec, err := l.load(ctx, id, scope, "update")
		if err != nil {
			return err
		}

		columns := patch.Merge(rec, setters, l.clock.Now())
		if err := l.admit(ctx, rec, checks); err != nil {
			return err
		}
		if err := l.store.Update(ctx, rec, columns); err != nil {
			return l.notFound(id, "update", err)
		}
		out = rec
		return nil
	})
	return out, err
}

// Delete deactivates a soft-delete record or removes a hard-delete one.
// Deleting a record that is already inactive or gone reports not found.
func (l *Lifecycle[E]) Delete(ctx context.Context, id uint64, scope query.Predicate) error {
	return l.uow.Do(ctx, func(ctx context.Context) error {
		if !l.schema.SoftDelete {
			removed, err := l.store.Delete(ctx, l.filter(id, scope))
			if err != nil {
				return err
			}
			if removed == 0 {
				return errs.NewRecordError(l.schema.Name, id, "delete", errs.ErrNotFound)
			}
			return nil
		}

		rec, err := l.load(ctx, id, scope, "delete")
		if err != nil {
			return err
		}
		sd, ok := any(rec).(entity.SoftDeletable)
		if !ok {
			return fmt.Errorf("%w: %s cannot be deactivated", errs.ErrInternalServer, l.schema.Name)
		}
		sd.Deactivate(l.clock.Now())
		return l.notFound(id, "delete", l.store.Update(ctx, rec, []string{l.schema.ActiveColumn, patch.UpdatedColumn}))
	})
}

// List finds a page of active records. For soft-delete kinds the active
// filter is AND-ed before the caller's filter.
func (l *Lifecycle[E]) List(ctx context.Context, req FindRequest) (Result[E], error) {
	req.Filter = query.AllOf(l.schema.ActiveFilter(), req.Filter)

	var out Result[E]
	err := l.uow.Do(ctx, func(ctx context.Context) error {
		res, err := l.finder.Find(ctx, req)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	return out, err
}

// Exists reports whether a visible record with the id exists under scope
func (l *Lifecycle[E]) Exists(ctx context.Context, id uint64, scope query.Predicate) (bool, error) {
	return l.store.Exists(ctx, l.filter(id, scope))
}

func (l *Lifecycle[E]) filter(id uint64, scope query.Predicate) query.Predicate {
	return query.AllOf(l.schema.KeyFilter(id), l.schema.ActiveFilter(), scope)
}

func (l *Lifecycle[E]) load(ctx context.Context, id uint64, scope query.Predicate, op string, preload ...string) (E, error) {
	rec, err := l.store.First(ctx, l.filter(id, scope), preload...)
	return rec, l.notFound(id, op, err)
}

// notFound replaces a storage not-found with a record error; other errors pass through
func (l *Lifecycle[E]) notFound(id uint64, op string, err error) error {
	if err != nil && errs.IsNotFoundError(err) {
		return errs.NewRecordError(l.schema.Name, id, op, errs.ErrNotFound)
	}
	return err
}

func (l *Lifecycle[E]) admit(ctx context.Context, rec E, checks []Check[E]) error {
	if v, ok := any(rec).(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	for _, check := range checks {
		if err := check(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
