package record

import (
	"context"
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
)

// Paging limits
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// FindRequest is one list query against a record kind
type FindRequest struct {
	Page     int
	PageSize int
	// Filter is AND-ed before the search predicate, e.g. an ownership scope
	Filter query.Predicate
	// SortField is an API field name; empty or unknown names use the kind's default
	SortField  string
	Descending bool
	Search     string
	// EagerLoads names relations to load with every item
	EagerLoads []string
}

// Result is one page of records plus the size of the whole matching set
type Result[E any] struct {
	Items      []E
	TotalCount int64
	Page       int
	PageSize   int
}

// ClampPaging normalizes page to at least 1 and size to 1..MaxPageSize,
// with DefaultPageSize for sizes below 1.
func ClampPaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return page, size
}

// offset is the number of rows before page. Pages too far out to address
// saturate at math.MaxInt, which is past the end of any result.
func offset(page, size int) int {
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

// Finder runs paged, searched and sorted queries for one record kind
type Finder[E any] struct {
	schema *query.Schema[E]
	store  persistence.RecordStore[E]
}

// NewFinder creates a finder for the kind described by schema
func NewFinder[E any](schema *query.Schema[E], store persistence.RecordStore[E]) *Finder[E] {
	return &Finder[E]{schema: schema, store: store}
}

// Find filters, searches, sorts and pages in that order. TotalCount is the
// size of the filtered set before paging. Storage errors are returned as is.
func (f *Finder[E]) Find(ctx context.Context, req FindRequest) (Result[E], error) {
	page, size := ClampPaging(req.Page, req.PageSize)

	preload, err := resolveRelations(f.schema, req.EagerLoads)
	if err != nil {
		return Result[E]{}, err
	}

	spec := persistence.FindSpec{
		Filter:  query.AllOf(req.Filter, query.BuildSearch(f.schema, req.Search)),
		Sort:    f.schema.ResolveSort(req.SortField, req.Descending),
		Offset:  offset(page, size),
		Limit:   size,
		Preload: preload,
	}

	items, total, err := f.store.Find(ctx, spec)
	if err != nil {
		return Result[E]{}, err
	}
	if items == nil {
		items = []E{}
	}

	return Result[E]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

// resolveRelations maps requested relation names onto the schema's canonical names
func resolveRelations[E any](schema *query.Schema[E], names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		canonical, ok := schema.Relation(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no relation %q", errs.ErrInvalidRequest, schema.Name, name)
		}
		resolved = append(resolved, canonical)
	}
	return resolved, nil
}
