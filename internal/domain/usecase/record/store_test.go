package record

import (
	"context"
	"sort"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
)

// item is a small record kind used to exercise the engine without storage
type item struct {
	ID        uint64
	Title     string
	Note      string
	Amount    int
	Owner     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

func (i *item) RecordID() uint64      { return i.ID }
func (i *item) SetRecordID(id uint64) { i.ID = id }
func (i *item) Created(at time.Time)  { i.CreatedAt = at }
func (i *item) Touch(at time.Time)    { i.UpdatedAt = &at }
func (i *item) Active() bool          { return i.IsActive }
func (i *item) Activate()             { i.IsActive = true }

func (i *item) Deactivate(at time.Time) {
	i.IsActive = false
	i.Touch(at)
}

func (i *item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return errs.NewValidationError("title", "is required")
	}
	return nil
}

func itemSchema(soft bool) *query.Schema[*item] {
	return &query.Schema[*item]{
		Name:       "item",
		PrimaryKey: "id",
		Fields: []query.Field[*item]{
			{Name: "itemId", Column: "id", Kind: query.KindKey, Sortable: true, Value: func(i *item) any { return i.ID }},
			{Name: "title", Column: "title", Kind: query.KindText, Sortable: true, Value: func(i *item) any { return i.Title }},
			{Name: "note", Column: "note", Kind: query.KindText, Value: func(i *item) any { return query.OptionalText(i.Note) }},
			{Name: "amount", Column: "amount", Kind: query.KindNumber, Sortable: true, Value: func(i *item) any { return i.Amount }},
			{Name: "owner", Column: "owner", Kind: query.KindKey, Value: func(i *item) any { return i.Owner }},
			{Name: "createdAt", Column: "created_at", Kind: query.KindTime, Sortable: true, Value: func(i *item) any { return i.CreatedAt }},
			{Name: "isActive", Column: "is_active", Kind: query.KindBool, Value: func(i *item) any { return i.IsActive }},
		},
		SoftDelete:   soft,
		ActiveColumn: "is_active",
		DefaultSort:  "itemId",
		Relations:    []string{"Owner"},
	}
}

// memStore keeps copies of rows so that only Create and Update change them
type memStore struct {
	schema  *query.Schema[*item]
	rows    []*item
	nextID  uint64
	err     error
	specs   []persistence.FindSpec
	updates [][]string
}

func newMemStore(schema *query.Schema[*item]) *memStore {
	return &memStore{schema: schema, nextID: 1}
}

func clone(i *item) *item {
	c := *i
	return &c
}

func (s *memStore) seed(items ...*item) {
	for _, it := range items {
		it.ID = s.nextID
		s.nextID++
		s.rows = append(s.rows, clone(it))
	}
}

func (s *memStore) row(id uint64) *item {
	for _, r := range s.rows {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *memStore) matching(filter query.Predicate) []*item {
	var out []*item
	for _, r := range s.rows {
		if s.schema.Matches(filter, r) {
			out = append(out, clone(r))
		}
	}
	return out
}

func (s *memStore) Find(_ context.Context, spec persistence.FindSpec) ([]*item, int64, error) {
	s.specs = append(s.specs, spec)
	if s.err != nil {
		return nil, 0, s.err
	}

	rows := s.matching(spec.Filter)
	total := int64(len(rows))

	var field query.Field[*item]
	for _, f := range s.schema.Fields {
		if f.Column == spec.Sort.Column {
			field = f
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		c := compare(field.Value(rows[a]), field.Value(rows[b]))
		if c == 0 {
			return rows[a].ID < rows[b].ID
		}
		if spec.Sort.Descending {
			return c > 0
		}
		return c < 0
	})

	if spec.Offset >= len(rows) {
		return []*item{}, total, nil
	}
	rows = rows[spec.Offset:]
	if len(rows) > spec.Limit {
		rows = rows[:spec.Limit]
	}
	return rows, total, nil
}

func compare(a, b any) int {
	switch av := a.(type) {
	case uint64:
		bv := b.(uint64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case int:
		return av - b.(int)
	case string:
		return strings.Compare(av, b.(string))
	case time.Time:
		return av.Compare(b.(time.Time))
	}
	return 0
}

func (s *memStore) First(_ context.Context, filter query.Predicate, _ ...string) (*item, error) {
	if s.err != nil {
		return nil, s.err
	}
	rows := s.matching(filter)
	if len(rows) == 0 {
		return nil, errs.ErrNotFound
	}
	return rows[0], nil
}

func (s *memStore) Exists(_ context.Context, filter query.Predicate) (bool, error) {
	return len(s.matching(filter)) > 0, s.err
}

func (s *memStore) Create(_ context.Context, rec *item) error {
	if s.err != nil {
		return s.err
	}
	rec.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, clone(rec))
	return nil
}

func (s *memStore) Update(_ context.Context, rec *item, columns []string) error {
	if s.err != nil {
		return s.err
	}
	for i, r := range s.rows {
		if r.ID == rec.ID {
			s.rows[i] = clone(rec)
			s.updates = append(s.updates, columns)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (s *memStore) Delete(_ context.Context, filter query.Predicate) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	kept := s.rows[:0]
	var removed int64
	for _, r := range s.rows {
		if s.schema.Matches(filter, r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	return removed, nil
}

// passUoW runs the function directly and counts units of work
type passUoW struct {
	calls int
}

func (u *passUoW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	u.calls++
	return fn(ctx)
}
