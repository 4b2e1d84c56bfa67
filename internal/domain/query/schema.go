package query

import (
	"strings"
)

// FieldKind classifies a record field for search and sorting
type FieldKind int

const (
	// KindKey marks identifier columns (primary and foreign keys)
	KindKey FieldKind = iota
	// KindText marks free-text columns; only these take part in search
	KindText
	// KindNumber marks numeric columns such as amounts
	KindNumber
	// KindBool marks flag columns
	KindBool
	// KindTime marks timestamp columns
	KindTime
)

// Field describes one persisted field of a record type
type Field[E any] struct {
	// Name is the field name used by API callers (e.g. "createdAt")
	Name string
	// Column is the storage column name (e.g. "created_at")
	Column string
	Kind   FieldKind
	// Sortable allows callers to order by this field
	Sortable bool
	// Value reads the field from a record. Text accessors return nil for
	// a missing value.
	Value func(E) any
}

// Sort is a resolved single-column ordering
type Sort struct {
	Column     string
	Descending bool
}

// Schema is the descriptor of a record type, registered once per kind and
// shared by the search, paging and lifecycle components.
type Schema[E any] struct {
	// Name is the record kind, used in errors and events
	Name string
	// PrimaryKey is the primary key column
	PrimaryKey string
	Fields     []Field[E]
	// SoftDelete marks kinds that are deactivated instead of removed
	SoftDelete bool
	// ActiveColumn is the flag column consulted when SoftDelete is set
	ActiveColumn string
	// DefaultSort is the field name used when a caller gives no usable key
	DefaultSort string
	// Relations lists the related records that may be eager loaded
	Relations []string
}

// TextFields returns every text-valued field in declaration order
func (s *Schema[E]) TextFields() []Field[E] {
	var out []Field[E]
	for _, f := range s.Fields {
		if f.Kind == KindText {
			out = append(out, f)
		}
	}
	return out
}

// Field looks a field up by its API name, ignoring case
func (s *Schema[E]) Field(name string) (Field[E], bool) {
	for _, f := range s.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field[E]{}, false
}

// ResolveSort maps a caller-supplied sort key to a column. Empty, unknown
// and non-sortable keys fall back to DefaultSort. The direction is taken as
// given.
func (s *Schema[E]) ResolveSort(name string, descending bool) Sort {
	if f, ok := s.Field(strings.TrimSpace(name)); ok && f.Sortable {
		return Sort{Column: f.Column, Descending: descending}
	}
	column := s.PrimaryKey
	if f, ok := s.Field(s.DefaultSort); ok {
		column = f.Column
	}
	return Sort{Column: column, Descending: descending}
}

// Relation returns the canonical relation name, ignoring case
func (s *Schema[E]) Relation(name string) (string, bool) {
	for _, r := range s.Relations {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}

// KeyFilter matches the record with the given primary key
func (s *Schema[E]) KeyFilter(id any) Predicate {
	return Eq(s.PrimaryKey, id)
}

// ActiveFilter matches records that are not soft-deleted. It is nil for
// kinds without soft delete.
func (s *Schema[E]) ActiveFilter() Predicate {
	if !s.SoftDelete {
		return nil
	}
	return Eq(s.ActiveColumn, true)
}

// Matches evaluates a predicate against an in-memory record using the
// field accessors. Columns the schema does not declare never match.
func (s *Schema[E]) Matches(p Predicate, rec E) bool {
	switch p := p.(type) {
	case nil:
		return true
	case Equals:
		v, ok := s.value(p.Column, rec)
		return ok && v == p.Value
	case NotNull:
		v, ok := s.value(p.Column, rec)
		return ok && v != nil
	case Contains:
		v, ok := s.value(p.Column, rec)
		if !ok {
			return false
		}
		text, isText := v.(string)
		return isText && strings.Contains(text, p.Term)
	case And:
		for _, op := range p {
			if !s.Matches(op, rec) {
				return false
			}
		}
		return true
	case Or:
		for _, op := range p {
			if s.Matches(op, rec) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (s *Schema[E]) value(column string, rec E) (any, bool) {
	for _, f := range s.Fields {
		if f.Column == column {
			return f.Value(rec), true
		}
	}
	return nil, false
}

// OptionalText adapts an optional text value for a Field accessor: empty
// strings are reported as missing.
func OptionalText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
