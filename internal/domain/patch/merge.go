package patch

import "time"

// UpdatedColumn is the column stamped by every merge
const UpdatedColumn = "updated_at"

// Touchable is a record carrying an update timestamp
type Touchable interface {
	Touch(at time.Time)
}

// Setter binds one storage column to one optional payload field
type Setter[E any] struct {
	column string
	apply  func(E) bool
}

// Column returns the storage column this setter writes
func (s Setter[E]) Column() string {
	return s.column
}

// Set builds a setter that calls assign with the payload value when opt is
// present and does nothing otherwise.
func Set[E, T any](column string, opt Optional[T], assign func(E, T)) Setter[E] {
	return Setter[E]{
		column: column,
		apply: func(rec E) bool {
			v, ok := opt.Get()
			if !ok {
				return false
			}
			assign(rec, v)
			return true
		},
	}
}

// Merge applies every present field onto rec, leaves absent fields as they
// are and stamps the update time. It returns the columns written, always
// ending with UpdatedColumn, so callers can persist exactly those.
func Merge[E Touchable](rec E, setters []Setter[E], now time.Time) []string {
	columns := make([]string, 0, len(setters)+1)
	for _, s := range setters {
		if s.apply(rec) {
			columns = append(columns, s.column)
		}
	}
	rec.Touch(now)
	return append(columns, UpdatedColumn)
}
