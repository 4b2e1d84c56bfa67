package query

// Predicate is a filter expressed as data so that storage adapters can
// translate it into their own query language. A nil Predicate matches
// everything.
type Predicate interface {
	predicate()
}

// Equals matches records whose column equals Value
type Equals struct {
	Column string
	Value  any
}

// NotNull matches records whose column holds a value
type NotNull struct {
	Column string
}

// Contains matches records whose text column contains Term as a substring
type Contains struct {
	Column string
	Term   string
}

// And matches records that satisfy every operand
type And []Predicate

// Or matches records that satisfy at least one operand
type Or []Predicate

func (Equals) predicate()   {}
func (NotNull) predicate()  {}
func (Contains) predicate() {}
func (And) predicate()      {}
func (Or) predicate()       {}

// Eq is shorthand for an Equals predicate
func Eq(column string, value any) Predicate {
	return Equals{Column: column, Value: value}
}

// AllOf combines predicates with AND, in order. Nil operands are dropped;
// nil is returned when nothing is left.
func AllOf(preds ...Predicate) Predicate {
	kept := compact(preds)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return And(kept)
	}
}

// AnyOf combines predicates with OR, in order. Nil operands are dropped;
// nil is returned when nothing is left.
func AnyOf(preds ...Predicate) Predicate {
	kept := compact(preds)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return Or(kept)
	}
}

func compact(preds []Predicate) []Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept
}
