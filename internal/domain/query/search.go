package query

import "strings"

// BuildSearch returns a predicate matching records where any text field
// contains term:
//
//	(f1 IS NOT NULL AND f1 LIKE %term%) OR (f2 IS NOT NULL AND f2 LIKE %term%) ...
//
// The fields come from the schema, so callers never enumerate them. A blank
// term or a schema without text fields yields nil (no search). The term is
// used as given; surrounding whitespace is not trimmed.
func BuildSearch[E any](schema *Schema[E], term string) Predicate {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	var clauses []Predicate
	for _, f := range schema.TextFields() {
		clauses = append(clauses, And{
			NotNull{Column: f.Column},
			Contains{Column: f.Column, Term: term},
		})
	}
	return AnyOf(clauses...)
}
