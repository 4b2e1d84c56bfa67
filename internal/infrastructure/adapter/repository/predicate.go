package repository

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func column(name string) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: name}
}

// toExpression translates a predicate tree into a gorm clause expression.
// A nil predicate yields a nil expression.
func toExpression(p query.Predicate) (clause.Expression, error) {
	switch n := p.(type) {
	case nil:
		return nil, nil
	case query.Equals:
		return clause.Eq{Column: column(n.Column), Value: n.Value}, nil
	case query.NotNull:
		return clause.Expr{SQL: "? IS NOT NULL", Vars: []any{column(n.Column)}}, nil
	case query.Contains:
		return clause.Expr{
			SQL:  `? LIKE ? ESCAPE '\'`,
			Vars: []any{column(n.Column), "%" + likeEscaper.Replace(n.Term) + "%"},
		}, nil
	case query.And:
		exprs, err := toExpressions(n)
		if err != nil {
			return nil, err
		}
		return clause.And(exprs...), nil
	case query.Or:
		exprs, err := toExpressions(n)
		if err != nil {
			return nil, err
		}
		return clause.Or(exprs...), nil
	default:
		return nil, fmt.Errorf("%w: unsupported predicate %T", errs.ErrInternalServer, p)
	}
}

func toExpressions(preds []query.Predicate) ([]clause.Expression, error) {
	out := make([]clause.Expression, 0, len(preds))
	for _, p := range preds {
		expr, err := toExpression(p)
		if err != nil {
			return nil, err
		}
		if expr != nil {
			out = append(out, expr)
		}
	}
	return out, nil
}
