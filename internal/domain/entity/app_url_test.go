package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/patch"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/stretchr/testify/assert"
)

func TestAppURL_Validate(t *testing.T) {
	assert.NoError(t, (&AppURL{URL: "moze://record/1", TransactionID: 1}).Validate())
	assert.ErrorIs(t, (&AppURL{URL: "", TransactionID: 1}).Validate(), errs.ErrValidation)
	assert.ErrorIs(t, (&AppURL{URL: "x"}).Validate(), errs.ErrValidation)
	assert.ErrorIs(t, (&AppURL{URL: strings.Repeat("u", 2001), TransactionID: 1}).Validate(), errs.ErrValidation)
}

func TestAppURLSchema(t *testing.T) {
	s := AppURLSchema

	assert.False(t, s.SoftDelete)
	assert.Nil(t, s.ActiveFilter())
	assert.Equal(t, query.Sort{Column: "created_at", Descending: true}, s.ResolveSort("", true))
	assert.Equal(t, query.Sort{Column: "is_finished"}, s.ResolveSort("isFinished", false))
	assert.Len(t, s.TextFields(), 1)

	name, ok := s.Relation("transaction")
	assert.True(t, ok)
	assert.Equal(t, AppURLRelationTransaction, name)
}

func TestAppURLPatch_Setters(t *testing.T) {
	a := &AppURL{URL: "moze://a", TransactionID: 4}

	columns := patch.Merge(a, AppURLPatch{IsFinished: patch.Some(true)}.Setters(), time.Now())

	assert.Equal(t, []string{"is_finished", patch.UpdatedColumn}, columns)
	assert.True(t, a.IsFinished)
	assert.Equal(t, "moze://a", a.URL)
	assert.Equal(t, uint64(4), a.TransactionID)
	assert.NotNil(t, a.UpdatedAt)
}
