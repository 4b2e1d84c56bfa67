package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_ResolveSort(t *testing.T) {
	testCases := []struct {
		name       string
		key        string
		descending bool
		expected   Sort
	}{
		{"Empty key falls back to default", "", false, Sort{Column: "id"}},
		{"Unknown key falls back to default", "nope", true, Sort{Column: "id", Descending: true}},
		{"Known key", "amount", true, Sort{Column: "amount", Descending: true}},
		{"Case insensitive", "TITLE", false, Sort{Column: "title"}},
		{"Not sortable falls back", "body", false, Sort{Column: "id"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, noteSchema.ResolveSort(tc.key, tc.descending))
		})
	}
}

func TestSchema_ResolveSortWithoutDefault(t *testing.T) {
	assert.Equal(t, Sort{Column: "id"}, numbersOnly.ResolveSort("", false))
}

func TestSchema_TextFields(t *testing.T) {
	fields := noteSchema.TextFields()

	assert.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Column)
	assert.Equal(t, "body", fields[1].Column)
	assert.Empty(t, numbersOnly.TextFields())
}

func TestSchema_Relation(t *testing.T) {
	name, ok := noteSchema.Relation("owner")
	assert.True(t, ok)
	assert.Equal(t, "Owner", name)

	_, ok = noteSchema.Relation("Author")
	assert.False(t, ok)
}

func TestSchema_ActiveFilter(t *testing.T) {
	assert.Equal(t, Eq("is_active", true), noteSchema.ActiveFilter())
	assert.Nil(t, numbersOnly.ActiveFilter())
}

func TestSchema_Matches(t *testing.T) {
	rec := note{ID: 7, Title: "Rent", Amount: 100, Active: true}

	assert.True(t, noteSchema.Matches(nil, rec))
	assert.True(t, noteSchema.Matches(noteSchema.KeyFilter(uint64(7)), rec))
	assert.False(t, noteSchema.Matches(noteSchema.KeyFilter(uint64(8)), rec))
	assert.True(t, noteSchema.Matches(AllOf(noteSchema.ActiveFilter(), Eq("amount", 100)), rec))
	assert.False(t, noteSchema.Matches(NotNull{Column: "body"}, rec))
	assert.False(t, noteSchema.Matches(Eq("missing", 1), rec))
	assert.True(t, noteSchema.Matches(Or{Eq("amount", 1), Contains{Column: "title", Term: "en"}}, rec))
}
