package record

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededFinder(t *testing.T, n int) (*Finder[*item], *memStore) {
	t.Helper()
	store := newMemStore(itemSchema(true))
	for i := 1; i <= n; i++ {
		store.seed(&item{Title: fmt.Sprintf("item %02d", i), Amount: n - i, IsActive: true, Owner: "u1"})
	}
	return NewFinder(itemSchema(true), store), store
}

func TestClampPaging(t *testing.T) {
	testCases := []struct {
		name         string
		page, size   int
		expPage, exp int
	}{
		{"Defaults", 0, 0, 1, DefaultPageSize},
		{"Negative", -3, -1, 1, DefaultPageSize},
		{"Too large", 2, 500, 2, MaxPageSize},
		{"Within range", 3, 25, 3, 25},
		{"Lower bound", 1, 1, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := ClampPaging(tc.page, tc.size)
			assert.Equal(t, tc.expPage, page)
			assert.Equal(t, tc.exp, size)
		})
	}
}

func TestFinder_PageSizeAndTotal(t *testing.T) {
	finder, _ := seededFinder(t, 23)
	ctx := context.Background()

	for _, size := range []int{1, 5, 10, 23, 100} {
		for page := 1; page <= 4; page++ {
			res, err := finder.Find(ctx, FindRequest{Page: page, PageSize: size})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(res.Items), size)
			assert.Equal(t, int64(23), res.TotalCount, "page %d size %d", page, size)
		}
	}
}

func TestFinder_PagesAreDisjointAndOrdered(t *testing.T) {
	finder, _ := seededFinder(t, 12)
	ctx := context.Background()

	var ids []uint64
	for page := 1; page <= 3; page++ {
		res, err := finder.Find(ctx, FindRequest{Page: page, PageSize: 5})
		require.NoError(t, err)
		for _, it := range res.Items {
			ids = append(ids, it.ID)
		}
	}

	require.Len(t, ids, 12)
	for i, id := range ids {
		assert.Equal(t, uint64(i+1), id)
	}
}

func TestFinder_PageBeyondEnd(t *testing.T) {
	finder, _ := seededFinder(t, 3)

	res, err := finder.Find(context.Background(), FindRequest{Page: 9, PageSize: 10})

	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, int64(3), res.TotalCount)
}

func TestFinder_PageFarBeyondEnd(t *testing.T) {
	finder, store := seededFinder(t, 3)

	for _, page := range []int{math.MaxInt / 5, math.MaxInt/5 + 2, math.MaxInt} {
		res, err := finder.Find(context.Background(), FindRequest{Page: page, PageSize: 5})

		require.NoError(t, err)
		assert.Empty(t, res.Items, "page %d", page)
		assert.Equal(t, int64(3), res.TotalCount)
		assert.Equal(t, page, res.Page)
		assert.GreaterOrEqual(t, store.specs[len(store.specs)-1].Offset, 0)
	}
}

func TestFinder_FilterThenSearch(t *testing.T) {
	store := newMemStore(itemSchema(true))
	store.seed(
		&item{Title: "Cash lunch", Owner: "u1", IsActive: true},
		&item{Title: "Cash dinner", Owner: "u2", IsActive: true},
		&item{Title: "Card", Note: "cash back", Owner: "u1", IsActive: true},
		&item{Title: "Card", Owner: "u1", IsActive: true},
	)
	finder := NewFinder(itemSchema(true), store)

	res, err := finder.Find(context.Background(), FindRequest{
		Filter: query.Eq("owner", "u1"),
		Search: "ash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalCount)
	assert.Equal(t, uint64(1), res.Items[0].ID)
	assert.Equal(t, uint64(3), res.Items[1].ID)

	spec := store.specs[0]
	and, ok := spec.Filter.(query.And)
	require.True(t, ok)
	assert.Equal(t, query.Eq("owner", "u1"), and[0])
	assert.IsType(t, query.Or{}, and[1])
}

func TestFinder_BlankSearchIsNoFilter(t *testing.T) {
	finder, store := seededFinder(t, 4)

	res, err := finder.Find(context.Background(), FindRequest{Search: "   "})

	require.NoError(t, err)
	assert.Equal(t, int64(4), res.TotalCount)
	assert.Nil(t, store.specs[0].Filter)
}

func TestFinder_Sorting(t *testing.T) {
	finder, store := seededFinder(t, 5)
	ctx := context.Background()

	t.Run("Known key descending", func(t *testing.T) {
		res, err := finder.Find(ctx, FindRequest{SortField: "itemId", Descending: true})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), res.Items[0].ID)
	})

	t.Run("Amount ascending", func(t *testing.T) {
		res, err := finder.Find(ctx, FindRequest{SortField: "amount"})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Items[0].Amount)
		assert.Equal(t, uint64(5), res.Items[0].ID)
	})

	t.Run("Unknown key uses default", func(t *testing.T) {
		res, err := finder.Find(ctx, FindRequest{SortField: "nope"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.Items[0].ID)
		assert.Equal(t, query.Sort{Column: "id"}, store.specs[len(store.specs)-1].Sort)
	})
}

func TestFinder_Idempotent(t *testing.T) {
	finder, _ := seededFinder(t, 15)
	req := FindRequest{Page: 2, PageSize: 4, SortField: "title", Descending: true, Search: "item"}

	first, err := finder.Find(context.Background(), req)
	require.NoError(t, err)
	second, err := finder.Find(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFinder_EagerLoads(t *testing.T) {
	finder, store := seededFinder(t, 1)

	_, err := finder.Find(context.Background(), FindRequest{EagerLoads: []string{"owner"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Owner"}, store.specs[0].Preload)

	_, err = finder.Find(context.Background(), FindRequest{EagerLoads: []string{"Author"}})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestFinder_StorageErrorPropagates(t *testing.T) {
	finder, store := seededFinder(t, 1)
	boom := errors.New("connection reset")
	store.err = boom

	_, err := finder.Find(context.Background(), FindRequest{})

	assert.Same(t, boom, err)
}

func TestMapResult_Mapping(t *testing.T) {
	finder, _ := seededFinder(t, 11)

	res, err := finder.Find(context.Background(), FindRequest{Page: 2, PageSize: 5})
	require.NoError(t, err)
	page := MapResult(res, func(i *item) string { return i.Title })

	assert.Equal(t, []string{"item 06", "item 07", "item 08", "item 09", "item 10"}, page.Items)
	assert.Equal(t, int64(11), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
}

func TestMapResult_Empty(t *testing.T) {
	page := MapResult(Result[*item]{Page: 1, PageSize: 10}, func(i *item) uint64 { return i.ID })

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}
