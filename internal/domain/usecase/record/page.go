package record

// Page is a result mapped to its response shape
type Page[R any] struct {
	Items      []R
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}

// HasPrevious reports whether an earlier page exists
func (p Page[R]) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether a later page exists
func (p Page[R]) HasNext() bool {
	return p.Page < p.TotalPages
}

// MapResult converts every item with mapper, keeping the page order
func MapResult[E, R any](res Result[E], mapper func(E) R) Page[R] {
	items := make([]R, len(res.Items))
	for i, item := range res.Items {
		items[i] = mapper(item)
	}

	totalPages := 0
	if res.PageSize > 0 {
		totalPages = int((res.TotalCount + int64(res.PageSize) - 1) / int64(res.PageSize))
	}

	return Page[R]{
		Items:      items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: totalPages,
	}
}
