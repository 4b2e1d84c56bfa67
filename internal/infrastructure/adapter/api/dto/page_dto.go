package dto

import (
	"strings"

	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/domain/usecase/record"
)

// PagedResponse is the envelope of every list endpoint
type PagedResponse[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"totalCount"`
	CurrentPage     int   `json:"currentPage"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

// NewPagedResponse maps every item of res and fills in the paging fields
func NewPagedResponse[E, T any](res record.Result[E], mapper func(E) T) PagedResponse[T] {
	page := record.MapResult(res, mapper)
	return PagedResponse[T]{
		Items:           page.Items,
		TotalCount:      page.TotalCount,
		CurrentPage:     page.Page,
		PageSize:        page.PageSize,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPrevious(),
		HasNextPage:     page.HasNext(),
	}
}

// Sort directions accepted in the sortOrder parameter
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// ListParams are the query parameters of a list endpoint
type ListParams struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search    string `form:"search"`
}

// ToQuery converts the parameters, using defaultDescending when no sort
// order was given. Paging is clamped later by the finder.
func (p ListParams) ToQuery(defaultDescending bool) usecase.ListQuery {
	descending := defaultDescending
	switch strings.ToLower(p.SortOrder) {
	case SortAscending:
		descending = false
	case SortDescending:
		descending = true
	}
	return usecase.ListQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     strings.TrimSpace(p.SortBy),
		Descending: descending,
		Search:     p.Search,
	}
}
