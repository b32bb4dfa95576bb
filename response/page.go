package response

import (
	"math"
	"net/http"
)

// PageMeta describes the position of a page within a larger result set.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// PagedResponse is the envelope for list endpoints. The payload is always a
// slice and the paging values are available both as the typed PageMeta and
// duplicated into the untyped meta map under the keys page, pageSize,
// totalItems and totalPages, for consumers that only read the generic shape.
type PagedResponse[T any] struct {
	Response[[]T]
	PageMeta PageMeta `json:"-"`
}

// NewPage builds a success envelope for one page of items.
//
// Invalid numeric input is clamped rather than rejected: a page below 1
// becomes 1 and a pageSize below 1 becomes 1. The request still succeeds;
// list endpoints should not fail because a client sent page=0.
func NewPage[T any](items []T, page, pageSize int, totalItems int64, opts ...Option) *PagedResponse[T] {
	if items == nil {
		items = []T{}
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	pm := PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}

	s := newSettings(http.StatusOK, opts)
	meta := s.meta
	if meta == nil {
		meta = make(map[string]any, 4)
	}
	meta["page"] = pm.Page
	meta["pageSize"] = pm.PageSize
	meta["totalItems"] = pm.TotalItems
	meta["totalPages"] = pm.TotalPages

	return &PagedResponse[T]{
		Response: Response[[]T]{
			Success: true,
			Message: s.message,
			Data:    &items,
			Meta:    meta,
			Code:    s.code,
		},
		PageMeta: pm,
	}
}
