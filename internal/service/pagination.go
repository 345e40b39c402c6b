package service

import "github.com/skti-dev/bncc-backend/models"

// totalPages computes ceil(total/limit), or 0 when the collection is empty.
func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// newPage assembles the common pagination envelope around one page of data.
//
// data may be nil or empty when the requested page lies past the last one;
// total and the derived counts stay accurate in that case so callers can
// tell "no content at this page" from "no content at all".
func newPage[T any](data []T, total int64, page, limit int) models.Page[T] {
	pages := totalPages(total, limit)
	if data == nil {
		data = []T{}
	}

	return models.Page[T]{
		Total:      total,
		TotalPages: pages,
		Page:       page,
		Limit:      limit,
		HasNext:    page < pages,
		HasPrev:    page > 1 && pages > 0,
		Data:       data,
	}
}
