package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages_TableTest(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "empty collection", total: 0, limit: 10, want: 0},
		{name: "exact division", total: 100, limit: 10, want: 10},
		{name: "partial last page", total: 101, limit: 10, want: 11},
		{name: "single document", total: 1, limit: 10, want: 1},
		{name: "limit of one", total: 7, limit: 1, want: 7},
		{name: "fewer documents than limit", total: 3, limit: 50, want: 1},
		{name: "negative total treated as empty", total: -1, limit: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.limit))
		})
	}
}

func TestNewPage_HasNextHasPrev_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page        int
		limit       int
		wantHasNext bool
		wantHasPrev bool
	}{
		{name: "first of many", total: 30, page: 1, limit: 10, wantHasNext: true, wantHasPrev: false},
		{name: "middle page", total: 30, page: 2, limit: 10, wantHasNext: true, wantHasPrev: true},
		{name: "last page", total: 30, page: 3, limit: 10, wantHasNext: false, wantHasPrev: true},
		{name: "only page", total: 5, page: 1, limit: 10, wantHasNext: false, wantHasPrev: false},
		{name: "empty collection", total: 0, page: 1, limit: 10, wantHasNext: false, wantHasPrev: false},
		{name: "page past the end of empty collection", total: 0, page: 3, limit: 10, wantHasNext: false, wantHasPrev: false},
		{name: "page past the end", total: 10, page: 5, limit: 10, wantHasNext: false, wantHasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := newPage[string](nil, tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.wantHasNext, page.HasNext)
			assert.Equal(t, tt.wantHasPrev, page.HasPrev)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.limit, page.Limit)
		})
	}
}

func TestNewPage_NilDataBecomesEmptySlice(t *testing.T) {
	page := newPage[int](nil, 0, 1, 10)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}
