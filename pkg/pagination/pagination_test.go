// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhvo-dev/playdeck/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of page/limit values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"zero_page", "?page=0", 1, 10},
		{"negative_page", "?page=-5", 1, 10},
		{"zero_limit", "?limit=0", 1, 10},
		{"over_max_limit", "?limit=1000", 1, 10},
		{"max_limit_allowed", "?limit=100", 1, 100},
		{"garbage_values", "?page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/users"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the zero-based offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 6, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestNewPage verifies envelope construction and totalPages rounding.
*/
func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		limit          int
		wantTotalPages int
	}{
		{"exact_division", 20, 10, 2},
		{"rounds_up", 21, 10, 3},
		{"single_partial_page", 3, 10, 1},
		{"empty", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := pagination.NewPage([]string{"a"}, 1, tt.limit, tt.total)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
		})
	}
}

/*
TestNewPage_NilData ensures a nil slice is encoded as an empty array, never null.
*/
func TestNewPage_NilData(t *testing.T) {
	page := pagination.NewPage[string](nil, 1, 10, 0)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

/*
TestPage_Meta checks that the metadata block mirrors the envelope verbatim.
*/
func TestPage_Meta(t *testing.T) {
	page := pagination.Page[int]{Data: []int{1, 2}, Total: 12, Page: 2, Limit: 5, TotalPages: 3}
	meta := page.Meta()

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.Limit)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
