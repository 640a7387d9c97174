// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/pkg/paginate"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

/*
TestSlice_Invariants checks the structural guarantees for arbitrary inputs:
the reported page stays in [1, TotalPages], no page exceeds the limit, and
concatenating every page reproduces the full list exactly once.
*/
func TestSlice_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		limit int
	}{
		{"exact_multiple", 40, 1, 20},
		{"partial_last_page", 45, 3, 20},
		{"single_item", 1, 1, 20},
		{"empty_list", 0, 1, 20},
		{"page_past_end", 10, 99, 3},
		{"negative_page", 10, -5, 3},
		{"limit_one", 5, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := makeItems(tt.total)

			pageItems, meta := paginate.Slice(items, tt.page, tt.limit)

			assert.GreaterOrEqual(t, meta.Page, 1)
			assert.LessOrEqual(t, meta.Page, meta.TotalPages)
			assert.GreaterOrEqual(t, meta.TotalPages, 1)
			assert.LessOrEqual(t, len(pageItems), tt.limit)

			// Walking all pages in order yields each item exactly once.
			concatenated := []int{}
			for p := 1; p <= meta.TotalPages; p++ {
				chunk, _ := paginate.Slice(items, p, tt.limit)
				concatenated = append(concatenated, chunk...)
			}
			assert.Equal(t, items, concatenated)
		})
	}
}

func TestSlice_ClampsStalePage(t *testing.T) {
	items := makeItems(10)

	pageItems, meta := paginate.Slice(items, 99, 3)

	// 10 items over limit 3 → 4 pages; page 99 lands on the last page.
	require.Equal(t, 4, meta.TotalPages)
	assert.Equal(t, 4, meta.Page)
	assert.Equal(t, []int{10}, pageItems)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestNewMeta_EmptyListStillHasOnePage(t *testing.T) {
	meta := paginate.NewMeta(1, 20, 0)

	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 1, meta.Page)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestParams_WithLimitResetsPage(t *testing.T) {
	params := paginate.Params{Page: 7, Limit: 20}

	changed := params.WithLimit(50)

	assert.Equal(t, 1, changed.Page)
	assert.Equal(t, 50, changed.Limit)

	// Out-of-range limits fall back to the default.
	assert.Equal(t, paginate.DefaultLimit, params.WithLimit(0).Limit)
	assert.Equal(t, paginate.DefaultLimit, params.WithLimit(9999).Limit)
}

/*
TestWindow pins the ellipsis-compaction rule: first, last, current ±1, and a
gap marker for anything skipped. The output must be deterministic for a given
(page, totalPages) pair.
*/
func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		expected   []string
	}{
		{"single_page", 1, 1, []string{"1"}},
		{"few_pages_no_gap", 2, 3, []string{"1", "2", "3"}},
		{"middle_double_gap", 5, 9, []string{"1", "…", "4", "5", "6", "…", "9"}},
		{"near_start", 2, 9, []string{"1", "2", "3", "…", "9"}},
		{"near_end", 8, 9, []string{"1", "…", "7", "8", "9"}},
		{"first_page_long", 1, 10, []string{"1", "2", "…", "10"}},
		{"clamped_page", 50, 9, []string{"1", "…", "8", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paginate.Window(tt.page, tt.totalPages))
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, paginate.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, paginate.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, paginate.Params{Page: 0, Limit: 20}.Offset())
}
