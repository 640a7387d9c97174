// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

// Package paginate provides shared types and helpers for paging list results.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how full in-memory result lists are sliced into page-bounded subsets, and
// how the resulting metadata is delivered in the API response envelope.
package paginate

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// Ellipsis is the gap marker emitted by [Window].
	Ellipsis = "…"
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// WithLimit returns a copy of p using the new per-page limit.
//
// The page is reset to 1 so that a smaller result set never leaves the
// caller stranded on a page past the end.
func (p Params) WithLimit(limit int) Params {
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return Params{Page: DefaultPage, Limit: limit}
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewMeta constructs pagination metadata for a response.
//
// # Clamping
//
// TotalPages is always at least 1, and the reported page is clamped into
// [1, TotalPages] so a stale page number from the client never produces
// out-of-range navigation state.
func NewMeta(page, limit, total int) Meta {
	totalPages := 1
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if totalPages < 1 {
		totalPages = 1
	}

	page = clampPage(page, totalPages)

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Slice returns the page-bounded subset of a full ordered result list
// along with the navigation metadata.
//
// Concatenating Slice(items, 1, limit) .. Slice(items, TotalPages, limit)
// reproduces items exactly once each.
func Slice[T any](items []T, page, limit int) ([]T, Meta) {
	if limit < 1 {
		limit = DefaultLimit
	}

	meta := NewMeta(page, limit, len(items))

	start := (meta.Page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], meta
}

// Window returns the deterministic page-button labels for a pager:
// first page, last page, current ±1, with [Ellipsis] marking each gap.
//
// Example for (page=5, totalPages=9): ["1" "…" "4" "5" "6" "…" "9"].
func Window(page, totalPages int) []string {
	if totalPages < 1 {
		totalPages = 1
	}
	page = clampPage(page, totalPages)

	labels := make([]string, 0, 7)
	previous := 0

	for n := 1; n <= totalPages; n++ {
		if n != 1 && n != totalPages && (n < page-1 || n > page+1) {
			continue
		}
		if previous != 0 && n-previous > 1 {
			labels = append(labels, Ellipsis)
		}
		labels = append(labels, strconv.Itoa(n))
		previous = n
	}

	return labels
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// clampPage forces page into [1, totalPages].
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
