package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is a normalized 1-based page request. Both fields are >= 1.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page and limit to at least 1.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns (Page-1)*Limit, saturating at math.MaxInt.
func (p PageRequest) Offset() int {
	skipped := p.Page - 1
	if skipped > 0 && p.Limit > math.MaxInt/skipped {
		return math.MaxInt
	}
	return skipped * p.Limit
}

// ParsePageParam coerces a raw query value to an integer the way a lenient
// form parser does: surrounding space is ignored and the leading integer is
// taken ("3abc" and "3.9" give 3). Empty, non-numeric or out-of-range input
// returns def. The result is not clamped; NewPageRequest does that.
func ParsePageParam(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}

// PageInfo describes one page of a larger ordered list.
type PageInfo struct {
	TotalItems  int
	TotalPages  int
	CurrentPage int
	Limit       int
	HasPrev     bool
	HasNext     bool
	PrevPage    *int
	NextPage    *int
}

// NewPageInfo computes pagination metadata for totalItems items.
// A page past the end is legal: it simply has no next page.
func NewPageInfo(totalItems int, req PageRequest) PageInfo {
	totalPages := totalItems / req.Limit
	if totalItems%req.Limit != 0 {
		totalPages++
	}

	info := PageInfo{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: req.Page,
		Limit:       req.Limit,
		HasPrev:     req.Page > 1,
		HasNext:     req.Page < totalPages,
	}
	if info.HasPrev {
		prev := req.Page - 1
		info.PrevPage = &prev
	}
	if info.HasNext {
		next := req.Page + 1
		info.NextPage = &next
	}
	return info
}

// Paginate slices one page out of an in-memory list. The returned slice is
// never nil.
func Paginate[T any](items []T, req PageRequest) ([]T, PageInfo) {
	info := NewPageInfo(len(items), req)

	start := req.Offset()
	if start >= len(items) {
		return []T{}, info
	}
	end := len(items)
	if req.Limit < end-start {
		end = start + req.Limit
	}

	page := make([]T, end-start)
	copy(page, items[start:end])
	return page, info
}
