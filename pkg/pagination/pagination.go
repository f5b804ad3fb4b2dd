package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// DefaultParams returns the first page with the default page size.
func DefaultParams() Params {
	return Params{Page: 1, Limit: DefaultLimit}
}

// New builds Params, falling back to defaults for out-of-range values.
func New(page, limit int) Params {
	p := DefaultParams()
	if page > 0 {
		p.Page = page
	}
	if limit > 0 && limit <= MaxLimit {
		p.Limit = limit
	}
	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// FromRequest extracts page and limit from the query string. "per_page" is
// accepted as an alias for "limit". Invalid values fall back to defaults.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))

	rawLimit := q.Get("limit")
	if rawLimit == "" {
		rawLimit = q.Get("per_page")
	}
	limit, _ := strconv.Atoi(rawLimit)

	return New(page, limit)
}

// Slice returns the window of items selected by p. Pages past the end yield
// an empty, non-nil slice.
func Slice[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
