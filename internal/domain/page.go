package domain

// Pagination defaults and bounds applied by NewPaginationParams.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// PaginationParams selects one page of a result set.
// Page is 1-indexed; Limit is the page size.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams derives PaginationParams from the optional page and
// limit query values. Absent or out-of-range values fall back to page 1 and
// limit 20; limits above 100 are clamped to 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: defaultPage, Limit: defaultLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxLimit)
	}
	return p
}

// Offset converts the 1-indexed page into the zero-based row offset
// for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
