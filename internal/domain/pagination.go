package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Window returns the [start, end) bounds of the current page over a list of
// total items, clamped to the list.
func (p PaginationParams) Window(total int) (start, end int) {
	start = min(p.Offset(), total)
	end = total
	if p.PageSize > 0 {
		end = min(start+p.PageSize, total)
	}
	return start, end
}
