package queryparams

// Defaults and bounds for list-style endpoints.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "asc"
)

// ListParams carries generic pagination/sorting values bound from the query
// string.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
}

// Validate clamps the values into their allowed ranges in place.
func (p *ListParams) Validate() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset returns the SQL offset for the current page.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages returns the page count for a filtered row count.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta describes the page window of a PaginatedResult.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"itemsPerPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult is the envelope returned by paginated list endpoints.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"pagination"`
}
