package models

// Pagination is listing envelope reported alongside page data
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NewPagination builds envelope for given page, page size and total count
func NewPagination(page, pageSize int, total int64) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
