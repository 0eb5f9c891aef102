package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{
			name:     "first_of_three_pages",
			page:     1,
			pageSize: 10,
			total:    25,
			want: Pagination{
				CurrentPage: 1,
				TotalPages:  3,
				TotalCount:  25,
				HasNext:     true,
				HasPrev:     false,
			},
		},
		{
			name:     "middle_page",
			page:     2,
			pageSize: 10,
			total:    25,
			want: Pagination{
				CurrentPage: 2,
				TotalPages:  3,
				TotalCount:  25,
				HasNext:     true,
				HasPrev:     true,
			},
		},
		{
			name:     "last_page",
			page:     3,
			pageSize: 10,
			total:    25,
			want: Pagination{
				CurrentPage: 3,
				TotalPages:  3,
				TotalCount:  25,
				HasNext:     false,
				HasPrev:     true,
			},
		},
		{
			name:     "empty_result",
			page:     1,
			pageSize: 10,
			total:    0,
			want: Pagination{
				CurrentPage: 1,
				TotalPages:  0,
				TotalCount:  0,
				HasNext:     false,
				HasPrev:     false,
			},
		},
		{
			name:     "zero_page_size_does_not_panic",
			page:     1,
			pageSize: 0,
			total:    5,
			want: Pagination{
				CurrentPage: 1,
				TotalPages:  5,
				TotalCount:  5,
				HasNext:     true,
				HasPrev:     false,
			},
		},
		{
			name:     "exact_page_boundary",
			page:     2,
			pageSize: 10,
			total:    20,
			want: Pagination{
				CurrentPage: 2,
				TotalPages:  2,
				TotalCount:  20,
				HasNext:     false,
				HasPrev:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.pageSize, tt.total))
		})
	}
}
