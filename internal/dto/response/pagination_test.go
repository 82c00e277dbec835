package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	page := NewPaginatedResponse([]string{"a", "b"}, 2, 20, 41)

	assert.Equal(t, []string{"a", "b"}, page.Data)
	assert.Equal(t, int64(41), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 20, page.Pagination.PerPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestNewPaginatedResponseEmpty(t *testing.T) {
	page := NewPaginatedResponse([]string{}, 1, 20, 0)

	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}
