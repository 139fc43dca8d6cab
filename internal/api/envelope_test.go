package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedHasMoreWhenMoreRemain(t *testing.T) {
	p := newPaginated([]int{1, 2}, 2, 10, 2, 0)
	assert.True(t, p.Pagination.HasMore)
	assert.Equal(t, 10, p.Pagination.Total)
}

func TestNewPaginatedHasMoreFalseAtEnd(t *testing.T) {
	p := newPaginated([]int{9}, 1, 10, 5, 9)
	assert.False(t, p.Pagination.HasMore)
}

func TestNewPaginatedHasMoreFalseWhenEverythingReturned(t *testing.T) {
	p := newPaginated([]int{1, 2, 3}, 3, 3, 50, 0)
	assert.False(t, p.Pagination.HasMore)
}
