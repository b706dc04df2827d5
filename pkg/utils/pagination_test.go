package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateDefaults(t *testing.T) {
	p := Paginate(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginateClampsLimit(t *testing.T) {
	p := Paginate(2, 500)
	assert.Equal(t, MaxPageSize, p.Limit)
	assert.Equal(t, MaxPageSize, p.Offset)

	p = Paginate(3, -1)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Equal(t, 3, p.Page)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
}
