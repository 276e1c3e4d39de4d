package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drivers() []Driver {
	return []Driver{
		{ID: "d1", FirstName: "Musa", LastName: "Bello", Email: "musa@courier.test"},
		{ID: "d2", FirstName: "Ngozi", LastName: "Eze", Email: "ngozi@courier.test"},
		{ID: "d3", FirstName: "Tunde", LastName: "Musa", Email: "t.musa@mail.test"},
	}
}

func TestFilterDrivers(t *testing.T) {
	assert.Len(t, FilterDrivers(drivers(), ""), 3)

	got := FilterDrivers(drivers(), "MUSA")
	assert.Len(t, got, 2)
	assert.Equal(t, "d1", got[0].ID)
	assert.Equal(t, "d3", got[1].ID)

	got = FilterDrivers(drivers(), "ngozi@")
	assert.Len(t, got, 1)

	got = FilterDrivers(drivers(), "bello mu")
	assert.Empty(t, got)

	assert.Len(t, FilterDrivers(drivers(), "musa bello"), 1)
}

func TestPaginateDrivers(t *testing.T) {
	page := PaginateDrivers(drivers(), 2, 2)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "d3", page.Items[0].ID)

	page = PaginateDrivers(drivers(), 9, 2)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)

	page = PaginateDrivers(drivers(), 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.Limit)
	assert.Len(t, page.Items, 3)

	assert.Equal(t, MaxPageSize, PaginateDrivers(nil, 1, 1000).Limit)
}

func TestPaginateDrivers_HugePageIsEmpty(t *testing.T) {
	page := PaginateDrivers(drivers(), math.MaxInt64, DefaultPageSize)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, math.MaxInt64, page.Page)

	page = PaginateDrivers(drivers(), math.MaxInt64/2+1, 2)
	assert.Empty(t, page.Items)
}
