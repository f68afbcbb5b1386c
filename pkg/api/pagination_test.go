package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, PageRequest{Page: 2, Limit: 3})
	assert.Equal(t, []int{4, 5, 6}, page.Data)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := Paginate(items, PageRequest{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, last.Data)

	beyond := Paginate(items, PageRequest{Page: 9, Limit: 3})
	assert.Empty(t, beyond.Data)
	assert.Equal(t, 7, beyond.Total)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  PageRequest
	}{
		{"", PageRequest{Page: 1, Limit: 10}},
		{"page=3&limit=25", PageRequest{Page: 3, Limit: 25}},
		{"page=-1&limit=0", PageRequest{Page: 1, Limit: 10}},
		{"page=abc&limit=1000", PageRequest{Page: 1, Limit: MaxLimit}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tc.query, nil)
			assert.Equal(t, tc.want, ParsePagination(c))
		})
	}
}
