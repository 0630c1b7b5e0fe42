package productcontroller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(25, 12))
	assert.Equal(t, 2, totalPages(24, 12))
	assert.Equal(t, 1, totalPages(1, 12))
	assert.Equal(t, 0, totalPages(0, 12))
	assert.Equal(t, 0, totalPages(10, 0))
}

func TestParseSearchFiltersDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/products/search", nil)

	f := parseSearchFilters(c)

	assert.Equal(t, "", f.Query)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.Limit)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.False(t, f.InStock)
}

func TestParseSearchFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET",
		"/api/products/search?q=shoes&shopId=s1&minPrice=10.5&maxPrice=99&inStock=true&page=3&limit=20", nil)

	f := parseSearchFilters(c)

	assert.Equal(t, "shoes", f.Query)
	assert.Equal(t, "s1", f.ShopID)
	if assert.NotNil(t, f.MinPrice) {
		assert.Equal(t, 10.5, *f.MinPrice)
	}
	if assert.NotNil(t, f.MaxPrice) {
		assert.Equal(t, 99.0, *f.MaxPrice)
	}
	assert.True(t, f.InStock)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 20, f.Limit)
}

func TestProductRequestValidate(t *testing.T) {
	req := ProductRequest{
		Name:        "Sneakers",
		Description: "Comfortable",
		Price:       49.99,
		Stock:       3,
		Images:      []string{"/uploads/sneakers.png"},
	}
	assert.Equal(t, "", req.validate())

	bad := req
	bad.Price = 0
	assert.Equal(t, "Price must be positive", bad.validate())

	bad = req
	bad.Stock = -1
	assert.Equal(t, "Stock must not be negative", bad.validate())

	bad = req
	bad.Images = nil
	assert.Equal(t, "At least one image is required", bad.validate())

	bad = req
	bad.Images = []string{"ftp://example.com/a.png"}
	assert.Equal(t, "Image URL must be valid", bad.validate())
}

func TestValidImageURL(t *testing.T) {
	assert.True(t, validImageURL("/uploads/a.png"))
	assert.True(t, validImageURL("https://cdn.example.com/a.png"))
	assert.True(t, validImageURL("http://cdn.example.com/a.png"))
	assert.False(t, validImageURL("a.png"))
	assert.False(t, validImageURL("file:///etc/passwd"))
}
