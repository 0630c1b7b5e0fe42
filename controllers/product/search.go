package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/models"
)

const defaultPageSize = 12

type SearchFilters struct {
	Query    string
	ShopID   string
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	Page     int
	Limit    int
}

// parseSearchFilters reads the query string; every filter is optional.
func parseSearchFilters(c *gin.Context) SearchFilters {
	f := SearchFilters{
		Query:   c.Query("q"),
		ShopID:  c.Query("shopId"),
		InStock: c.Query("inStock") == "true",
		Page:    1,
		Limit:   defaultPageSize,
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		f.Limit = v
	}
	return f
}

// totalPages is a ceiling division of the match count by the page size.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

type shopSummary struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type searchProduct struct {
	models.Product
	Shop shopSummary `json:"shop"`
}

// applyFilters builds the WHERE clause shared by the count and page queries.
func applyFilters(f SearchFilters) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		likePattern := "%" + f.Query + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)

		if f.ShopID != "" {
			tx = tx.Where("shop_id = ?", f.ShopID)
		}
		if f.MinPrice != nil {
			tx = tx.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			tx = tx.Where("price <= ?", *f.MaxPrice)
		}
		if f.InStock {
			tx = tx.Where("stock > 0")
		}
		return tx
	}
}

// SearchProducts is the public catalog search: free-text match on name or
// description, shop/price/stock filters and 1-based pagination, newest first.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := parseSearchFilters(c)

		var total int64
		if err := db.Model(&models.Product{}).Scopes(applyFilters(f)).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search products"})
			return
		}

		var products []models.Product
		if err := db.
			Scopes(applyFilters(f)).
			Preload("Shop").
			Order("created_at DESC").
			Offset((f.Page - 1) * f.Limit).
			Limit(f.Limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search products"})
			return
		}

		results := make([]searchProduct, 0, len(products))
		for _, p := range products {
			results = append(results, searchProduct{
				Product: p,
				Shop:    shopSummary{Name: p.Shop.Name, Logo: p.Shop.Logo},
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"products": results,
			"pagination": gin.H{
				"total":       total,
				"pages":       totalPages(total, f.Limit),
				"currentPage": f.Page,
				"limit":       f.Limit,
			},
		})
	}
}
