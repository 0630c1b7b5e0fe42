package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// GetProducts lists the authenticated merchant's products, newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var products []models.Product
		if err := db.
			Where("shop_id = ?", shop.ID).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
