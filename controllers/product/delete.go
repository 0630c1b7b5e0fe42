package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// DeleteProduct removes a product from the caller's shop.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		id := c.Param("id")
		var product models.Product
		if err := db.Where("id = ? AND shop_id = ?", id, shop.ID).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			zap.L().Error("failed to delete product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
