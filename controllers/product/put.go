package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

type updateProductRequest struct {
	ID string `json:"id"`
	ProductRequest
}

// UpdateProduct updates an existing product. The product must belong to the
// caller's shop; anything else resolves as not found.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if req.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND shop_id = ?", req.ID, shop.ID).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Price = req.Price
		product.Stock = req.Stock
		product.Images = req.Images
		product.ShowStock = req.ShowStock

		if err := db.Save(&product).Error; err != nil {
			zap.L().Error("failed to update product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
