package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// CreateProduct creates a new product in the authenticated merchant's shop.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			Images:      req.Images,
			ShowStock:   req.ShowStock,
			ShopID:      shop.ID,
		}

		if err := db.Create(&product).Error; err != nil {
			zap.L().Error("failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
