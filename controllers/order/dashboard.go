package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

const recentOrdersWindow = 5

// sumTotals adds up the totals of a recent-order window. This is not all-time
// revenue: the dashboard shows activity over the last few orders only.
func sumTotals(orders []models.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}

// DashboardStats aggregates the merchant's product count and the five most
// recent orders of their shop.
func DashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var totalProducts int64
		if err := db.Model(&models.Product{}).Where("shop_id = ?", shop.ID).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch statistics"})
			return
		}

		var recentOrders []models.Order
		if err := db.
			Where("shop_id = ?", shop.ID).
			Preload("Items.Product").
			Order("created_at DESC").
			Limit(recentOrdersWindow).
			Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch statistics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalProducts": totalProducts,
			"totalOrders":   len(recentOrders),
			"totalRevenue":  sumTotals(recentOrders),
			"recentOrders":  recentOrders,
		})
	}
}
