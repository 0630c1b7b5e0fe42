package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/config"
	reviewControllers "github.com/hguir/sellio/controllers/review"
	shopControllers "github.com/hguir/sellio/controllers/shop"
	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// SetupShopRoutes registers the public storefront reads and the owner-only
// settings endpoints.
func SetupShopRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	shops := api.Group("/shops")
	{
		shops.GET("/:id", shopControllers.GetShop(db))
		shops.GET("/:id/reviews", reviewControllers.GetShopReviews(db))
	}

	settings := api.Group("/shop/settings")
	settings.Use(middleware.RequireAuth(cfg.JWT.Secret), middleware.RequireRole(models.RoleMerchant))
	{
		settings.GET("", shopControllers.GetSettings(db))
		settings.PUT("", shopControllers.UpdateSettings(db))
	}
}
