package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/config"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupProductRoutes(api, db, cfg)
	SetupOrderRoutes(api, db, cfg)
	SetupShopRoutes(api, db, cfg)
	SetupPaymentRoutes(api, cfg)
}
