package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/auth"
	"github.com/hguir/sellio/config"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg.JWT))
	}
}
