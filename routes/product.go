package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/config"
	productcontroller "github.com/hguir/sellio/controllers/product"
	uploadControllers "github.com/hguir/sellio/controllers/upload"
	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// SetupProductRoutes registers the public catalog search plus the
// merchant-scoped product management endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	products := api.Group("/products")
	{
		// Public catalog search
		products.GET("/search", productcontroller.SearchProducts(db))

		// Merchant product management
		merchant := products.Group("")
		merchant.Use(middleware.RequireAuth(cfg.JWT.Secret), middleware.RequireRole(models.RoleMerchant))
		{
			merchant.GET("", productcontroller.GetProducts(db))
			merchant.POST("", productcontroller.CreateProduct(db))
			merchant.PUT("", productcontroller.UpdateProduct(db))
			merchant.DELETE("/:id", productcontroller.DeleteProduct(db))
			merchant.GET("/export", productcontroller.ExportProductsToExcel(db))
		}
	}

	api.POST("/upload",
		middleware.RequireAuth(cfg.JWT.Secret),
		uploadControllers.UploadFile(cfg.Upload),
	)
}
