package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/config"
	notificationControllers "github.com/hguir/sellio/controllers/notification"
	orderControllers "github.com/hguir/sellio/controllers/order"
	reviewControllers "github.com/hguir/sellio/controllers/review"
	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// SetupOrderRoutes registers order placement and management, the merchant
// dashboard, notifications and the review submission endpoint.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	requireAuth := middleware.RequireAuth(cfg.JWT.Secret)
	requireMerchant := middleware.RequireRole(models.RoleMerchant)
	requireCustomer := middleware.RequireRole(models.RoleCustomer)

	orders := api.Group("/orders")
	orders.Use(requireAuth)
	{
		orders.POST("", requireCustomer, orderControllers.CreateOrder(db))
		orders.GET("", requireMerchant, orderControllers.GetOrders(db))
		orders.GET("/:id", orderControllers.GetOrderByID(db))
		orders.PATCH("/:id/status", requireMerchant, orderControllers.UpdateOrderStatus(db))
		orders.POST("/:id/review", requireCustomer, reviewControllers.SubmitReview(db))
	}

	// websocket endpoint for real-time order updates
	api.GET("/ws/orders", requireAuth, requireMerchant, orderControllers.OrderFeedHandler())

	api.GET("/dashboard/stats", requireAuth, requireMerchant, orderControllers.DashboardStats(db))

	notifications := api.Group("/notifications")
	notifications.Use(requireAuth)
	{
		notifications.GET("", notificationControllers.GetNotifications(db))
		notifications.PATCH("/:id/read", notificationControllers.MarkNotificationRead(db))
	}
}
