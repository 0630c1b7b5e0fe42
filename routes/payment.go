package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hguir/sellio/config"
	paymentControllers "github.com/hguir/sellio/controllers/payment"
)

// SetupPaymentRoutes registers the payment gateway adapter endpoints.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *config.Config) {
	svc := paymentControllers.NewCinetPayService(cfg.CinetPay)

	payment := api.Group("/payment")
	{
		payment.POST("", paymentControllers.InitiatePayment(svc))
		payment.GET("", paymentControllers.VerifyPayment(svc))
	}
}
