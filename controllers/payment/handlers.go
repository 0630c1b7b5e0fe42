package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hguir/sellio/util"
)

const designation = "Paiement Sellio"

type InitiatePaymentRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
}

// validate returns the first failing field's message, or "" when valid.
func (r *InitiatePaymentRequest) validate() string {
	if r.Amount <= 0 {
		return "Amount must be positive"
	}
	if r.Currency == "" {
		return "Currency is required"
	}
	if r.CustomerName == "" {
		return "Customer name is required"
	}
	return ""
}

// generateTransactionID builds a collision-resistant transaction id.
func generateTransactionID() string {
	return "TRANS-" + uuid.NewString()
}

// InitiatePayment starts a checkout session with the gateway and relays its
// raw response to the caller.
func InitiatePayment(svc *CinetPayService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InitiatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		data := PaymentData{
			Amount:        req.Amount,
			Currency:      req.Currency,
			TransID:       generateTransactionID(),
			Designation:   designation,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		}

		util.PaymentsInitiatedTotal.Inc()

		response, err := svc.InitiatePayment(data)
		if err != nil {
			zap.L().Error("payment initiation failed", zap.Error(err), zap.String("transaction_id", data.TransID))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment processing failed"})
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// VerifyPayment relays the gateway's verification payload for a transaction.
// The confirmation flow treats status == "ACCEPTED" as success.
func VerifyPayment(svc *CinetPayService) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Query("transaction_id")
		if transactionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing transaction id"})
			return
		}

		util.PaymentsVerifiedTotal.Inc()

		response, err := svc.VerifyPayment(transactionID)
		if err != nil {
			zap.L().Error("payment verification failed", zap.Error(err), zap.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment verification failed"})
			return
		}

		c.JSON(http.StatusOK, response)
	}
}
