package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
	"github.com/hguir/sellio/util"
)

var errInsufficientStock = errors.New("product unavailable or insufficient stock")

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	ShopID          string             `json:"shopId"`
	Items           []OrderItemRequest `json:"items"`
	Total           float64            `json:"total"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
}

// validate returns the first failing field's message, or "" when valid.
func (r *CreateOrderRequest) validate() string {
	if r.ShopID == "" {
		return "Shop ID is required"
	}
	if len(r.Items) == 0 {
		return "Order must contain at least one item"
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return "Item product ID is required"
		}
		if item.Quantity <= 0 {
			return "Item quantity must be positive"
		}
		if item.Price < 0 {
			return "Item price must not be negative"
		}
	}
	return ""
}

// -------- Helpers --------

// generateOrderNumber builds the human-readable order reference.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("CMD-%d", now.UnixMilli())
}

// recomputeTotal sums the submitted item prices. The stored total is the one
// the caller sent; a mismatch is only logged (see DESIGN.md).
func recomputeTotal(items []OrderItemRequest) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// merchantShop resolves the authenticated merchant's shop.
func merchantShop(db *gorm.DB, userID string) (*models.Shop, error) {
	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// -------- Handlers --------

// CreateOrder places a multi-item order against one shop. Stock decrements,
// the order rows and the owner notification are committed as a single
// transaction, so a failed step never leaves an order without its notification.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.SessionUserID(c)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		var shop models.Shop
		if err := db.First(&shop, "id = ?", req.ShopID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		if computed := recomputeTotal(req.Items); computed != req.Total {
			zap.L().Warn("order total differs from item sum",
				zap.Float64("submitted", req.Total),
				zap.Float64("computed", computed),
				zap.String("customer_id", customerID))
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		order := models.Order{
			OrderNumber:     generateOrderNumber(time.Now()),
			Total:           req.Total,
			Status:          models.OrderStatusPending,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			ShopID:          shop.ID,
			CustomerID:      customerID,
			Items:           items,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Conditional decrement so concurrent checkouts cannot oversell.
			for _, item := range req.Items {
				res := tx.Model(&models.Product{}).
					Where("id = ? AND shop_id = ? AND stock >= ?", item.ProductID, shop.ID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return errInsufficientStock
				}
			}

			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			notification := models.Notification{
				Type:    models.NotificationTypeOrder,
				Title:   "Nouvelle commande",
				Message: fmt.Sprintf("Nouvelle commande #%s de %s", order.OrderNumber, req.CustomerName),
				ShopID:  shop.ID,
				UserID:  shop.OwnerID,
			}
			return tx.Create(&notification).Error
		})
		if err != nil {
			if errors.Is(err, errInsufficientStock) {
				util.OrdersFailedTotal.WithLabelValues("insufficient_stock").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"message": "Product unavailable or insufficient stock"})
				return
			}
			util.OrdersFailedTotal.WithLabelValues("internal").Inc()
			zap.L().Error("failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
			return
		}

		// The order is committed at this point; a reload failure must not
		// become an error response, or a client retry would order twice.
		var created models.Order
		if err := db.Preload("Items.Product").First(&created, "id = ?", order.ID).Error; err != nil {
			zap.L().Warn("failed to reload created order", zap.Error(err))
			created = order
		}

		util.OrdersCreatedTotal.Inc()
		broadcastNewOrder(shop.OwnerID, created)

		c.JSON(http.StatusCreated, created)
	}
}

// GetOrders lists the merchant's shop orders, newest first.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("shop_id = ?", shop.ID).
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID reads a single order under the caller's scope: merchants see
// orders of their own shop, customers see their own orders. Anything outside
// that scope is reported as not found, never as forbidden.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.SessionUserID(c)
		orderID := c.Param("id")

		role, _ := c.Get(middleware.CtxRole)
		if role == models.RoleMerchant {
			shop, err := merchantShop(db, userID)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
				return
			}
			var order models.Order
			if err := db.
				Where("id = ? AND shop_id = ?", orderID, shop.ID).
				Preload("Items.Product").
				Preload("Review").
				First(&order).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusOK, order)
			return
		}

		var order models.Order
		if err := db.
			Where("id = ? AND customer_id = ?", orderID, userID).
			Preload("Shop").
			Preload("Items.Product").
			Preload("Review").
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order of the merchant's shop along the
// PENDING -> CONFIRMED -> DELIVERED lifecycle. Backward moves are rejected.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop, err := merchantShop(db, middleware.SessionUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be PENDING, CONFIRMED or DELIVERED"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND shop_id = ?", c.Param("id"), shop.ID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		if !models.CanTransition(order.Status, newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order status can only move forward"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			zap.L().Error("failed to update order status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}

		order.Status = newStatus
		c.JSON(http.StatusOK, order)
	}
}
