package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // placed, awaiting merchant confirmation
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // confirmed by the merchant
	OrderStatusDelivered OrderStatus = "DELIVERED" // received by the customer
)

// statusRank orders the lifecycle so transitions can only move forward.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusDelivered: 2,
}

// ParseOrderStatus maps a raw string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CanTransition reports whether an order may move from one status to another.
// Re-applying the current status is allowed; going backward is not.
func CanTransition(from, to OrderStatus) bool {
	return statusRank[to] >= statusRank[from]
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Total           float64     `gorm:"not null" json:"total"`
	Status          OrderStatus `gorm:"type:VARCHAR(12);default:'PENDING'" json:"status"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	ShopID          string      `gorm:"index;not null" json:"shopId"`
	Shop            Shop        `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	CustomerID      string      `gorm:"index;not null" json:"customerId"`
	Customer        User        `gorm:"foreignKey:CustomerID" json:"-"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Review          *Review     `gorm:"foreignKey:OrderID" json:"review,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index;not null" json:"orderId"`
	ProductID string  `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"` // snapshotted at order time
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
