package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeOrder NotificationType = "ORDER"
)

type Notification struct {
	ID        string           `gorm:"primaryKey" json:"id"`
	Type      NotificationType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"not null" json:"message"`
	Read      bool             `gorm:"default:false" json:"read"`
	ShopID    string           `gorm:"index;not null" json:"shopId"`
	Shop      Shop             `gorm:"foreignKey:ShopID" json:"-"`
	UserID    string           `gorm:"index;not null" json:"userId"`
	User      User             `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
