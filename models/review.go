package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"uniqueIndex;not null" json:"orderId"`
	Order     Order     `gorm:"foreignKey:OrderID" json:"-"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
