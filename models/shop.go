package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	Name           string      `gorm:"not null" json:"name"`
	Description    string      `json:"description"`
	Logo           string      `json:"logo"`
	Banner         string      `json:"banner"`
	Theme          string      `gorm:"default:'sellio'" json:"theme"`
	PrimaryColor   string      `gorm:"default:'#3B82F6'" json:"primaryColor"`
	SecondaryColor string      `gorm:"default:'#1E40AF'" json:"secondaryColor"`
	Currency       string      `gorm:"default:'XOF'" json:"currency"`
	ContactEmail   string      `json:"contactEmail"`
	ContactPhone   string      `json:"contactPhone"`
	Address        string      `json:"address"`
	SocialMedia    SocialMedia `gorm:"embedded;embeddedPrefix:social_" json:"socialMedia"`
	OwnerID        string      `gorm:"uniqueIndex;not null" json:"ownerId"`
	Owner          User        `gorm:"foreignKey:OwnerID" json:"-"`
	Products       []Product   `gorm:"foreignKey:ShopID" json:"products,omitempty"`
	Orders         []Order     `gorm:"foreignKey:ShopID" json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// SocialMedia holds the shop's optional social links.
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
