package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleMerchant Role = "MERCHANT"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole maps a raw string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleMerchant:
		return RoleMerchant, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", errors.New("invalid role")
	}
}

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:VARCHAR(10);not null" json:"role"`
	Shop      *Shop     `gorm:"foreignKey:OwnerID" json:"shop,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
