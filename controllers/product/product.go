package productcontroller

import (
	"regexp"
	"strings"

	"github.com/hguir/sellio/models"
	"gorm.io/gorm"
)

var imageURLPattern = regexp.MustCompile(`^https?://`)

type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	ShowStock   bool     `json:"showStock"`
}

// validate returns the first failing field's message, or "" when valid.
func (r *ProductRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(r.Description) == "" {
		return "Description is required"
	}
	if r.Price <= 0 {
		return "Price must be positive"
	}
	if r.Stock < 0 {
		return "Stock must not be negative"
	}
	if len(r.Images) == 0 {
		return "At least one image is required"
	}
	for _, img := range r.Images {
		if !validImageURL(img) {
			return "Image URL must be valid"
		}
	}
	return ""
}

// validImageURL accepts locally uploaded paths and absolute http(s) URLs.
func validImageURL(s string) bool {
	return strings.HasPrefix(s, "/uploads/") || imageURLPattern.MatchString(s)
}

// merchantShop resolves the authenticated merchant's shop.
func merchantShop(db *gorm.DB, userID string) (*models.Shop, error) {
	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}
