package shopControllers

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type productSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
	Stock  int      `json:"stock"`
}

// GetShop is the public storefront read: display fields plus product
// summaries. Owner-only fields are never included.
func GetShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shop models.Shop
		if err := db.Preload("Products").First(&shop, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		products := make([]productSummary, 0, len(shop.Products))
		for _, p := range shop.Products {
			products = append(products, productSummary{
				ID:     p.ID,
				Name:   p.Name,
				Price:  p.Price,
				Images: p.Images,
				Stock:  p.Stock,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             shop.ID,
			"name":           shop.Name,
			"description":    shop.Description,
			"logo":           shop.Logo,
			"banner":         shop.Banner,
			"primaryColor":   shop.PrimaryColor,
			"secondaryColor": shop.SecondaryColor,
			"socialMedia":    shop.SocialMedia,
			"products":       products,
		})
	}
}

// GetSettings returns the full shop record to its owner.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shop models.Shop
		if err := db.Where("owner_id = ?", middleware.SessionUserID(c)).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}
		c.JSON(http.StatusOK, shop)
	}
}

type SettingsRequest struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Logo           string             `json:"logo"`
	Banner         string             `json:"banner"`
	Theme          string             `json:"theme"`
	PrimaryColor   string             `json:"primaryColor"`
	SecondaryColor string             `json:"secondaryColor"`
	Currency       string             `json:"currency"`
	ContactEmail   string             `json:"contactEmail"`
	ContactPhone   string             `json:"contactPhone"`
	Address        string             `json:"address"`
	SocialMedia    models.SocialMedia `json:"socialMedia"`
}

// validate returns the first failing field's message, or "" when valid.
func (r *SettingsRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "Shop name is required"
	}
	if r.Theme != "" && r.Theme != "sellio" && r.Theme != "custom" {
		return "Theme must be sellio or custom"
	}
	if !hexColorPattern.MatchString(r.PrimaryColor) {
		return "Primary color must be a valid hex color"
	}
	if !hexColorPattern.MatchString(r.SecondaryColor) {
		return "Secondary color must be a valid hex color"
	}
	if strings.TrimSpace(r.Currency) == "" {
		return "Currency is required"
	}
	optionalURLs := map[string]string{
		"Logo":      r.Logo,
		"Banner":    r.Banner,
		"Facebook":  r.SocialMedia.Facebook,
		"Instagram": r.SocialMedia.Instagram,
		"Twitter":   r.SocialMedia.Twitter,
	}
	for field, raw := range optionalURLs {
		if raw == "" {
			continue
		}
		if !validURL(raw) {
			return field + " must be a valid URL"
		}
	}
	return ""
}

// validURL accepts absolute http(s) URLs and locally uploaded paths.
func validURL(s string) bool {
	if strings.HasPrefix(s, "/uploads/") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// UpdateSettings replaces the owner's shop display and contact settings.
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shop models.Shop
		if err := db.Where("owner_id = ?", middleware.SessionUserID(c)).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shop not found"})
			return
		}

		var req SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		shop.Name = req.Name
		shop.Description = req.Description
		shop.Logo = req.Logo
		shop.Banner = req.Banner
		if req.Theme != "" {
			shop.Theme = req.Theme
		}
		shop.PrimaryColor = req.PrimaryColor
		shop.SecondaryColor = req.SecondaryColor
		shop.Currency = req.Currency
		shop.ContactEmail = req.ContactEmail
		shop.ContactPhone = req.ContactPhone
		shop.Address = req.Address
		shop.SocialMedia = req.SocialMedia

		if err := db.Save(&shop).Error; err != nil {
			zap.L().Error("failed to update shop settings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update settings"})
			return
		}

		c.JSON(http.StatusOK, shop)
	}
}
