package shopControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hguir/sellio/models"
)

func validSettings() SettingsRequest {
	return SettingsRequest{
		Name:           "Awa's Shop",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#1E40AF",
		Currency:       "XOF",
	}
}

func TestSettingsRequestValidate(t *testing.T) {
	req := validSettings()
	assert.Equal(t, "", req.validate())

	bad := validSettings()
	bad.Name = "  "
	assert.Equal(t, "Shop name is required", bad.validate())

	bad = validSettings()
	bad.PrimaryColor = "#12345"
	assert.Equal(t, "Primary color must be a valid hex color", bad.validate())

	bad = validSettings()
	bad.SecondaryColor = "blue"
	assert.Equal(t, "Secondary color must be a valid hex color", bad.validate())

	bad = validSettings()
	bad.Currency = ""
	assert.Equal(t, "Currency is required", bad.validate())

	bad = validSettings()
	bad.Theme = "dark"
	assert.Equal(t, "Theme must be sellio or custom", bad.validate())
}

func TestSettingsRequestValidateURLs(t *testing.T) {
	req := validSettings()
	req.Logo = "/uploads/logo.png"
	req.Banner = "https://cdn.example.com/banner.png"
	req.SocialMedia = models.SocialMedia{Facebook: "https://facebook.com/awa"}
	assert.Equal(t, "", req.validate())

	bad := validSettings()
	bad.Logo = "not a url"
	assert.Equal(t, "Logo must be a valid URL", bad.validate())

	bad = validSettings()
	bad.SocialMedia = models.SocialMedia{Twitter: "twitter.com/awa"}
	assert.Equal(t, "Twitter must be a valid URL", bad.validate())
}

func TestValidURL(t *testing.T) {
	assert.True(t, validURL("https://example.com/x"))
	assert.True(t, validURL("/uploads/x.png"))
	assert.False(t, validURL("example.com/x"))
	assert.False(t, validURL("ftp://example.com/x"))
}
