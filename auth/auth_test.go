package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hguir/sellio/config"
	"github.com/hguir/sellio/models"
)

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{
		Name:     "Awa",
		Email:    "awa@example.com",
		Password: "secret1",
		Role:     "MERCHANT",
	}
	assert.Equal(t, "", req.validate())

	bad := req
	bad.Name = "A"
	assert.Equal(t, "Name must be at least 2 characters", bad.validate())

	bad = req
	bad.Email = "not-an-email"
	assert.Equal(t, "Invalid email", bad.validate())

	bad = req
	bad.Password = "short"
	assert.Equal(t, "Password must be at least 6 characters", bad.validate())

	bad = req
	bad.Role = "ADMIN"
	assert.Equal(t, "Role must be MERCHANT or CUSTOMER", bad.validate())
}

func TestIssueJWT(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", TTLHours: 24}
	user := &models.User{
		ID:    "user-1",
		Email: "awa@example.com",
		Role:  models.RoleCustomer,
	}

	tokenString, err := IssueJWT(cfg, user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "awa@example.com", claims["email"])
	assert.Equal(t, "CUSTOMER", claims["role"])
	assert.NotNil(t, claims["exp"])
}
