package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hguir/sellio/config"
	"github.com/hguir/sellio/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// validate returns the first failing field's message, or "" when valid.
func (r *RegisterRequest) validate() string {
	if len(r.Name) < 2 {
		return "Name must be at least 2 characters"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return "Invalid email"
	}
	if len(r.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	if _, err := models.ParseRole(r.Role); err != nil {
		return "Role must be MERCHANT or CUSTOMER"
	}
	return ""
}

// POST /api/auth/register
// Merchants get a shop named "<name>'s Shop" created alongside the account.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		role, _ := models.ParseRole(req.Role)

		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already in use"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("register: email lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			zap.L().Error("register: password hashing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
			Role:     role,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if role == models.RoleMerchant {
				shop := models.Shop{
					Name:    user.Name + "'s Shop",
					OwnerID: user.ID,
				}
				if err := tx.Create(&shop).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			zap.L().Error("register: user creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := IssueJWT(jwtCfg, &user)
		if err != nil {
			zap.L().Error("login: token generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// IssueJWT generates a session token carrying the user's id, email and role.
func IssueJWT(jwtCfg config.JWTConfig, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Duration(jwtCfg.TTLHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtCfg.Secret))
}
