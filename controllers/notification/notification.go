package notificationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.Notification
		if err := db.
			Where("user_id = ?", middleware.SessionUserID(c)).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Model(&models.Notification{}).
			Where("id = ? AND user_id = ?", c.Param("id"), middleware.SessionUserID(c)).
			Update("read", true)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update notification"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}
