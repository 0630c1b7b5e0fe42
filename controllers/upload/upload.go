package uploadControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hguir/sellio/config"
)

// UploadFile stores a single uploaded file under the public upload directory
// and returns its URL. Files above the configured size limit are rejected.
func UploadFile(cfg config.UploadConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
			return
		}
		if file.Size > cfg.MaxSize {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File too large (max 5 MB)"})
			return
		}

		if err := os.MkdirAll(cfg.Dir, os.ModePerm); err != nil {
			zap.L().Error("failed to create upload folder", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}

		ext := filepath.Ext(file.Filename)
		filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
		savePath := filepath.Join(cfg.Dir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			zap.L().Error("failed to save uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename})
	}
}
