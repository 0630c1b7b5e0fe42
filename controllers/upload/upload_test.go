package uploadControllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hguir/sellio/config"
)

func newUploadRouter(cfg config.UploadConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", UploadFile(cfg))
	return r
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	r := newUploadRouter(config.UploadConfig{Dir: dir, MaxSize: 5 * 1024 * 1024})

	body, contentType := multipartBody(t, "logo.png", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["url"], "/uploads/"))
	assert.True(t, strings.HasSuffix(resp["url"], ".png"))

	// the file actually landed in the upload directory
	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(resp["url"], "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), saved)
}

func TestUploadFileTooLarge(t *testing.T) {
	r := newUploadRouter(config.UploadConfig{Dir: t.TempDir(), MaxSize: 10})

	body, contentType := multipartBody(t, "big.bin", bytes.Repeat([]byte("x"), 100))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")
}

func TestUploadFileMissing(t *testing.T) {
	r := newUploadRouter(config.UploadConfig{Dir: t.TempDir(), MaxSize: 1024})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
