package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/config"
	"github.com/smith-badejo/lesson-webstore-api/services"
)

func testRouter(t *testing.T, images services.ImageService) (*gin.Engine, *services.MemoryLessonStore, *services.MemoryOrderStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:         "8000",
		GoEnv:        "test",
		ImageBackend: config.ImageBackendLocal,
		ImageDir:     t.TempDir(),
	}
	lessons := services.NewMemoryLessonStore()
	orders := services.NewMemoryOrderStore()
	return setupRouter(cfg, zap.NewNop(), lessons, orders, images), lessons, orders
}

func TestWelcomeRoute(t *testing.T) {
	router, _, _ := testRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to The store to see the lessons go to /lessons", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	router, _, _ := testRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/lessons", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticImagesLocalBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	content := []byte("png bytes")
	err := os.WriteFile(filepath.Join(dir, "math.png"), content, 0644)
	assert.NoError(t, err)

	cfg := &config.Config{GoEnv: "test", ImageBackend: config.ImageBackendLocal, ImageDir: dir}
	router := setupRouter(cfg, zap.NewNop(), services.NewMemoryLessonStore(), services.NewMemoryOrderStore(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/images/math.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/images/missing.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImagesS3Backend(t *testing.T) {
	mock := services.NewMockImageService()
	mock.Add("math.png", "https://bucket.s3.amazonaws.com/images/math.png")
	router, _, _ := testRouter(t, mock)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/images/math.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/images/math.png", w.Header().Get("Location"))
}

func TestUnknownRoute(t *testing.T) {
	router, _, _ := testRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
