package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/services"
)

// ImageController serves catalog images from a remote backend by
// redirecting to a resolved URL. The local-directory backend bypasses this
// controller entirely and uses the router's static file server.
type ImageController struct {
	images services.ImageService
	logger *zap.Logger
}

// NewImageController creates a new image controller.
func NewImageController(images services.ImageService, logger *zap.Logger) *ImageController {
	return &ImageController{images: images, logger: logger}
}

// Get handles GET /images/*filepath - redirects to the backend URL for the
// named image.
func (ctrl *ImageController) Get(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Image not found.",
		})
		return
	}

	url, err := ctrl.images.ImageURL(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Image not found.",
			})
			return
		}
		ctrl.logger.Error("failed to resolve image", zap.String("image", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while fetching the image.",
		})
		return
	}

	c.Redirect(http.StatusFound, url)
}
