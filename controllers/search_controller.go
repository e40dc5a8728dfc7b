package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/services"
)

// SearchController handles keyword/numeric lesson search.
type SearchController struct {
	lessons services.LessonStore
	logger  *zap.Logger
}

// NewSearchController creates a new search controller.
func NewSearchController(lessons services.LessonStore, logger *zap.Logger) *SearchController {
	return &SearchController{lessons: lessons, logger: logger}
}

// Search handles GET /search?query= - matches the query against subject and
// location as a case-insensitive substring, and against price/spaces
// exactly when it parses as a number. No result ordering is guaranteed.
func (ctrl *SearchController) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Search query is required.",
		})
		return
	}

	results, err := ctrl.lessons.Search(c.Request.Context(), query)
	if err != nil {
		ctrl.logger.Error("failed to search lessons", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred during search.",
		})
		return
	}

	c.JSON(http.StatusOK, results)
}
