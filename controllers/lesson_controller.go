package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/services"
)

// UpdateSpacesRequest represents the request body for updating a lesson's
// remaining spaces. Spaces is a pointer so an absent value can be told
// apart from an explicit zero.
type UpdateSpacesRequest struct {
	Spaces *int `json:"spaces"`
}

// LessonController handles the lesson catalog routes.
type LessonController struct {
	lessons services.LessonStore
	logger  *zap.Logger
}

// NewLessonController creates a new lesson controller.
func NewLessonController(lessons services.LessonStore, logger *zap.Logger) *LessonController {
	return &LessonController{lessons: lessons, logger: logger}
}

// List handles GET /lessons - returns all lessons sorted by id.
func (ctrl *LessonController) List(c *gin.Context) {
	lessons, err := ctrl.lessons.List(c.Request.Context())
	if err != nil {
		ctrl.logger.Error("failed to list lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while fetching lessons.",
		})
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// UpdateSpaces handles PUT /lessons/:id - sets a lesson's remaining spaces.
func (ctrl *LessonController) UpdateSpaces(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Lesson id must be an integer.",
		})
		return
	}

	var req UpdateSpacesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Spaces == nil || *req.Spaces < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Valid spaces value is required.",
		})
		return
	}

	lesson, err := ctrl.lessons.UpdateSpaces(c.Request.Context(), id, *req.Spaces)
	if err != nil {
		if errors.Is(err, services.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Lesson not found.",
			})
			return
		}
		ctrl.logger.Error("failed to update lesson", zap.Int("lesson_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while updating the lesson.",
		})
		return
	}

	c.JSON(http.StatusOK, lesson)
}
