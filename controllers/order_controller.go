package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/models"
	"github.com/smith-badejo/lesson-webstore-api/services"
)

// CreateOrderRequest represents the request body for creating an order.
// Item prices are taken as submitted and never re-read from the catalog;
// the computed total reflects what the client asserted.
type CreateOrderRequest struct {
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phoneNumber"`
	Items       []models.OrderItem `json:"items"`
}

// OrderController handles order creation.
type OrderController struct {
	lessons services.LessonStore
	orders  services.OrderStore
	logger  *zap.Logger
}

// NewOrderController creates a new order controller.
func NewOrderController(lessons services.LessonStore, orders services.OrderStore, logger *zap.Logger) *OrderController {
	return &OrderController{lessons: lessons, orders: orders, logger: logger}
}

// Create handles POST /orders - validates the order against current lesson
// capacity and persists it. Capacity is checked but not consumed here; the
// spaces-update route is the only writer of lesson capacity.
func (ctrl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "All fields are required.",
		})
		return
	}

	if req.Name == "" || req.PhoneNumber == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "All fields are required.",
		})
		return
	}

	// Duplicate lesson ids are rejected outright so the count-based
	// existence check below cannot mis-count.
	seen := make(map[int]bool, len(req.Items))
	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Quantity must be positive for lesson: %d", item.LessonID),
			})
			return
		}
		if seen[item.LessonID] {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Duplicate lesson id in order: %d", item.LessonID),
			})
			return
		}
		seen[item.LessonID] = true
		ids = append(ids, item.LessonID)
	}

	lessons, err := ctrl.lessons.FindByIDs(c.Request.Context(), ids)
	if err != nil {
		ctrl.logger.Error("failed to fetch lessons for order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while creating the order.",
		})
		return
	}

	if len(lessons) != len(ids) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Some lessons were not found.",
		})
		return
	}

	byID := make(map[int]models.Lesson, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson
	}

	for _, item := range req.Items {
		lesson := byID[item.LessonID]
		if lesson.Spaces < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Not enough spaces for lesson: %s", lessonLabel(lesson)),
			})
			return
		}
	}

	order := models.Order{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Items:       req.Items,
		CreatedAt:   time.Now().UTC(),
	}
	order.TotalPrice = order.ComputeTotal()

	if err := ctrl.orders.Insert(c.Request.Context(), &order); err != nil {
		ctrl.logger.Error("failed to insert order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while creating the order.",
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// lessonLabel names a lesson by subject when one is set, else by id.
func lessonLabel(lesson models.Lesson) string {
	if lesson.Subject != "" {
		return lesson.Subject
	}
	return strconv.Itoa(lesson.ID)
}
