package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smith-badejo/lesson-webstore-api/config"
	"github.com/smith-badejo/lesson-webstore-api/controllers"
	"github.com/smith-badejo/lesson-webstore-api/middleware"
	"github.com/smith-badejo/lesson-webstore-api/services"
	"github.com/smith-badejo/lesson-webstore-api/utils"
)

const welcomeMessage = "Welcome to The store to see the lessons go to /lessons"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.InitLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("database connection established")

	lessons := services.NewMongoLessonStore(db)
	orders := services.NewMongoOrderStore(db)

	// Images come from the local directory unless an S3 bucket is
	// configured as the backend.
	var images services.ImageService
	if cfg.ImageBackend == config.ImageBackendS3 {
		s3Service, err := services.NewS3Service(cfg)
		if err != nil {
			logger.Fatal("failed to initialize S3 image backend", zap.Error(err))
		}
		images = services.NewS3ImageService(s3Service)
	}

	router := setupRouter(cfg, logger, lessons, orders, images)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// setupRouter wires middleware and routes onto a fresh engine. Stores and
// the image backend are injected so tests can drive the full router with
// in-memory implementations.
func setupRouter(cfg *config.Config, logger *zap.Logger, lessons services.LessonStore, orders services.OrderStore, images services.ImageService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Default()) // all origins

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcomeMessage)
	})

	if images != nil {
		imageController := controllers.NewImageController(images, logger)
		router.GET("/images/*filepath", imageController.Get)
	} else {
		router.Static("/images", cfg.ImageDir)
	}

	lessonController := controllers.NewLessonController(lessons, logger)
	router.GET("/lessons", lessonController.List)
	router.PUT("/lessons/:id", lessonController.UpdateSpaces)

	orderController := controllers.NewOrderController(lessons, orders, logger)
	router.POST("/orders", orderController.Create)

	searchController := controllers.NewSearchController(lessons, logger)
	router.GET("/search", searchController.Search)

	return router
}
