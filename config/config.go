package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Image backend selectors.
const (
	ImageBackendLocal = "local"
	ImageBackendS3    = "s3"
)

// Config holds all application configuration
type Config struct {
	Port               string
	GoEnv              string
	MongoURI           string
	MongoDatabase      string
	ImageBackend       string
	ImageDir           string
	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	LogDir             string
	LogLevel           string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		Port:               getEnv("PORT", "8000"),
		GoEnv:              getEnv("GO_ENV", "development"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "Webstore"),
		ImageBackend:       getEnv("IMAGE_BACKEND", ImageBackendLocal),
		ImageDir:           getEnv("IMAGE_DIR", "./public/images"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		LogDir:             getEnv("LOG_DIR", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	switch c.ImageBackend {
	case ImageBackendLocal, ImageBackendS3:
	default:
		return fmt.Errorf("IMAGE_BACKEND must be %q or %q, got %q", ImageBackendLocal, ImageBackendS3, c.ImageBackend)
	}
	if c.ImageBackend == ImageBackendS3 && c.AWSS3Bucket == "" {
		return fmt.Errorf("AWS_S3_BUCKET is required when IMAGE_BACKEND is %q", ImageBackendS3)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
