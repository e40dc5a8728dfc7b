package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrImageNotFound is returned when no stored image matches the given name.
var ErrImageNotFound = errors.New("image not found")

// ImageService resolves a URL for a stored catalog image. The image surface
// is read-only: there is no upload and no listing.
type ImageService interface {
	// ImageURL returns a URL the client can be redirected to for the named
	// image. Returns ErrImageNotFound when the image does not exist.
	ImageURL(ctx context.Context, name string) (string, error)
}

// S3ImageService implements ImageService using AWS S3 for storage. Images
// are served via short-lived presigned URLs.
type S3ImageService struct {
	s3Service S3Interface
}

// NewS3ImageService creates an image service with an S3 backend.
func NewS3ImageService(s3Service S3Interface) *S3ImageService {
	return &S3ImageService{s3Service: s3Service}
}

// ImageURL generates a presigned URL for accessing an image.
func (s *S3ImageService) ImageURL(ctx context.Context, name string) (string, error) {
	key := "images/" + name

	exists, err := s.s3Service.ObjectExists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check image %q: %w", name, err)
	}
	if !exists {
		return "", ErrImageNotFound
	}

	url, err := s.s3Service.GetPresignedURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}
	return url, nil
}
