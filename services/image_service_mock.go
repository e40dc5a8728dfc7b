package services

import (
	"context"
	"sync"
)

// MockImageService is a mock implementation of ImageService for testing.
type MockImageService struct {
	urls map[string]string // map of image name to resolved URL
	mu   sync.RWMutex
	err  error
}

// NewMockImageService creates a new mock image service.
func NewMockImageService() *MockImageService {
	return &MockImageService{urls: make(map[string]string)}
}

// Add registers an image name with the URL the mock should resolve it to.
func (m *MockImageService) Add(name, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls[name] = url
}

// FailWith forces every subsequent lookup to return err (nil to reset).
func (m *MockImageService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// ImageURL resolves a registered image name to its URL.
func (m *MockImageService) ImageURL(ctx context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return "", m.err
	}
	url, ok := m.urls[name]
	if !ok {
		return "", ErrImageNotFound
	}
	return url, nil
}
