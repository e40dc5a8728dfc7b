package services

import (
	"context"
	"errors"

	"github.com/smith-badejo/lesson-webstore-api/models"
)

// ErrLessonNotFound is returned when a lesson id matches no stored document.
var ErrLessonNotFound = errors.New("lesson not found")

// LessonStore defines the store operations the lesson, order and search
// handlers depend on. Handlers receive an implementation by injection so
// the HTTP layer can be tested against an in-memory store.
type LessonStore interface {
	// List returns all lessons sorted ascending by their external id.
	List(ctx context.Context) ([]models.Lesson, error)

	// FindByIDs returns the lessons whose external id is in ids. Unknown
	// ids are silently absent from the result.
	FindByIDs(ctx context.Context, ids []int) ([]models.Lesson, error)

	// UpdateSpaces sets the remaining capacity of one lesson and returns
	// the updated document. Returns ErrLessonNotFound when no lesson has
	// the given id; setting the current value again is a no-op success.
	UpdateSpaces(ctx context.Context, id, spaces int) (*models.Lesson, error)

	// Search returns lessons whose subject or location contains query
	// case-insensitively. When query parses as a number the result also
	// includes exact price matches (float) and exact spaces matches (int).
	// No ordering is guaranteed.
	Search(ctx context.Context, query string) ([]models.Lesson, error)
}
