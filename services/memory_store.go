package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smith-badejo/lesson-webstore-api/models"
)

// MemoryLessonStore is an in-memory LessonStore for testing. It mirrors the
// Mongo implementation's query semantics without a live connection.
type MemoryLessonStore struct {
	mu      sync.RWMutex
	lessons map[int]models.Lesson
	err     error // when set, every operation fails with this error
}

// NewMemoryLessonStore creates an empty in-memory lesson store.
func NewMemoryLessonStore() *MemoryLessonStore {
	return &MemoryLessonStore{lessons: make(map[int]models.Lesson)}
}

// Seed replaces the stored lessons (for test setup).
func (s *MemoryLessonStore) Seed(lessons ...models.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = make(map[int]models.Lesson, len(lessons))
	for _, lesson := range lessons {
		s.lessons[lesson.ID] = lesson
	}
}

// FailWith forces every subsequent operation to return err (nil to reset).
func (s *MemoryLessonStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// List returns all lessons sorted ascending by id.
func (s *MemoryLessonStore) List(ctx context.Context) ([]models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	lessons := make([]models.Lesson, 0, len(s.lessons))
	for _, lesson := range s.lessons {
		lessons = append(lessons, lesson)
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })
	return lessons, nil
}

// FindByIDs returns the lessons whose id is in ids.
func (s *MemoryLessonStore) FindByIDs(ctx context.Context, ids []int) ([]models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	lessons := make([]models.Lesson, 0, len(ids))
	for _, id := range ids {
		if lesson, ok := s.lessons[id]; ok {
			lessons = append(lessons, lesson)
		}
	}
	return lessons, nil
}

// UpdateSpaces sets one lesson's spaces and returns the updated copy.
func (s *MemoryLessonStore) UpdateSpaces(ctx context.Context, id, spaces int) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	lesson, ok := s.lessons[id]
	if !ok {
		return nil, ErrLessonNotFound
	}
	lesson.Spaces = spaces
	s.lessons[id] = lesson
	return &lesson, nil
}

// Search mirrors the Mongo disjunctive filter: case-insensitive substring
// match on subject or location, exact price match when the query parses as
// a float, exact spaces match when it parses as an int.
func (s *MemoryLessonStore) Search(ctx context.Context, query string) ([]models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}

	needle := strings.ToLower(query)
	price, priceOK := func() (float64, bool) {
		f, err := strconv.ParseFloat(query, 64)
		return f, err == nil
	}()
	spaces, spacesOK := func() (int, bool) {
		n, err := strconv.Atoi(query)
		return n, err == nil
	}()

	matches := make([]models.Lesson, 0)
	for _, lesson := range s.lessons {
		switch {
		case strings.Contains(strings.ToLower(lesson.Subject), needle),
			strings.Contains(strings.ToLower(lesson.Location), needle),
			priceOK && lesson.Price == price,
			spacesOK && lesson.Spaces == spaces:
			matches = append(matches, lesson)
		}
	}
	return matches, nil
}

// MemoryOrderStore is an in-memory OrderStore for testing.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	err    error
}

// NewMemoryOrderStore creates an empty in-memory order store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

// FailWith forces every subsequent insert to return err (nil to reset).
func (s *MemoryOrderStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Insert stores a copy of the order and assigns it a fresh ObjectID.
func (s *MemoryOrderStore) Insert(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	order.OID = primitive.NewObjectID()
	s.orders = append(s.orders, *order)
	return nil
}

// Orders returns a copy of all stored orders (for test assertions).
func (s *MemoryOrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}
