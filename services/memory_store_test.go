package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smith-badejo/lesson-webstore-api/models"
)

// The in-memory store stands in for Mongo in every handler test, so its
// query semantics are pinned down here.

func seededStore() *MemoryLessonStore {
	store := NewMemoryLessonStore()
	store.Seed(
		models.Lesson{ID: 3, Subject: "Music", Location: "Bristol", Price: 5, Spaces: 2},
		models.Lesson{ID: 1, Subject: "Math", Location: "London", Price: 10, Spaces: 5},
		models.Lesson{ID: 2, Subject: "Science", Location: "Oxford", Price: 20, Spaces: 8},
	)
	return store
}

func TestMemoryLessonStoreListSorted(t *testing.T) {
	store := seededStore()

	lessons, err := store.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, lessons, 3)
	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, want, lessons[i].ID)
	}
}

func TestMemoryLessonStoreFindByIDs(t *testing.T) {
	store := seededStore()

	lessons, err := store.FindByIDs(context.Background(), []int{1, 999, 3})
	assert.NoError(t, err)
	assert.Len(t, lessons, 2, "Unknown ids are silently absent")
}

func TestMemoryLessonStoreUpdateSpaces(t *testing.T) {
	store := seededStore()

	lesson, err := store.UpdateSpaces(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, lesson.Spaces)

	_, err = store.UpdateSpaces(context.Background(), 999, 3)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestMemoryLessonStoreSearch(t *testing.T) {
	store := seededStore()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{"Case-insensitive subject substring", "math", []int{1}},
		{"Case-insensitive location substring", "OXFORD", []int{2}},
		{"Float query matches exact price", "20", []int{2}},
		{"Int query matches exact spaces", "5", []int{1, 3}}, // spaces==5 and price==5
		{"Regex metacharacters are literal", "C++", nil},
		{"No match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons, err := store.Search(context.Background(), tt.query)
			assert.NoError(t, err)

			ids := make([]int, 0, len(lessons))
			for _, lesson := range lessons {
				ids = append(ids, lesson.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestMemoryOrderStoreInsert(t *testing.T) {
	store := NewMemoryOrderStore()

	order := models.Order{
		Name:        "A",
		PhoneNumber: "123",
		Items:       []models.OrderItem{{LessonID: 1, Quantity: 2, Price: 10}},
		TotalPrice:  20,
	}
	err := store.Insert(context.Background(), &order)
	assert.NoError(t, err)
	assert.False(t, order.OID.IsZero(), "Insert should assign an ObjectID")

	stored := store.Orders()
	assert.Len(t, stored, 1)
	assert.Equal(t, float64(20), stored[0].TotalPrice)
}
