package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smith-badejo/lesson-webstore-api/models"
)

// MongoLessonStore implements LessonStore on top of the lessons collection.
type MongoLessonStore struct {
	coll *mongo.Collection
}

// NewMongoLessonStore creates a lesson store backed by the given database.
func NewMongoLessonStore(db *mongo.Database) *MongoLessonStore {
	return &MongoLessonStore{coll: db.Collection(models.Lesson{}.CollectionName())}
}

// List returns every lesson sorted ascending by external id.
func (s *MongoLessonStore) List(ctx context.Context) ([]models.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	lessons := make([]models.Lesson, 0)
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// FindByIDs fetches the lessons whose external id is in ids.
func (s *MongoLessonStore) FindByIDs(ctx context.Context, ids []int) ([]models.Lesson, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %w", err)
	}
	lessons := make([]models.Lesson, 0, len(ids))
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// UpdateSpaces sets one lesson's spaces and re-reads the updated document.
// Existence is judged on MatchedCount, so writing the current value again
// is a successful no-op rather than a not-found.
func (s *MongoLessonStore) UpdateSpaces(ctx context.Context, id, spaces int) (*models.Lesson, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"spaces": spaces}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update lesson %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrLessonNotFound
	}

	var lesson models.Lesson
	if err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lesson); err != nil {
		return nil, fmt.Errorf("failed to reload lesson %d: %w", id, err)
	}
	return &lesson, nil
}

// Search builds the disjunctive filter: case-insensitive substring match on
// subject or location, plus exact price/spaces clauses when the query
// parses as a number. The needle is quoted so regex metacharacters in user
// input match literally.
func (s *MongoLessonStore) Search(ctx context.Context, query string) ([]models.Lesson, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := bson.A{
		bson.M{"subject": pattern},
		bson.M{"location": pattern},
	}
	if price, err := strconv.ParseFloat(query, 64); err == nil {
		or = append(or, bson.M{"price": price})
	}
	if spaces, err := strconv.Atoi(query); err == nil {
		or = append(or, bson.M{"spaces": spaces})
	}

	cursor, err := s.coll.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, fmt.Errorf("failed to search lessons: %w", err)
	}
	lessons := make([]models.Lesson, 0)
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// MongoOrderStore implements OrderStore on top of the orders collection.
type MongoOrderStore struct {
	coll *mongo.Collection
}

// NewMongoOrderStore creates an order store backed by the given database.
func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{coll: db.Collection(models.Order{}.CollectionName())}
}

// Insert persists one order and records the generated ObjectID on it.
func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.OID = oid
	}
	return nil
}
