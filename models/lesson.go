package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson represents a bookable lesson in the catalog. The integer ID field
// is the stable external identifier; the Mongo ObjectID is internal only.
type Lesson struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       int                `bson:"id" json:"id"`
	Subject  string             `bson:"subject" json:"subject"`
	Location string             `bson:"location" json:"location"`
	Price    float64            `bson:"price" json:"price"`
	Spaces   int                `bson:"spaces" json:"spaces"` // remaining capacity, never negative
}

// CollectionName specifies the collection name for the Lesson model
func (Lesson) CollectionName() string {
	return "lessons"
}
