package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line in an order. Price is the client-asserted
// per-unit price and is trusted as submitted when computing the total.
type OrderItem struct {
	LessonID int     `bson:"id" json:"id"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// Order represents a persisted purchase record. Orders are created exactly
// once and never updated or deleted.
type Order struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CollectionName specifies the collection name for the Order model
func (Order) CollectionName() string {
	return "orders"
}

// ComputeTotal sums price * quantity across the order's items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
