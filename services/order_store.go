package services

import (
	"context"

	"github.com/smith-badejo/lesson-webstore-api/models"
)

// OrderStore persists purchase orders. Insert is the only operation:
// orders are immutable once stored.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
}
