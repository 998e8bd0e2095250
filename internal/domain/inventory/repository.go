package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for inventory persistence.
// Range queries are inclusive on both ends; a start after the end simply
// matches nothing.
type Repository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindAll returns all items with their purchase entries
	FindAll(ctx context.Context) ([]Item, error)

	// FindByCategory returns items whose category matches exactly
	FindByCategory(ctx context.Context, category string) ([]Item, error)

	// FindInRange returns items purchased within [start, end], including
	// items with no purchasers
	FindInRange(ctx context.Context, start, end time.Time) ([]Item, error)

	// FindPurchasedInRange returns items purchased within [start, end]
	// that have at least one purchase entry
	FindPurchasedInRange(ctx context.Context, start, end time.Time) ([]Item, error)

	// Save creates or updates an item and its purchase entries
	Save(ctx context.Context, item *Item) error

	// Delete removes an item and its purchase entries
	Delete(ctx context.Context, id uuid.UUID) error
}
