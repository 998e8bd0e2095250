package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindByIDs finds multiple customers by their IDs.
	// IDs with no matching record are silently omitted from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Customer, error)

	// FindAll returns all customers
	FindAll(ctx context.Context) ([]Customer, error)

	// Count returns the total number of customers in the store
	Count(ctx context.Context) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
