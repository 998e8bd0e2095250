package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/backend/internal/domain/inventory"
)

// ItemService handles inventory-related business operations
type ItemService struct {
	itemRepo inventory.Repository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo inventory.Repository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// Create creates a new inventory item. Purchaser ids are stored as given;
// ids with no matching customer record are simply dropped from reports.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	var purchasedAt time.Time
	if req.PurchasedAt != nil {
		purchasedAt = *req.PurchasedAt
	}

	item, err := inventory.NewItem(req.Name, req.Category, req.Price, req.Quantity, req.Description, purchasedAt)
	if err != nil {
		return nil, err
	}
	item.SetPurchasers(req.PurchasedBy)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an inventory item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves inventory items, filtered by exact category when one is given
func (s *ItemService) List(ctx context.Context, category *string) ([]ItemResponse, error) {
	var (
		items []inventory.Item
		err   error
	)
	if category != nil {
		items, err = s.itemRepo.FindByCategory(ctx, *category)
	} else {
		items, err = s.itemRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses, nil
}

// Update updates an existing inventory item. The purchaser list is replaced
// wholesale when the request carries one.
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var purchasedAt time.Time
	if req.PurchasedAt != nil {
		purchasedAt = *req.PurchasedAt
	}
	if err := item.Update(req.Name, req.Category, req.Price, req.Quantity, req.Description, purchasedAt); err != nil {
		return nil, err
	}
	if req.PurchasedBy != nil {
		item.SetPurchasers(req.PurchasedBy)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an inventory item and its purchase entries
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, itemID)
}
