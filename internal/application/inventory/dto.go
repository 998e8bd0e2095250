package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockpilot/backend/internal/domain/inventory"
)

// CreateItemRequest represents a request to create an inventory item
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Description string          `json:"description"`
	PurchasedBy []uuid.UUID     `json:"purchased_by"`
	PurchasedAt *time.Time      `json:"purchased_at"`
}

// UpdateItemRequest represents a request to update an inventory item
type UpdateItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Description string          `json:"description"`
	PurchasedBy []uuid.UUID     `json:"purchased_by"`
	PurchasedAt *time.Time      `json:"purchased_at"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
	PurchasedBy []uuid.UUID     `json:"purchased_by"`
	PurchasedAt time.Time       `json:"purchased_at"`
	TotalValue  decimal.Decimal `json:"total_value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Quantity:    item.Quantity,
		Description: item.Description,
		PurchasedBy: item.PurchaserIDs(),
		PurchasedAt: item.PurchasedAt,
		TotalValue:  item.TotalValue(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
