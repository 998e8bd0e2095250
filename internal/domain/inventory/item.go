package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockpilot/backend/internal/domain/shared"
)

// Item represents a stock-keeping entry. An item carries a list of purchase
// entries referencing the customers that bought it; the same customer may
// appear more than once when they bought the item on separate occasions. All
// entries on one item share the item's single PurchasedAt timestamp; the
// model cannot express per-purchaser timestamps or quantities.
type Item struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null" json:"item_name"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Description string          `gorm:"type:text" json:"description"`
	PurchasedBy []PurchaseEntry `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"purchased_by"`
	PurchasedAt time.Time       `gorm:"not null;index" json:"purchased_at"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// PurchaseEntry is one (item, purchaser) association. Position preserves the
// order entries were recorded in, so repeat purchases keep their sequence.
type PurchaseEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Position   int       `gorm:"not null;default:0" json:"-"`
}

// TableName returns the table name for GORM
func (PurchaseEntry) TableName() string {
	return "purchase_entries"
}

// NewItem creates a new inventory item
func NewItem(name, category string, price decimal.Decimal, quantity int, description string, purchasedAt time.Time) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	return &Item{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Category:    category,
		Price:       price,
		Quantity:    quantity,
		Description: description,
		PurchasedAt: purchasedAt,
	}, nil
}

// Update replaces the item's mutable fields
func (i *Item) Update(name, category string, price decimal.Decimal, quantity int, description string, purchasedAt time.Time) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	i.Name = name
	i.Category = category
	i.Price = price
	i.Quantity = quantity
	i.Description = description
	if !purchasedAt.IsZero() {
		i.PurchasedAt = purchasedAt
	}
	return nil
}

// AddPurchaser appends a purchase association for the given customer.
// Repeat purchases by the same customer add another entry.
func (i *Item) AddPurchaser(customerID uuid.UUID) {
	i.PurchasedBy = append(i.PurchasedBy, PurchaseEntry{
		ID:         uuid.New(),
		ItemID:     i.ID,
		CustomerID: customerID,
		Position:   len(i.PurchasedBy),
	})
}

// SetPurchasers replaces the purchase associations with the given customer ids
func (i *Item) SetPurchasers(customerIDs []uuid.UUID) {
	i.PurchasedBy = make([]PurchaseEntry, 0, len(customerIDs))
	for _, id := range customerIDs {
		i.AddPurchaser(id)
	}
}

// PurchaserIDs returns the purchaser customer ids in recorded order,
// duplicates included
func (i *Item) PurchaserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(i.PurchasedBy))
	for n, entry := range i.PurchasedBy {
		ids[n] = entry.CustomerID
	}
	return ids
}

// TotalValue returns price multiplied by the full record quantity
func (i *Item) TotalValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	return nil
}
