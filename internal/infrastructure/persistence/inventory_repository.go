package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/backend/internal/domain/inventory"
	"github.com/stockpilot/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInventoryRepository implements inventory.Repository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

var _ inventory.Repository = (*GormInventoryRepository)(nil)

// withEntries preloads purchase entries in recorded order
func (r *GormInventoryRepository) withEntries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("PurchasedBy", func(db *gorm.DB) *gorm.DB {
		return db.Order("purchase_entries.position ASC")
	})
}

// FindByID finds an item by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var item inventory.Item
	if err := r.withEntries(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns all items with their purchase entries
func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := r.withEntries(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCategory returns items whose category matches exactly
func (r *GormInventoryRepository) FindByCategory(ctx context.Context, category string) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := r.withEntries(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindInRange returns items purchased within [start, end] inclusive
func (r *GormInventoryRepository) FindInRange(ctx context.Context, start, end time.Time) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := r.withEntries(ctx).
		Where("purchased_at >= ? AND purchased_at <= ?", start, end).
		Order("purchased_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindPurchasedInRange returns items purchased within [start, end] inclusive
// that have at least one purchase entry
func (r *GormInventoryRepository) FindPurchasedInRange(ctx context.Context, start, end time.Time) ([]inventory.Item, error) {
	var items []inventory.Item
	if err := r.withEntries(ctx).
		Where("purchased_at >= ? AND purchased_at <= ?", start, end).
		Where("EXISTS (SELECT 1 FROM purchase_entries WHERE purchase_entries.item_id = inventory_items.id)").
		Order("purchased_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an item, replacing its purchase entries wholesale
func (r *GormInventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&inventory.PurchaseEntry{}).Error; err != nil {
			return err
		}
		return tx.Save(item).Error
	})
}

// Delete removes an item; its purchase entries go with it via the
// cascading foreign key
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
