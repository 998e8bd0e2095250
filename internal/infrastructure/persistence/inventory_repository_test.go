package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockpilot/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func itemColumns() []string {
	return []string{"id", "created_at", "updated_at", "name", "category", "price", "quantity", "description", "purchased_at"}
}

func entryColumns() []string {
	return []string{"id", "item_id", "customer_id", "position"}
}

func TestGormInventoryRepository_FindByID(t *testing.T) {
	t.Run("loads item with purchase entries in position order", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		itemID := uuid.New()
		firstCustomer := uuid.New()
		secondCustomer := uuid.New()
		now := time.Now()

		itemRows := sqlmock.NewRows(itemColumns()).
			AddRow(itemID, now, now, "Office Chair", "furniture", decimal.NewFromInt(120), 4, "", now)
		entryRows := sqlmock.NewRows(entryColumns()).
			AddRow(uuid.New(), itemID, firstCustomer, 0).
			AddRow(uuid.New(), itemID, secondCustomer, 1)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(itemID, 1).
			WillReturnRows(itemRows)
		mock.ExpectQuery(`SELECT \* FROM "purchase_entries" WHERE "purchase_entries"\."item_id" = \$1 ORDER BY purchase_entries\.position ASC`).
			WithArgs(itemID).
			WillReturnRows(entryRows)

		item, err := repo.FindByID(context.Background(), itemID)

		assert.NoError(t, err)
		require.NotNil(t, item)
		require.Len(t, item.PurchasedBy, 2)
		assert.Equal(t, firstCustomer, item.PurchasedBy[0].CustomerID)
		assert.Equal(t, secondCustomer, item.PurchasedBy[1].CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing item", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		itemID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(itemID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindByID(context.Background(), itemID)

		assert.Nil(t, item)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_FindByCategory(t *testing.T) {
	t.Run("matches category exactly", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		itemID := uuid.New()
		now := time.Now()
		itemRows := sqlmock.NewRows(itemColumns()).
			AddRow(itemID, now, now, "Desk Lamp", "lighting", decimal.NewFromInt(35), 10, "", now)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE category = \$1 ORDER BY created_at DESC`).
			WithArgs("lighting").
			WillReturnRows(itemRows)
		mock.ExpectQuery(`SELECT \* FROM "purchase_entries" WHERE "purchase_entries"\."item_id" = \$1 ORDER BY purchase_entries\.position ASC`).
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows(entryColumns()))

		items, err := repo.FindByCategory(context.Background(), "lighting")

		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Desk Lamp", items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_FindInRange(t *testing.T) {
	t.Run("uses inclusive bounds on both ends", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		itemID := uuid.New()
		itemRows := sqlmock.NewRows(itemColumns()).
			AddRow(itemID, start, start, "Notebook", "stationery", decimal.NewFromInt(3), 100, "", start)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE purchased_at >= \$1 AND purchased_at <= \$2 ORDER BY purchased_at ASC`).
			WithArgs(start, end).
			WillReturnRows(itemRows)
		mock.ExpectQuery(`SELECT \* FROM "purchase_entries"`).
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows(entryColumns()))

		items, err := repo.FindInRange(context.Background(), start, end)

		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_FindPurchasedInRange(t *testing.T) {
	t.Run("restricts to items with at least one purchase entry", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		itemID := uuid.New()
		customerID := uuid.New()
		itemRows := sqlmock.NewRows(itemColumns()).
			AddRow(itemID, start, start, "Monitor", "electronics", decimal.NewFromInt(250), 2, "", start)
		entryRows := sqlmock.NewRows(entryColumns()).
			AddRow(uuid.New(), itemID, customerID, 0)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE \(?purchased_at >= \$1 AND purchased_at <= \$2\)? AND EXISTS \(SELECT 1 FROM purchase_entries WHERE purchase_entries\.item_id = inventory_items\.id\) ORDER BY purchased_at ASC`).
			WithArgs(start, end).
			WillReturnRows(itemRows)
		mock.ExpectQuery(`SELECT \* FROM "purchase_entries"`).
			WithArgs(itemID).
			WillReturnRows(entryRows)

		items, err := repo.FindPurchasedInRange(context.Background(), start, end)

		assert.NoError(t, err)
		require.Len(t, items, 1)
		require.Len(t, items[0].PurchasedBy, 1)
		assert.Equal(t, customerID, items[0].PurchasedBy[0].CustomerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryRepository(db)

		itemID := uuid.New()
		mock.ExpectExec(`DELETE FROM "inventory_items" WHERE id = \$1`).
			WithArgs(itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), itemID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
