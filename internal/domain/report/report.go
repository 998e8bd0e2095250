package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesReport is a read model summarizing purchases within a date range.
// Reports are computed on demand from the record store and never persisted.
type SalesReport struct {
	Customers      []CustomerSalesSummary `json:"customers"`
	TotalCustomers int64                  `json:"total_customers"` // all customers in the store, not just matched ones
	TotalPurchases int64                  `json:"total_purchases"`
	TotalRevenue   decimal.Decimal        `json:"total_revenue"`
	StartDate      time.Time              `json:"start_date"`
	EndDate        time.Time              `json:"end_date"`
}

// CustomerSalesSummary aggregates one customer's purchase associations
// within the report range
type CustomerSalesSummary struct {
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	ItemsPurchased int             `json:"items_purchased"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	PurchaseDates  []time.Time     `json:"purchase_dates"`
}

// ItemsReport is a read model over inventory items, optionally filtered
// by category
type ItemsReport struct {
	Items           []ItemReportEntry `json:"items"`
	TotalItems      int               `json:"total_items"`
	TotalValue      decimal.Decimal   `json:"total_value"`
	TotalCategories int               `json:"total_categories"` // distinct categories among matched items
}

// ItemReportEntry is one inventory item projected into the items report
type ItemReportEntry struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	TotalValue       decimal.Decimal `json:"total_value"` // always price * quantity
	PurchasedByCount int             `json:"purchased_by_count"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CustomerLedgerEntry aggregates one customer's purchase rows within a
// date range. TotalSpent sums item price alone, without quantity.
type CustomerLedgerEntry struct {
	CustomerID       uuid.UUID       `json:"customer_id"`
	CustomerName     string          `json:"customer_name"`
	Email            string          `json:"email"`
	TotalItemsBought int             `json:"total_items_bought"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	LastPurchaseDate time.Time       `json:"last_purchase_date"`
}

// Generator defines the reporting aggregation operations. All three are
// read-only and safe to run concurrently; a failed record-store query
// surfaces as a storage-unavailable domain error, while empty matches
// produce valid zero-value reports.
type Generator interface {
	// GenerateSalesReport aggregates purchases within [start, end] inclusive
	GenerateSalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error)

	// GenerateItemsReport aggregates inventory items, filtered by exact
	// category when one is given
	GenerateItemsReport(ctx context.Context, category *string) (*ItemsReport, error)

	// GenerateCustomerLedger groups purchases by customer within
	// [start, end] inclusive, dropping purchasers with no customer record
	GenerateCustomerLedger(ctx context.Context, start, end time.Time) ([]CustomerLedgerEntry, error)
}
