package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockpilot/backend/internal/domain/inventory"
	"github.com/stockpilot/backend/internal/domain/partner"
	"github.com/stockpilot/backend/internal/domain/report"
	"github.com/stockpilot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReportService computes the sales, items and ledger reports from the
// record store. Every generation is a single fetch followed by in-memory
// aggregation; the grouping maps live only for the duration of one call.
type ReportService struct {
	itemRepo     inventory.Repository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

var _ report.Generator = (*ReportService)(nil)

// NewReportService creates a new ReportService
func NewReportService(
	itemRepo inventory.Repository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// association is one (item, purchaser) pairing flattened out of an item's
// purchase entries
type association struct {
	value       decimal.Decimal
	purchasedAt time.Time
}

// GenerateSalesReport aggregates purchases within [start, end] inclusive.
// A start after the end matches nothing and yields an empty report rather
// than an error.
func (s *ReportService) GenerateSalesReport(ctx context.Context, start, end time.Time) (*report.SalesReport, error) {
	items, err := s.itemRepo.FindPurchasedInRange(ctx, start, end)
	if err != nil {
		return nil, shared.StorageUnavailable(err)
	}

	// One association per (item, purchaser) pair: an item with three
	// purchase entries contributes three associations. Each purchaser is
	// credited the item's full price*quantity, so co-purchasers of one
	// record are each credited the same amount.
	purchases := make(map[uuid.UUID][]association)
	for _, item := range items {
		value := item.TotalValue()
		for _, entry := range item.PurchasedBy {
			purchases[entry.CustomerID] = append(purchases[entry.CustomerID], association{
				value:       value,
				purchasedAt: item.PurchasedAt,
			})
		}
	}

	var customers []partner.Customer
	if len(purchases) > 0 {
		ids := make([]uuid.UUID, 0, len(purchases))
		for id := range purchases {
			ids = append(ids, id)
		}
		customers, err = s.customerRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, shared.StorageUnavailable(err)
		}
	}

	summaries := make([]report.CustomerSalesSummary, 0, len(customers))
	for _, customer := range customers {
		assocs := purchases[customer.ID]
		totalSpent := decimal.Zero
		dates := make([]time.Time, len(assocs))
		for i, a := range assocs {
			totalSpent = totalSpent.Add(a.value)
			dates[i] = a.purchasedAt
		}
		summaries = append(summaries, report.CustomerSalesSummary{
			CustomerID:     customer.ID,
			CustomerName:   customer.Name,
			ItemsPurchased: len(assocs),
			TotalSpent:     totalSpent,
			PurchaseDates:  dates,
		})
	}

	// The headline customer count is unscoped: it reflects the whole
	// store, not just customers matched by the range.
	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, shared.StorageUnavailable(err)
	}

	var totalPurchases int64
	totalRevenue := decimal.Zero
	for _, item := range items {
		totalPurchases += int64(item.Quantity)
		totalRevenue = totalRevenue.Add(item.TotalValue())
	}

	s.logger.Info("Sales report generated",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("matched_items", len(items)),
		zap.Int("customers", len(summaries)),
	)

	return &report.SalesReport{
		Customers:      summaries,
		TotalCustomers: totalCustomers,
		TotalPurchases: totalPurchases,
		TotalRevenue:   totalRevenue,
		StartDate:      start,
		EndDate:        end,
	}, nil
}

// GenerateItemsReport aggregates inventory items, filtered by exact
// category match when one is given. An unknown category yields an empty
// report, not an error.
func (s *ReportService) GenerateItemsReport(ctx context.Context, category *string) (*report.ItemsReport, error) {
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
		return nil, shared.StorageUnavailable(err)
	}

	entries := make([]report.ItemReportEntry, len(items))
	categories := make(map[string]struct{})
	totalValue := decimal.Zero
	for i, item := range items {
		value := item.TotalValue()
		entries[i] = report.ItemReportEntry{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
			// PurchasedByCount counts entries, not distinct customers
			PurchasedByCount: len(item.PurchasedBy),
			TotalValue:       value,
			CreatedAt:        item.CreatedAt,
		}
		totalValue = totalValue.Add(value)
		categories[item.Category] = struct{}{}
	}

	s.logger.Info("Items report generated",
		zap.Int("items", len(entries)),
		zap.Int("categories", len(categories)),
	)

	return &report.ItemsReport{
		Items:           entries,
		TotalItems:      len(entries),
		TotalValue:      totalValue,
		TotalCategories: len(categories),
	}, nil
}

// ledgerGroup accumulates one customer's flattened purchase rows
type ledgerGroup struct {
	count int
	spent decimal.Decimal
	last  time.Time
}

// GenerateCustomerLedger groups purchase rows by customer within
// [start, end] inclusive. Purchaser ids without a customer record are
// dropped, inner-join style.
func (s *ReportService) GenerateCustomerLedger(ctx context.Context, start, end time.Time) ([]report.CustomerLedgerEntry, error) {
	items, err := s.itemRepo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, shared.StorageUnavailable(err)
	}

	// Flatten to one row per (item, purchaser) pair, then group by
	// purchaser. Items with no purchasers contribute nothing.
	groups := make(map[uuid.UUID]*ledgerGroup)
	for _, item := range items {
		for _, entry := range item.PurchasedBy {
			g, ok := groups[entry.CustomerID]
			if !ok {
				g = &ledgerGroup{}
				groups[entry.CustomerID] = g
			}
			g.count++
			// Ledger rows are credited the item price alone; quantity is
			// not a factor here, unlike the sales and items reports.
			g.spent = g.spent.Add(item.Price)
			if item.PurchasedAt.After(g.last) {
				g.last = item.PurchasedAt
			}
		}
	}

	if len(groups) == 0 {
		return []report.CustomerLedgerEntry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	customers, err := s.customerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, shared.StorageUnavailable(err)
	}

	entries := make([]report.CustomerLedgerEntry, 0, len(customers))
	for _, customer := range customers {
		g := groups[customer.ID]
		entries = append(entries, report.CustomerLedgerEntry{
			CustomerID:       customer.ID,
			CustomerName:     customer.Name,
			Email:            customer.Email,
			TotalItemsBought: g.count,
			TotalSpent:       g.spent,
			LastPurchaseDate: g.last,
		})
	}

	s.logger.Info("Customer ledger generated",
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("customers", len(entries)),
	)

	return entries, nil
}
