package report

import (
	"strconv"
	"strings"

	"github.com/stockpilot/backend/internal/domain/report"
)

const dateLayout = "2006-01-02"

// Table is a flattened tabular projection of a report, consumed by the
// PDF renderer. It is a presentation shape only; the report value objects
// in the domain package remain the contract.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// SalesReportTable projects a sales report into renderable rows
func SalesReportTable(r *report.SalesReport) Table {
	rows := make([][]string, 0, len(r.Customers))
	for _, c := range r.Customers {
		dates := make([]string, len(c.PurchaseDates))
		for i, d := range c.PurchaseDates {
			dates[i] = d.Format(dateLayout)
		}
		rows = append(rows, []string{
			c.CustomerID.String(),
			c.CustomerName,
			strconv.Itoa(c.ItemsPurchased),
			c.TotalSpent.StringFixed(2),
			strings.Join(dates, ", "),
		})
	}
	return Table{
		Title:   "Sales Report " + r.StartDate.Format(dateLayout) + " to " + r.EndDate.Format(dateLayout),
		Headers: []string{"Customer ID", "Name", "Items Purchased", "Total Spent", "Purchase Dates"},
		Rows:    rows,
	}
}

// ItemsReportTable projects an items report into renderable rows
func ItemsReportTable(r *report.ItemsReport) Table {
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, []string{
			item.ID.String(),
			item.Name,
			item.Category,
			item.Price.StringFixed(2),
			strconv.Itoa(item.Quantity),
			item.TotalValue.StringFixed(2),
			strconv.Itoa(item.PurchasedByCount),
			item.CreatedAt.Format(dateLayout),
		})
	}
	return Table{
		Title:   "Items Report",
		Headers: []string{"Item ID", "Name", "Category", "Price", "Quantity", "Total Value", "Purchased By", "Created"},
		Rows:    rows,
	}
}

// CustomerLedgerTable projects ledger entries into renderable rows
func CustomerLedgerTable(entries []report.CustomerLedgerEntry) Table {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		last := ""
		if !e.LastPurchaseDate.IsZero() {
			last = e.LastPurchaseDate.Format(dateLayout)
		}
		rows = append(rows, []string{
			e.CustomerID.String(),
			e.CustomerName,
			e.Email,
			strconv.Itoa(e.TotalItemsBought),
			e.TotalSpent.StringFixed(2),
			last,
		})
	}
	return Table{
		Title:   "Customer Ledger",
		Headers: []string{"Customer ID", "Name", "Email", "Items Bought", "Total Spent", "Last Purchase"},
		Rows:    rows,
	}
}
