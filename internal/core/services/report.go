// internal/core/services/report.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
)

// InventoryRow is one product line in the inventory report.
type InventoryRow struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Category       string          `json:"category"`
	BelowReorder   bool            `json:"below_reorder"`
}

// SalesSummary aggregates paid invoices inside a date range.
type SalesSummary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalUnitsSold int             `json:"total_units_sold"`
	InvoiceCount   int             `json:"invoice_count"`
}

// ProductPerformance aggregates paid sales for one product.
type ProductPerformance struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	UnitsSold      int             `json:"units_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
	QuantityOnHand int             `json:"quantity_on_hand"`
	BelowReorder   bool            `json:"below_reorder"`
}

// CustomerStats aggregates paid invoices for one customer.
type CustomerStats struct {
	CustomerID        string          `json:"customer_id"`
	Name              string          `json:"name"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	InvoiceCount      int             `json:"invoice_count"`
	ItemsBought       int             `json:"items_bought"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// ReportService computes aggregate reports over the snapshot. Every report is
// a pure read; nothing here mutates state. Structured rows come first and the
// Render methods layer the report text on top, so aggregation stays testable
// independent of formatting.
type ReportService struct {
	snapshot *domain.Snapshot
	gate     ports.AccessGate
	logger   *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(snapshot *domain.Snapshot, gate ports.AccessGate, logger *slog.Logger) *ReportService {
	return &ReportService{
		snapshot: snapshot,
		gate:     gate,
		logger:   logger.With(slog.String("service", "report")),
	}
}

// InventoryReport lists every product with its stock position, ordered by
// product id for stable export output.
func (s *ReportService) InventoryReport(ctx context.Context, role string) ([]InventoryRow, error) {
	if !s.gate.HasPermission(role, domain.ActionViewReports) {
		return nil, &domain.PermissionDeniedError{Role: role, Action: domain.ActionViewReports}
	}

	rows := make([]InventoryRow, 0, len(s.snapshot.Products))
	for _, p := range s.snapshot.Products {
		rows = append(rows, InventoryRow{
			ProductID:      p.ID,
			Name:           p.Name,
			QuantityOnHand: p.QuantityOnHand,
			UnitPrice:      p.UnitPrice,
			Category:       string(p.Category),
			BelowReorder:   p.BelowReorder(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })

	s.logger.InfoContext(ctx, "generated inventory report", slog.Int("products", len(rows)))

	return rows, nil
}

// SalesReport aggregates revenue, units and invoice count over paid invoices
// whose payment date falls inside [start, end] inclusive. The range is
// validated before any invoice is touched.
func (s *ReportService) SalesReport(ctx context.Context, role string, start, end time.Time) (*SalesSummary, error) {
	if !s.gate.HasPermission(role, domain.ActionViewReports) {
		return nil, &domain.PermissionDeniedError{Role: role, Action: domain.ActionViewReports}
	}
	if start.After(end) {
		return nil, &domain.InvalidRangeError{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		}
	}

	summary := &SalesSummary{TotalRevenue: decimal.Zero}
	for _, inv := range s.snapshot.Invoices {
		if !inv.PaidWithin(start, end) {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(inv.Total)
		summary.TotalUnitsSold += inv.UnitsSold()
		summary.InvoiceCount++
	}

	s.logger.InfoContext(ctx, "generated sales report",
		slog.Time("start", start),
		slog.Time("end", end),
		slog.Int("invoices", summary.InvoiceCount))

	return summary, nil
}

// ProductPerformanceReport sums units sold and revenue per product across all
// paid invoices, merged with current stock and the reorder warning. Products
// with no paid sales do not appear.
func (s *ReportService) ProductPerformanceReport(ctx context.Context, role string) (map[string]ProductPerformance, error) {
	if !s.gate.HasPermission(role, domain.ActionViewReports) {
		return nil, &domain.PermissionDeniedError{Role: role, Action: domain.ActionViewReports}
	}

	perf := make(map[string]ProductPerformance)
	for _, inv := range s.snapshot.Invoices {
		if inv.Status != domain.StatusPaid {
			continue
		}
		for _, item := range inv.Items {
			entry := perf[item.ProductID]
			entry.ProductID = item.ProductID
			entry.UnitsSold += item.Quantity
			entry.Revenue = entry.Revenue.Add(item.Total)
			perf[item.ProductID] = entry
		}
	}

	for id, entry := range perf {
		if p, ok := s.snapshot.Products[id]; ok {
			entry.Name = p.Name
			entry.QuantityOnHand = p.QuantityOnHand
			entry.BelowReorder = p.BelowReorder()
			perf[id] = entry
		}
	}

	s.logger.InfoContext(ctx, "generated product performance report", slog.Int("products", len(perf)))

	return perf, nil
}

// CustomerAnalysisReport aggregates spend, invoice count and items bought per
// customer over paid invoices. An entry exists only when the customer has at
// least one paid invoice, so the average never divides by zero.
func (s *ReportService) CustomerAnalysisReport(ctx context.Context, role string) (map[string]CustomerStats, error) {
	if !s.gate.HasPermission(role, domain.ActionViewReports) {
		return nil, &domain.PermissionDeniedError{Role: role, Action: domain.ActionViewReports}
	}

	stats := make(map[string]CustomerStats)
	for _, inv := range s.snapshot.Invoices {
		if inv.Status != domain.StatusPaid {
			continue
		}
		entry := stats[inv.CustomerID]
		entry.CustomerID = inv.CustomerID
		entry.TotalSpent = entry.TotalSpent.Add(inv.Total)
		entry.InvoiceCount++
		entry.ItemsBought += inv.UnitsSold()
		stats[inv.CustomerID] = entry
	}

	for id, entry := range stats {
		entry.AverageOrderValue = entry.TotalSpent.
			Div(decimal.NewFromInt(int64(entry.InvoiceCount))).Round(2)
		if c, ok := s.snapshot.Customers[id]; ok {
			entry.Name = c.Name
		}
		stats[id] = entry
	}

	s.logger.InfoContext(ctx, "generated customer analysis report", slog.Int("customers", len(stats)))

	return stats, nil
}

// Tabular conversions. Field names and ordering are part of the export
// contract and must stay stable.

// InventoryHeaders returns the column headers of the inventory table.
func InventoryHeaders() []string {
	return []string{"product_id", "name", "quantity_on_hand", "unit_price", "category", "below_reorder"}
}

// InventoryTable converts inventory rows to export cells.
func InventoryTable(rows []InventoryRow) [][]string {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.ProductID,
			r.Name,
			strconv.Itoa(r.QuantityOnHand),
			r.UnitPrice.StringFixed(2),
			r.Category,
			strconv.FormatBool(r.BelowReorder),
		})
	}
	return table
}

// PerformanceHeaders returns the column headers of the performance table.
func PerformanceHeaders() []string {
	return []string{"product_id", "name", "units_sold", "revenue", "quantity_on_hand", "below_reorder"}
}

// PerformanceTable converts the performance mapping to export cells, ordered
// by product id.
func PerformanceTable(perf map[string]ProductPerformance) [][]string {
	ids := sortedKeys(perf)
	table := make([][]string, 0, len(ids))
	for _, id := range ids {
		p := perf[id]
		table = append(table, []string{
			p.ProductID,
			p.Name,
			strconv.Itoa(p.UnitsSold),
			p.Revenue.StringFixed(2),
			strconv.Itoa(p.QuantityOnHand),
			strconv.FormatBool(p.BelowReorder),
		})
	}
	return table
}

// Text rendering, layered on top of the structured rows.

// RenderInventoryReport formats the inventory rows as report text.
func RenderInventoryReport(rows []InventoryRow) string {
	var b strings.Builder
	b.WriteString("Inventory Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "\nProduct: %s\n", r.Name)
		fmt.Fprintf(&b, "Quantity: %d\n", r.QuantityOnHand)
		fmt.Fprintf(&b, "Price: $%s\n", r.UnitPrice.StringFixed(2))
		fmt.Fprintf(&b, "Category: %s\n", r.Category)
		if r.BelowReorder {
			b.WriteString("WARNING: Stock below reorder level\n")
		}
	}
	return b.String()
}

// RenderSalesReport formats the sales summary as report text.
func RenderSalesReport(summary *SalesSummary, start, end time.Time) string {
	var b strings.Builder
	b.WriteString("Sales Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	fmt.Fprintf(&b, "Period: %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total Revenue: $%s\n", summary.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Total Units Sold: %d\n", summary.TotalUnitsSold)
	fmt.Fprintf(&b, "Number of Invoices: %d\n", summary.InvoiceCount)
	return b.String()
}

// RenderProductPerformanceReport formats the performance mapping as report
// text, ordered by product id.
func RenderProductPerformanceReport(perf map[string]ProductPerformance) string {
	var b strings.Builder
	b.WriteString("Product Performance Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	for _, id := range sortedKeys(perf) {
		p := perf[id]
		fmt.Fprintf(&b, "\nProduct: %s\n", p.Name)
		fmt.Fprintf(&b, "Total Units Sold: %d\n", p.UnitsSold)
		fmt.Fprintf(&b, "Total Revenue: $%s\n", p.Revenue.StringFixed(2))
		fmt.Fprintf(&b, "Current Stock: %d\n", p.QuantityOnHand)
		if p.BelowReorder {
			b.WriteString("WARNING: Stock below reorder level\n")
		}
	}
	return b.String()
}

// RenderCustomerAnalysisReport formats the customer stats as report text,
// ordered by customer id.
func RenderCustomerAnalysisReport(stats map[string]CustomerStats) string {
	var b strings.Builder
	b.WriteString("Customer Analysis Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	for _, id := range sortedKeys(stats) {
		c := stats[id]
		fmt.Fprintf(&b, "\nCustomer: %s\n", c.Name)
		fmt.Fprintf(&b, "Total Spent: $%s\n", c.TotalSpent.StringFixed(2))
		fmt.Fprintf(&b, "Number of Invoices: %d\n", c.InvoiceCount)
		fmt.Fprintf(&b, "Total Items Bought: %d\n", c.ItemsBought)
		fmt.Fprintf(&b, "Average Order Value: $%s\n", c.AverageOrderValue.StringFixed(2))
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
