// cmd/shopkeeper/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dlamere/shopkeeper/internal/adapters/export"
	"github.com/dlamere/shopkeeper/internal/adapters/file"
	"github.com/dlamere/shopkeeper/internal/core/domain"
	"github.com/dlamere/shopkeeper/internal/core/ports"
	"github.com/dlamere/shopkeeper/internal/core/services"
	"github.com/dlamere/shopkeeper/internal/pkg/config"
	"github.com/dlamere/shopkeeper/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "text")

	slogger.Info("starting shopkeeper",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	if err := run(cfg, slogger); err != nil {
		slogger.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, slogger *slog.Logger) error {
	ctx := context.Background()

	store := file.NewSnapshotStore(cfg.Data.File, slogger)

	// A corrupt snapshot aborts before any operation runs.
	snapshot, err := store.Load(ctx)
	if err != nil {
		return err
	}

	gate := services.NewRoleGate()
	invoices := services.NewInvoiceService(snapshot, gate, nil, slogger)
	catalog := services.NewCatalogService(snapshot, gate, slogger)
	reports := services.NewReportService(snapshot, gate, slogger)

	var tables ports.TableExporter
	switch cfg.Export.Format {
	case "xlsx":
		tables = export.NewExcelSink(cfg.Export.Dir, slogger)
	default:
		tables = export.NewCSVSink(cfg.Export.Dir, slogger)
	}
	documents := export.NewDocumentSink(cfg.Export.Dir, slogger)

	app := &app{
		snapshot:  snapshot,
		store:     store,
		invoices:  invoices,
		catalog:   catalog,
		reports:   reports,
		tables:    tables,
		documents: documents,
		in:        bufio.NewReader(os.Stdin),
		logger:    slogger,
	}

	app.loop(ctx)

	if cfg.Data.SaveOnExit {
		if err := store.Save(ctx, snapshot); err != nil {
			return err
		}
	}
	return nil
}

// app wires the menu loop to the services. Pure presentation: every decision
// with business meaning lives below it.
type app struct {
	snapshot  *domain.Snapshot
	store     *file.SnapshotStore
	invoices  *services.InvoiceService
	catalog   *services.CatalogService
	reports   *services.ReportService
	tables    ports.TableExporter
	documents ports.DocumentExporter
	in        *bufio.Reader
	user      *domain.User
	logger    *slog.Logger
}

func (a *app) loop(ctx context.Context) {
	for {
		if a.user == nil {
			if !a.login() {
				return
			}
		}

		fmt.Println("\nInventory and Invoice Management System")
		fmt.Println("1. Product Management")
		fmt.Println("2. Customer Management")
		fmt.Println("3. Invoice Management")
		fmt.Println("4. Reports")
		fmt.Println("5. Export Data")
		fmt.Println("6. Save")
		fmt.Println("7. Logout")
		fmt.Println("8. Exit")

		switch a.prompt("Enter your choice (1-8): ") {
		case "1":
			a.productMenu(ctx)
		case "2":
			a.customerMenu(ctx)
		case "3":
			a.invoiceMenu(ctx)
		case "4":
			a.reportMenu(ctx)
		case "5":
			a.exportMenu(ctx)
		case "6":
			if err := a.store.Save(ctx, a.snapshot); err != nil {
				fmt.Println("Save failed:", err)
			} else {
				fmt.Println("Saved.")
			}
		case "7":
			a.user = nil
		case "8":
			return
		}
	}
}

func (a *app) login() bool {
	fmt.Println("\nLogin Required (empty username exits)")
	username := a.prompt("Username: ")
	if username == "" {
		return false
	}
	password := a.prompt("Password: ")

	user := a.snapshot.Authenticate(username, password)
	if user == nil {
		fmt.Println("Invalid credentials!")
		return a.login()
	}
	a.user = user
	a.logger.Info("user logged in",
		slog.String("username", user.Username),
		slog.String("role", user.Role))
	return true
}

func (a *app) productMenu(ctx context.Context) {
	fmt.Println("\nProduct Management")
	fmt.Println("1. Add Product")
	fmt.Println("2. Restock Product")
	fmt.Println("3. Attach Discount Rule")

	switch a.prompt("Enter your choice (1-3): ") {
	case "1":
		p := domain.Product{
			ID:       a.prompt("Product ID: "),
			Name:     a.prompt("Name: "),
			Category: domain.ProductCategory(a.prompt("Category: ")),
		}
		p.UnitPrice = a.promptDecimal("Unit Price: ")
		p.QuantityOnHand = a.promptInt("Quantity: ")
		a.report(a.catalog.AddProduct(ctx, a.user.Role, p))
	case "2":
		id := a.prompt("Product ID: ")
		qty := a.promptInt("Quantity to add: ")
		a.report(a.catalog.Restock(ctx, a.user.Role, id, qty))
	case "3":
		id := a.prompt("Product ID: ")
		a.attachRule(ctx, id)
	}
}

func (a *app) attachRule(ctx context.Context, productID string) {
	fmt.Println("1. Percentage Discount")
	fmt.Println("2. Bulk Discount")

	var (
		rule domain.DiscountRule
		err  error
	)
	switch a.prompt("Rule type (1-2): ") {
	case "1":
		rule, err = domain.NewPercentageDiscount(a.promptDecimal("Percentage: "))
	case "2":
		threshold := a.promptInt("Threshold quantity: ")
		rule, err = domain.NewBulkDiscount(threshold, a.promptDecimal("Percentage: "))
	default:
		return
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.report(a.catalog.AttachDiscountRule(ctx, a.user.Role, productID, rule))
}

func (a *app) customerMenu(ctx context.Context) {
	fmt.Println("\nCustomer Management")
	fmt.Println("1. Add Customer")

	if a.prompt("Enter your choice (1): ") != "1" {
		return
	}
	c := domain.Customer{
		ID:    a.prompt("Customer ID: "),
		Name:  a.prompt("Name: "),
		Email: a.prompt("Email: "),
		Phone: a.prompt("Phone: "),
	}
	a.report(a.catalog.AddCustomer(ctx, a.user.Role, c))
}

func (a *app) invoiceMenu(ctx context.Context) {
	fmt.Println("\nInvoice Management")
	fmt.Println("1. Create Invoice")
	fmt.Println("2. Add Item")
	fmt.Println("3. Mark Paid")
	fmt.Println("4. Cancel")

	switch a.prompt("Enter your choice (1-4): ") {
	case "1":
		customerID := a.prompt("Customer ID: ")
		inv, err := a.invoices.CreateDraft(ctx, a.user.Role, customerID)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Println("Created invoice", inv.ID)
	case "2":
		invoiceID := a.prompt("Invoice ID: ")
		productID := a.prompt("Product ID: ")
		qty := a.promptInt("Quantity: ")
		a.report(a.invoices.AddItem(ctx, a.user.Role, invoiceID, productID, qty))
	case "3":
		a.report(a.invoices.MarkPaid(ctx, a.user.Role, a.prompt("Invoice ID: ")))
	case "4":
		a.report(a.invoices.Cancel(ctx, a.user.Role, a.prompt("Invoice ID: ")))
	}
}

func (a *app) reportMenu(ctx context.Context) {
	fmt.Println("\nReports")
	fmt.Println("1. Inventory Report")
	fmt.Println("2. Sales Report")
	fmt.Println("3. Product Performance Report")
	fmt.Println("4. Customer Analysis Report")

	switch a.prompt("Enter your choice (1-4): ") {
	case "1":
		rows, err := a.reports.InventoryReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Print(services.RenderInventoryReport(rows))
	case "2":
		start, end, err := a.promptDateRange()
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		summary, err := a.reports.SalesReport(ctx, a.user.Role, start, end)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Print(services.RenderSalesReport(summary, start, end))
	case "3":
		perf, err := a.reports.ProductPerformanceReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Print(services.RenderProductPerformanceReport(perf))
	case "4":
		stats, err := a.reports.CustomerAnalysisReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Print(services.RenderCustomerAnalysisReport(stats))
	}
}

func (a *app) exportMenu(ctx context.Context) {
	fmt.Println("\nExport Data")
	fmt.Println("1. Export Inventory Report (table)")
	fmt.Println("2. Export Product Performance Report (table)")
	fmt.Println("3. Export Inventory Report (document)")

	switch a.prompt("Enter your choice (1-3): ") {
	case "1":
		rows, err := a.reports.InventoryReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a.report(a.tables.ExportTable(ctx, "inventory_report",
			services.InventoryHeaders(), services.InventoryTable(rows)))
	case "2":
		perf, err := a.reports.ProductPerformanceReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a.report(a.tables.ExportTable(ctx, "product_performance",
			services.PerformanceHeaders(), services.PerformanceTable(perf)))
	case "3":
		rows, err := a.reports.InventoryReport(ctx, a.user.Role)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		a.report(a.documents.ExportDocument(ctx, "Inventory Report",
			services.RenderInventoryReport(rows)))
	}
}

// Input helpers

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptInt(label string) int {
	n, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		return 0
	}
	return n
}

func (a *app) promptDecimal(label string) decimal.Decimal {
	d, err := decimal.NewFromString(a.prompt(label))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a *app) promptDateRange() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", a.prompt("Start Date (YYYY-MM-DD): "))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", a.prompt("End Date (YYYY-MM-DD): "))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	// Inclusive range: extend the end to the last instant of the day.
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

func (a *app) report(err error) {
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("OK")
}
