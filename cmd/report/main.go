// Package main runs one sales/profit report pass over an in-memory data set
// and logs the resulting matrices.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"boukir/internal/config"
	appctx "boukir/internal/core/context"
	"boukir/internal/core/types"
	"boukir/internal/domain/catalogs/nomenclature"
	"boukir/internal/domain/catalogs/unit"
	"boukir/internal/domain/documents"
	"boukir/internal/domain/reports"
	"boukir/internal/infrastructure/memory"
	"boukir/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext())
	ctx = logger.WithLogger(ctx, log)

	source := seed()
	if cfg.DataFile != "" {
		if source, err = memory.LoadFile(cfg.DataFile); err != nil {
			log.Fatalw("failed to load data file", "path", cfg.DataFile, "error", err)
		}
		log.Infow("data file loaded", "path", cfg.DataFile)
	}

	svc := reports.NewService(source, reports.NewEngine(log, cfg.DateLayouts...), log)

	filter := reports.DefaultFilter()
	filter.TopN = cfg.TopN
	report, err := svc.Build(ctx, filter)
	if err != nil {
		log.Fatalw("failed to build report", "error", err)
	}

	ctx = appctx.WithPassID(ctx, report.PassID)
	l := logger.FromContext(ctx)
	for _, diag := range report.Diagnostics {
		l.Infow("group", "group", diag.Group, "enabled", diag.Enabled, "total", diag.Total, "filtered", diag.Filtered)
	}
	for _, row := range report.SelectedProducts() {
		l.Infow("product",
			"id", row.ProductID,
			"name", report.ProductName(row.ProductID),
			"quantity", row.Stats.Quantity,
			"amount", row.Stats.Amount,
			"net_amount", row.Stats.NetAmount,
			"profit", row.Stats.Profit,
		)
		for cid, pair := range row.Stats.Counterparties {
			rows, _ := report.PairLedger(row.ProductID, cid)
			final := rows[len(rows)-1]
			l.Debugw("pair", "product", row.ProductID, "counterparty", cid,
				"lines", pair.Count, "balance", final.Balance, "net_balance", final.NetBalance, "profit", final.CumulativeProfit)
		}
	}
	for _, row := range report.SelectedCounterparties() {
		l.Infow("counterparty",
			"id", row.CounterpartyID,
			"guest", row.Stats.Guest,
			"products", len(row.Stats.Products),
			"amount", row.Stats.Amount,
			"net_amount", row.Stats.NetAmount,
			"profit", row.Stats.Profit,
		)
	}
	for _, n := range report.Notes {
		logger.Warn(ctx, "data quality", "code", n.Code, "document_id", n.DocumentID, "kind", n.Kind, "detail", n.Detail)
	}
	l.Infow("report done", "groups", report.Options.Label())
}

// seed returns a small demo data set covering every channel.
func seed() *memory.Source {
	s := memory.NewSource()
	s.AddUnits(unit.NewUnit("U-box", "Box", decimal.NewFromInt(12)))
	s.AddProducts(
		nomenclature.Product{
			ID: "P1", Name: "Cement 25kg", CostBasis: decimal.NewFromInt(40),
			Variants: []nomenclature.Variant{{ID: "V-grey", Name: "Grey", PurchasePrice: decimal.NewFromInt(38)}},
		},
		nomenclature.Product{ID: "P2", Name: "Tile adhesive", PurchasePrice: decimal.RequireFromString("2.5")},
	)

	item := func(pid, qty, price string) documents.LineItem {
		return documents.LineItem{ProductID: pid, Quantity: types.Number(qty), UnitPrice: types.Number(price)}
	}
	s.AddDocuments(documents.KindSale,
		documents.Document{ID: "1", Number: "BS-1", Date: "2025-01-10", Status: "Validé", ClientID: "C-atlas",
			Lines: []documents.LineItem{item("P1", "10", "55"), {ProductID: "P2", UnitID: "U-box", Quantity: "2", UnitPrice: "45"}}},
	)
	s.AddDocuments(documents.KindSaleCash,
		documents.Document{ID: "2", Number: "BC-2", Date: "11-01-25", Status: "Payé", CustomerName: "Youssef",
			Lines: []documents.LineItem{{ProductID: "P1", VariantID: "V-grey", Quantity: "3", UnitPrice: "52"}}},
	)
	s.AddDocuments(documents.KindSaleOnline,
		documents.Document{ID: "3", Date: "2025-01-12", Status: "delivered", CustomerEmail: "Client@Example.com",
			Lines: []documents.LineItem{item("P2", "6", "4,5")}},
	)
	s.AddDocuments(documents.KindPurchaseOrder,
		documents.Document{ID: "4", Number: "CF-4", Date: "2025-01-05", Status: "Validé", SupplierID: "F-lafarge",
			Lines: []documents.LineItem{item("P1", "100", "40")}},
	)
	s.AddDocuments(documents.KindCreditClient,
		documents.Document{ID: "5", Number: "AV-5", Date: "2025-01-15", Status: "Validé", ClientID: "C-atlas",
			Lines: []documents.LineItem{item("P1", "1", "55")}},
	)
	return s
}
