// Command salesctl loads data into the sales store without going through the HTTP API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"salesanalytics/internal/analytics"
	"salesanalytics/internal/config"
	"salesanalytics/internal/database"
	"salesanalytics/internal/logger"
	"salesanalytics/internal/repository"
	"salesanalytics/internal/seed"
	"salesanalytics/internal/service"

	"github.com/spf13/cobra"
)

type app struct {
	sales service.SalesService
	imp   service.ImportService
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Component: "salesctl", Output: os.Stderr})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	categories, err := analytics.LoadCategoryMapFile(cfg.CategoryMapFile)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		return nil, err
	}

	salesRepo := repository.NewSalesRepository(db)
	importRepo := repository.NewImportRepository(db)
	txManager := repository.NewTransactionManager(db)

	return &app{
		sales: service.NewSalesService(salesRepo, categories, cfg.QueryTimeout, log),
		imp:   service.NewImportService(salesRepo, importRepo, txManager, nil, log),
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:           "salesctl",
		Short:         "Manage the sales analytics store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seedCmd(), importCmd(), summaryCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all stored sales records with the demo data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			n, err := a.imp.Seed(cmd.Context(), seed.Records())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records\n", n)
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CSV or XLSX sales file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			res, err := a.imp.ImportFile(cmd.Context(), path, filepath.Base(path))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows from %s (import %s)\n", res.RowCount, args[0], res.ImportID)
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	var raw analytics.RawQuery
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print totals and revenue by region for the matching records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			summary, err := a.sales.QuerySummary(cmd.Context(), raw)
			if err != nil {
				return err
			}
			regions, err := a.sales.QueryByRegion(cmd.Context(), raw)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{"summary": summary, "revenueByRegion": regions})
		},
	}
	cmd.Flags().StringVar(&raw.Product, "product", "", "exact product name")
	cmd.Flags().StringVar(&raw.Category, "category", "", "category, expanded to its products")
	cmd.Flags().StringVar(&raw.Region, "region", "", "exact region name")
	cmd.Flags().StringVar(&raw.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&raw.EndDate, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}
