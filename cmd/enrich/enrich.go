// Package enrich contains the CLI command for transaction enrichment.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/darioristic/crm-monorepo-sub013/cmd/root"
	"github.com/darioristic/crm-monorepo-sub013/internal/batch"
	"github.com/darioristic/crm-monorepo-sub013/internal/container"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// transactionRow is the CSV shape of an enrichment input file.
type transactionRow struct {
	ID           string `csv:"id"`
	Description  string `csv:"description"`
	Notes        string `csv:"notes"`
	Reference    string `csv:"reference"`
	Amount       string `csv:"amount"`
	Currency     string `csv:"currency"`
	MerchantName string `csv:"merchant_name"`
	VendorName   string `csv:"vendor_name"`
	CategorySlug string `csv:"category_slug"`
}

// Cmd is the enrich command.
var Cmd = &cobra.Command{
	Use:   "enrich <transactions.csv>",
	Short: "Enrich transactions with normalized merchants and categories.",
	Long: `Enrich reads a CSV of transactions, runs them through the batched
enrichment pipeline, and prints the proposed updates as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", filePath, err)
		}
		defer func() { _ = file.Close() }()

		var rows []*transactionRow
		if err := gocsv.UnmarshalFile(file, &rows); err != nil {
			return fmt.Errorf("parsing %s: %w", filePath, err)
		}

		transactions := make([]models.EnrichmentTarget, 0, len(rows))
		for _, row := range rows {
			target, err := rowToTarget(row)
			if err != nil {
				return fmt.Errorf("row %s: %w", row.ID, err)
			}
			transactions = append(transactions, target)
		}

		c, err := container.NewContainer(cmd.Context(), root.Cfg)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		var totals models.EnrichmentStats
		results, err := batch.ProcessSequentially(cmd.Context(), transactions, root.Cfg.Enrichment.BatchSize,
			func(ctx context.Context, chunk []models.EnrichmentTarget) ([]models.ProcessedResult, error) {
				chunkResults, stats, err := c.Enricher().EnrichBatch(ctx, chunk)
				if err != nil {
					return nil, err
				}
				totals.Add(stats)
				return chunkResults, nil
			})
		if err != nil {
			return err
		}

		totals.LogSummary(c.Logger())

		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

// rowToTarget converts a CSV row into an enrichment target.
func rowToTarget(row *transactionRow) (models.EnrichmentTarget, error) {
	amount, err := models.NewMoneyFromString(row.Amount, row.Currency)
	if err != nil {
		return models.EnrichmentTarget{}, err
	}

	return models.EnrichmentTarget{
		ID:           row.ID,
		Description:  row.Description,
		Notes:        row.Notes,
		Reference:    row.Reference,
		Amount:       amount,
		MerchantName: optional(row.MerchantName),
		VendorName:   optional(row.VendorName),
		CategorySlug: optional(row.CategorySlug),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
