package enrich

import (
	"context"

	"github.com/darioristic/crm-monorepo-sub013/internal/aiclient"
	"github.com/darioristic/crm-monorepo-sub013/internal/config"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
	"github.com/darioristic/crm-monorepo-sub013/internal/prompt"
	"github.com/darioristic/crm-monorepo-sub013/internal/retry"
)

// missingResultError marks transactions beyond the count of outcomes the
// model returned.
const missingResultError = "Missing from AI results"

// Enricher runs batched merchant normalization and category inference.
// Batches arriving here are already capped by the caller's chunking; the
// enricher itself never re-chunks.
type Enricher struct {
	client   aiclient.Client
	cfg      *config.Config
	taxonomy []models.Category
	logger   logging.Logger
}

// NewEnricher creates an Enricher. A nil client means no model credential is
// configured; enrichment then degrades to a silent no-op.
func NewEnricher(client aiclient.Client, cfg *config.Config, taxonomy []models.Category, logger logging.Logger) *Enricher {
	return &Enricher{
		client:   client,
		cfg:      cfg,
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// EnrichBatch processes one batch of transactions through a single model
// call and returns per-transaction results in input order, one per input.
// Per-item problems are reported in the results, never as an error; only a
// total batch-call failure propagates.
func (e *Enricher) EnrichBatch(ctx context.Context, transactions []models.EnrichmentTarget) ([]models.ProcessedResult, models.EnrichmentStats, error) {
	var stats models.EnrichmentStats

	// Enrichment is a best-effort enhancement: no credential means no work,
	// not an error.
	if e.client == nil {
		return nil, stats, nil
	}
	if len(transactions) == 0 {
		return nil, stats, nil
	}

	items := make([]prompt.EnrichmentItem, len(transactions))
	for i, t := range transactions {
		items[i] = prepareItem(t, e.cfg.Enrichment.DefaultCurrency)
	}

	promptText := prompt.BuildEnrichmentPrompt(items, e.taxonomy)

	outcomes, err := retry.Do(e.logger, "enrichment", e.cfg.AI.MaxRetries, e.cfg.RetryBaseDelay(), func() ([]models.EnrichmentOutcome, error) {
		raw, err := e.client.Invoke(ctx, e.cfg.AI.Model, promptText, nil)
		if err != nil {
			return nil, err
		}
		return aiclient.DecodeEnrichmentOutcomes(raw)
	})
	if err != nil {
		e.logger.WithError(err).Error("Enrichment batch call failed",
			logging.Field{Key: logging.FieldBatchSize, Value: len(transactions)},
		)
		return nil, stats, err
	}

	if len(outcomes) > len(transactions) {
		e.logger.Warn("Model returned more results than transactions, dropping extras",
			logging.Field{Key: logging.FieldBatchSize, Value: len(transactions)},
			logging.Field{Key: logging.FieldCount, Value: len(outcomes)},
		)
		outcomes = outcomes[:len(transactions)]
	}

	results := make([]models.ProcessedResult, len(transactions))
	for i, t := range transactions {
		stats.Total++

		if i >= len(outcomes) {
			results[i] = models.ProcessedResult{
				TransactionID: t.ID,
				Updated:       false,
				Error:         missingResultError,
			}
			stats.Errors++
			continue
		}

		update := e.prepareUpdateData(t, outcomes[i])
		results[i] = models.ProcessedResult{
			TransactionID: t.ID,
			Updated:       !update.IsEmpty(),
			Update:        update,
		}

		if update.IsEmpty() {
			stats.NoUpdateNeeded++
			continue
		}
		stats.RecordUpdate(update)

		e.logger.Debug("Prepared transaction update",
			logging.Field{Key: logging.FieldTransactionID, Value: t.ID},
			logging.Field{Key: logging.FieldMerchant, Value: deref(update.MerchantName)},
			logging.Field{Key: logging.FieldCategory, Value: deref(update.CategorySlug)},
		)
	}

	return results, stats, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
