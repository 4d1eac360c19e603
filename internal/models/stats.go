package models

import (
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
)

// EnrichmentStats tracks per-batch statistics for transaction enrichment.
type EnrichmentStats struct {
	Total           int // Number of transactions processed
	Updated         int // Transactions with at least one accepted update
	MerchantUpdates int // Transactions where only the merchant was updated
	CategoryUpdates int // Transactions where only the category was updated
	NoUpdateNeeded  int // Transactions where nothing passed the gates
	Errors          int // Transactions with a per-item error
}

// Add accumulates another stats value into this one, for callers that
// process multiple chunks.
func (s *EnrichmentStats) Add(other EnrichmentStats) {
	s.Total += other.Total
	s.Updated += other.Updated
	s.MerchantUpdates += other.MerchantUpdates
	s.CategoryUpdates += other.CategoryUpdates
	s.NoUpdateNeeded += other.NoUpdateNeeded
	s.Errors += other.Errors
}

// RecordUpdate classifies an accepted update into the right counters.
func (s *EnrichmentStats) RecordUpdate(update TransactionUpdate) {
	s.Updated++
	if update.MerchantName != nil && update.CategorySlug == nil {
		s.MerchantUpdates++
	}
	if update.CategorySlug != nil && update.MerchantName == nil {
		s.CategoryUpdates++
	}
}

// LogSummary logs a summary of the enrichment statistics.
func (s EnrichmentStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Enrichment summary",
		logging.Field{Key: "total", Value: s.Total},
		logging.Field{Key: "updated", Value: s.Updated},
		logging.Field{Key: "merchant_only", Value: s.MerchantUpdates},
		logging.Field{Key: "category_only", Value: s.CategoryUpdates},
		logging.Field{Key: "no_update_needed", Value: s.NoUpdateNeeded},
		logging.Field{Key: "errors", Value: s.Errors},
		logging.Field{Key: "update_rate", Value: s.UpdateRate()},
	)
}

// UpdateRate returns the share of processed transactions that received an
// update, as a percentage.
func (s EnrichmentStats) UpdateRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Updated) / float64(s.Total) * 100.0
}
