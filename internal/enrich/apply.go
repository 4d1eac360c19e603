package enrich

import (
	"strings"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// prepareUpdateData reduces one model outcome into the update instructions a
// caller may apply, enforcing the confidence gates and the income and
// idempotence invariants.
func (e *Enricher) prepareUpdateData(t models.EnrichmentTarget, outcome models.EnrichmentOutcome) models.TransactionUpdate {
	update := models.TransactionUpdate{TransactionID: t.ID}

	// Merchant: accepted only above the confidence gate, and only when it
	// actually changes something.
	if outcome.MerchantName != nil && strings.TrimSpace(*outcome.MerchantName) != "" &&
		outcome.MerchantConfidence >= e.cfg.Enrichment.MerchantConfidenceThreshold {
		candidate := strings.TrimSpace(*outcome.MerchantName)
		if t.MerchantName == nil || !strings.EqualFold(*t.MerchantName, candidate) {
			update.MerchantName = &candidate
		}
	}

	// Category: expenses only (amount <= 0), and never for a transaction
	// that already carries one. A below-gate or out-of-taxonomy suggestion
	// still resolves to the "uncategorized" sentinel so the transaction is
	// not resubmitted on a later run.
	if !t.IsIncome() && !t.HasCategory() {
		slug := models.CategoryUncategorized
		if outcome.CategorySlug != nil &&
			outcome.CategoryConfidence >= e.cfg.Enrichment.CategoryConfidenceThreshold &&
			models.ValidCategorySlug(*outcome.CategorySlug) {
			slug = *outcome.CategorySlug
		}
		update.CategorySlug = &slug
	}

	return update
}
