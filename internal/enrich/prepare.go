// Package enrich implements the batched transaction-enrichment orchestrator:
// prepare a model-facing view of each transaction, make one batched model
// call, zip the positional outcomes back, and gate every proposed update on
// its confidence score.
package enrich

import (
	"strings"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
	"github.com/darioristic/crm-monorepo-sub013/internal/prompt"
)

const (
	// unknownTransaction is the composite-description fallback when every
	// text field on a transaction is empty.
	unknownTransaction = "Unknown transaction"

	descriptionSeparator = " - "
)

// prepareItem builds the model-facing view of one transaction: a composite
// description from the distinct text fields in priority order, the absolute
// amount, and a defaulted currency.
func prepareItem(t models.EnrichmentTarget, defaultCurrency string) prompt.EnrichmentItem {
	var parts []string

	appendDistinct := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		for _, existing := range parts {
			if strings.EqualFold(existing, value) {
				return
			}
		}
		parts = append(parts, value)
	}

	if t.VendorName != nil {
		appendDistinct(*t.VendorName)
	}
	appendDistinct(t.Description)
	appendDistinct(t.Notes)
	appendDistinct(t.Reference)

	description := strings.Join(parts, descriptionSeparator)
	if description == "" {
		description = unknownTransaction
	}

	currency := t.Amount.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return prompt.EnrichmentItem{
		Description:   description,
		Amount:        t.Amount.Abs().Amount.String(),
		Currency:      currency,
		NeedsCategory: !t.HasCategory(),
	}
}
