package extract

import (
	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// mergeResults combines the primary (pass 1) and secondary (fallback pass)
// extraction results. Secondary values are preferred only where the primary
// is missing or invalid; everything else from the primary is kept.
func mergeResults(primary, secondary *models.ExtractionResult) *models.ExtractionResult {
	merged := *primary

	// Critical fields: fill when missing or invalid in the primary.
	if isBlank(merged.VendorName) && !isBlank(secondary.VendorName) {
		merged.VendorName = secondary.VendorName
	}
	if merged.TotalAmount <= 0 && secondary.TotalAmount > 0 {
		merged.TotalAmount = secondary.TotalAmount
	}
	if merged.Currency == "" && secondary.Currency != "" {
		merged.Currency = secondary.Currency
	}
	if isBlank(merged.Date) && !isBlank(secondary.Date) {
		merged.Date = secondary.Date
	}

	// Gap fields: fill only when the primary has nothing.
	if merged.Website == nil {
		merged.Website = secondary.Website
	}
	if merged.InvoiceNumber == nil {
		merged.InvoiceNumber = secondary.InvoiceNumber
	}
	if merged.TaxAmount == nil {
		merged.TaxAmount = secondary.TaxAmount
	}
	if merged.TaxRate == nil {
		merged.TaxRate = secondary.TaxRate
	}
	if merged.IBAN == nil {
		merged.IBAN = secondary.IBAN
	}

	return &merged
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
