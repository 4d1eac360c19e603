// Package extract implements the multi-pass, quality-gated extraction
// orchestrator: invoke the primary model, score the result, fall back to a
// secondary model on low quality, and merge the two passes.
package extract

import (
	"fmt"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// Critical field names whose absence heavily penalizes the quality score and
// triggers the fallback pass.
const (
	CriticalTotalAmount = "total_amount"
	CriticalCurrency    = "currency"
	CriticalVendorName  = "vendor_name"
	CriticalDate        = "date"
)

// QualityScore grades one extraction attempt. It is computed fresh per
// attempt and never persisted.
type QualityScore struct {
	Score                 float64
	MissingCriticalFields []string
	Issues                []string
}

// Sufficient reports whether the attempt clears the quality gate: score at
// or above the threshold and no critical field missing.
func (q QualityScore) Sufficient(threshold float64) bool {
	return q.Score >= threshold && len(q.MissingCriticalFields) == 0
}

// Deduction table. Starting score is 100 with a floor of 0; the final score
// is normalized into [0,1].
const (
	deductTotalAmount    = 25
	deductCurrency       = 20
	deductVendorName     = 20
	deductDate           = 15
	deductCurrencyLength = 10
	deductDateFormat     = 5
	deductTaxRateRange   = 5
)

// ComputeQualityScore grades an extraction result against the deduction
// table. Pure function: identical input always yields the identical score.
func ComputeQualityScore(result *models.ExtractionResult) QualityScore {
	deductions := 0
	var missing []string
	var issues []string

	if result.TotalAmount <= 0 {
		deductions += deductTotalAmount
		missing = append(missing, CriticalTotalAmount)
	}

	if result.Currency == "" {
		deductions += deductCurrency
		missing = append(missing, CriticalCurrency)
	} else if len(result.Currency) != 3 {
		deductions += deductCurrencyLength
		issues = append(issues, fmt.Sprintf("currency code '%s' is not 3 characters", result.Currency))
	}

	if result.VendorName == nil || *result.VendorName == "" {
		deductions += deductVendorName
		missing = append(missing, CriticalVendorName)
	}

	if result.Date == nil || *result.Date == "" {
		deductions += deductDate
		missing = append(missing, CriticalDate)
	} else if !models.IsISODate(*result.Date) {
		deductions += deductDateFormat
		issues = append(issues, fmt.Sprintf("date '%s' does not match YYYY-MM-DD", *result.Date))
	}

	if result.TaxRate != nil && (*result.TaxRate < 0 || *result.TaxRate > 100) {
		deductions += deductTaxRateRange
		issues = append(issues, fmt.Sprintf("tax rate %.2f outside [0,100]", *result.TaxRate))
	}

	score := 100 - deductions
	if score < 0 {
		score = 0
	}

	return QualityScore{
		Score:                 float64(score) / 100.0,
		MissingCriticalFields: missing,
		Issues:                issues,
	}
}
