package models

// EnrichmentTarget is a transaction the enrichment pipeline reads and
// proposes updates for. It is owned by the caller's transaction store; the
// pipeline never mutates storage directly.
type EnrichmentTarget struct {
	ID           string
	Description  string
	Notes        string
	Reference    string
	Amount       Money
	MerchantName *string
	VendorName   *string
	CategorySlug *string
}

// HasCategory reports whether the transaction already carries a category.
// The "uncategorized" sentinel counts as categorized, which is what keeps a
// transaction from being resubmitted to the model on a later run.
func (t EnrichmentTarget) HasCategory() bool {
	return t.CategorySlug != nil && *t.CategorySlug != ""
}

// IsIncome reports whether the transaction carries income semantics
// (strictly positive signed amount). Income transactions never receive an
// automatic category.
func (t EnrichmentTarget) IsIncome() bool {
	return t.Amount.IsPositive()
}

// EnrichmentOutcome is the model's proposal for one transaction: a
// legal-entity merchant name candidate and a category candidate, each with
// its own confidence in [0,1]. Outcomes are positional, one-to-one and
// in-order with the input batch.
type EnrichmentOutcome struct {
	MerchantName       *string `json:"merchant_name"`
	CategorySlug       *string `json:"category_slug"`
	MerchantConfidence float64 `json:"merchant_confidence"`
	CategoryConfidence float64 `json:"category_confidence"`
}

// TransactionUpdate is the reduced instruction set a caller applies to its
// store: only fields that passed their confidence gates are non-nil.
type TransactionUpdate struct {
	TransactionID string
	MerchantName  *string
	CategorySlug  *string
}

// IsEmpty reports whether the update carries no accepted changes.
func (u TransactionUpdate) IsEmpty() bool {
	return u.MerchantName == nil && u.CategorySlug == nil
}

// ProcessedResult reports the per-transaction outcome of an enrichment run.
// Failures are recorded here instead of failing the batch.
type ProcessedResult struct {
	TransactionID string
	Updated       bool
	Update        TransactionUpdate
	Error         string
}
