package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
)

func strPtr(s string) *string { return &s }

func mustMoney(t *testing.T, amount, currency string) Money {
	t.Helper()
	m, err := NewMoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func validResult() *ExtractionResult {
	return &ExtractionResult{
		VendorName:  strPtr("Telekom Srbija a.d."),
		Currency:    "RSD",
		TotalAmount: 3490.00,
		Date:        strPtr("2024-03-15"),
		Type:        DocumentTypeInvoice,
	}
}

func TestExtractionResultValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ExtractionResult)
		wantField string
	}{
		{
			name:   "valid result passes",
			mutate: func(*ExtractionResult) {},
		},
		{
			name:   "optional fields may all be absent",
			mutate: func(r *ExtractionResult) { r.VendorName = nil; r.Date = nil },
		},
		{
			name:      "missing currency",
			mutate:    func(r *ExtractionResult) { r.Currency = "" },
			wantField: "currency",
		},
		{
			name:      "zero total",
			mutate:    func(r *ExtractionResult) { r.TotalAmount = 0 },
			wantField: "total_amount",
		},
		{
			name:      "negative total",
			mutate:    func(r *ExtractionResult) { r.TotalAmount = -12.50 },
			wantField: "total_amount",
		},
		{
			name:      "unknown document type",
			mutate:    func(r *ExtractionResult) { r.Type = "contract" },
			wantField: "type",
		},
		{
			name:      "unknown tax type",
			mutate:    func(r *ExtractionResult) { tt := TaxType("tithe"); r.TaxType = &tt },
			wantField: "tax_type",
		},
		{
			name:   "known tax type passes",
			mutate: func(r *ExtractionResult) { tt := TaxTypeVAT; r.TaxType = &tt },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResult()
			tt.mutate(r)

			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var valErr *aierror.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-03-15"))
	assert.True(t, IsISODate("1999-01-01"))

	for _, bad := range []string{"15.03.2024", "2024/03/15", "2024-3-5", "March 15, 2024", "", "2024-03-15T00:00:00Z"} {
		assert.False(t, IsISODate(bad), "%q must not pass as ISO date", bad)
	}
}

func TestMoney(t *testing.T) {
	m := mustMoney(t, "-45.90", "EUR")

	assert.False(t, m.IsZero())
	assert.False(t, m.IsPositive())
	assert.Equal(t, "45.90 EUR", m.Abs().String())
	assert.True(t, m.Abs().Equal(mustMoney(t, "45.9", "EUR")))
	assert.False(t, m.Abs().Equal(mustMoney(t, "45.9", "USD")))

	assert.True(t, mustMoney(t, "0", "EUR").IsZero())
	assert.True(t, mustMoney(t, "0.01", "EUR").IsPositive())

	_, err := NewMoneyFromString("forty", "EUR")
	assert.Error(t, err)
}

func TestEnrichmentTargetHelpers(t *testing.T) {
	income := EnrichmentTarget{Amount: mustMoney(t, "1200", "EUR")}
	expense := EnrichmentTarget{Amount: mustMoney(t, "-10", "EUR")}
	zero := EnrichmentTarget{Amount: mustMoney(t, "0", "EUR")}

	assert.True(t, income.IsIncome())
	assert.False(t, expense.IsIncome())
	assert.False(t, zero.IsIncome(), "zero amounts carry expense semantics")

	assert.False(t, expense.HasCategory())
	expense.CategorySlug = strPtr(CategoryUncategorized)
	assert.True(t, expense.HasCategory(), "the sentinel counts as categorized")
}

func TestTransactionUpdateIsEmpty(t *testing.T) {
	assert.True(t, TransactionUpdate{TransactionID: "tx-1"}.IsEmpty())
	assert.False(t, TransactionUpdate{MerchantName: strPtr("Acme")}.IsEmpty())
	assert.False(t, TransactionUpdate{CategorySlug: strPtr(CategoryTravel)}.IsEmpty())
}

func TestValidCategorySlug(t *testing.T) {
	for _, c := range DefaultCategories() {
		assert.True(t, ValidCategorySlug(c.Slug))
	}
	assert.False(t, ValidCategorySlug("crypto_winnings"))
	assert.False(t, ValidCategorySlug(""))
	assert.False(t, ValidCategorySlug("Travel"), "slugs are case sensitive")
}

func TestDefaultCategoriesStableOrder(t *testing.T) {
	first := DefaultCategories()
	second := DefaultCategories()
	assert.Equal(t, first, second)

	assert.Equal(t, CategoryTravel, first[0].Slug)
	assert.Equal(t, CategoryUncategorized, first[len(first)-1].Slug)
}

func TestEnrichmentStats(t *testing.T) {
	var s EnrichmentStats
	s.Total = 4

	s.RecordUpdate(TransactionUpdate{MerchantName: strPtr("A")})
	s.RecordUpdate(TransactionUpdate{CategorySlug: strPtr(CategoryMeals)})
	s.RecordUpdate(TransactionUpdate{MerchantName: strPtr("B"), CategorySlug: strPtr(CategoryFees)})

	assert.Equal(t, 3, s.Updated)
	assert.Equal(t, 1, s.MerchantUpdates)
	assert.Equal(t, 1, s.CategoryUpdates)
	assert.Equal(t, 75.0, s.UpdateRate())

	var total EnrichmentStats
	total.Add(s)
	total.Add(EnrichmentStats{Total: 2, Errors: 1, NoUpdateNeeded: 1})

	assert.Equal(t, 6, total.Total)
	assert.Equal(t, 3, total.Updated)
	assert.Equal(t, 1, total.Errors)
	assert.Equal(t, 1, total.NoUpdateNeeded)

	assert.Equal(t, 0.0, EnrichmentStats{}.UpdateRate())
}
