package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

func TestMergeResults_CriticalFieldPreference(t *testing.T) {
	primary := &models.ExtractionResult{
		VendorName:  nil,
		TotalAmount: 500,
		Currency:    "EUR",
		Date:        strPtr("2024-01-01"),
	}
	secondary := &models.ExtractionResult{
		VendorName:  strPtr("Acme d.o.o."),
		TotalAmount: 0,
		Currency:    "EUR",
		Date:        strPtr("2024-01-02"),
	}

	merged := mergeResults(primary, secondary)

	// Vendor filled from secondary, total kept from primary since 500 > 0,
	// date kept from primary since it was present.
	require.NotNil(t, merged.VendorName)
	assert.Equal(t, "Acme d.o.o.", *merged.VendorName)
	assert.Equal(t, 500.0, merged.TotalAmount)
	assert.Equal(t, "EUR", merged.Currency)
	assert.Equal(t, "2024-01-01", *merged.Date)
}

func TestMergeResults_InvalidPrimaryTotal(t *testing.T) {
	primary := &models.ExtractionResult{TotalAmount: -3, Currency: ""}
	secondary := &models.ExtractionResult{TotalAmount: 250, Currency: "CHF"}

	merged := mergeResults(primary, secondary)

	assert.Equal(t, 250.0, merged.TotalAmount)
	assert.Equal(t, "CHF", merged.Currency)
}

func TestMergeResults_GapFields(t *testing.T) {
	primary := &models.ExtractionResult{
		VendorName:    strPtr("Acme"),
		TotalAmount:   100,
		Currency:      "EUR",
		Date:          strPtr("2024-01-01"),
		InvoiceNumber: strPtr("INV-1"),
		TaxRate:       f64Ptr(20),
	}
	secondary := &models.ExtractionResult{
		Website:       strPtr("https://acme.example"),
		InvoiceNumber: strPtr("INV-2"),
		TaxAmount:     f64Ptr(16.67),
		TaxRate:       f64Ptr(19),
		IBAN:          strPtr("DE89370400440532013000"),
	}

	merged := mergeResults(primary, secondary)

	// Gaps filled from secondary.
	require.NotNil(t, merged.Website)
	assert.Equal(t, "https://acme.example", *merged.Website)
	require.NotNil(t, merged.TaxAmount)
	assert.Equal(t, 16.67, *merged.TaxAmount)
	require.NotNil(t, merged.IBAN)
	assert.Equal(t, "DE89370400440532013000", *merged.IBAN)

	// Present primary values win.
	assert.Equal(t, "INV-1", *merged.InvoiceNumber)
	assert.Equal(t, 20.0, *merged.TaxRate)
}

func TestMergeResults_DoesNotMutatePrimary(t *testing.T) {
	primary := &models.ExtractionResult{TotalAmount: 100, Currency: "EUR"}
	secondary := &models.ExtractionResult{VendorName: strPtr("Acme"), TotalAmount: 200}

	merged := mergeResults(primary, secondary)

	assert.Nil(t, primary.VendorName)
	assert.NotSame(t, primary, merged)
}
