package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestComputeQualityScore(t *testing.T) {
	tests := []struct {
		name            string
		result          models.ExtractionResult
		expectedScore   float64
		expectedMissing []string
		expectedIssues  int
	}{
		{
			name: "complete result scores full",
			result: models.ExtractionResult{
				VendorName:  strPtr("Acme d.o.o."),
				Currency:    "EUR",
				TotalAmount: 100,
				Date:        strPtr("2024-01-01"),
			},
			expectedScore: 1.0,
		},
		{
			name: "missing vendor with short currency and bad date",
			result: models.ExtractionResult{
				VendorName:  nil,
				Currency:    "EU",
				TotalAmount: 100,
				Date:        strPtr("2024-13-40"),
			},
			// 20 (vendor) + 10 (currency length) + 5 (date format) = 35
			expectedScore:   0.65,
			expectedMissing: []string{CriticalVendorName},
			expectedIssues:  2,
		},
		{
			name: "missing total amount",
			result: models.ExtractionResult{
				VendorName: strPtr("Acme"),
				Currency:   "EUR",
				Date:       strPtr("2024-01-01"),
			},
			expectedScore:   0.75,
			expectedMissing: []string{CriticalTotalAmount},
		},
		{
			name: "negative total counts as missing",
			result: models.ExtractionResult{
				VendorName:  strPtr("Acme"),
				Currency:    "EUR",
				TotalAmount: -10,
				Date:        strPtr("2024-01-01"),
			},
			expectedScore:   0.75,
			expectedMissing: []string{CriticalTotalAmount},
		},
		{
			name: "missing currency",
			result: models.ExtractionResult{
				VendorName:  strPtr("Acme"),
				TotalAmount: 100,
				Date:        strPtr("2024-01-01"),
			},
			expectedScore:   0.8,
			expectedMissing: []string{CriticalCurrency},
		},
		{
			name: "missing date",
			result: models.ExtractionResult{
				VendorName:  strPtr("Acme"),
				Currency:    "EUR",
				TotalAmount: 100,
			},
			expectedScore:   0.85,
			expectedMissing: []string{CriticalDate},
		},
		{
			name: "tax rate out of range",
			result: models.ExtractionResult{
				VendorName:  strPtr("Acme"),
				Currency:    "EUR",
				TotalAmount: 100,
				Date:        strPtr("2024-01-01"),
				TaxRate:     f64Ptr(120),
			},
			expectedScore:  0.95,
			expectedIssues: 1,
		},
		{
			name:          "everything missing",
			result:        models.ExtractionResult{},
			expectedScore: 0.2, // 100 - 25 - 20 - 20 - 15 = 20
			expectedMissing: []string{
				CriticalTotalAmount, CriticalCurrency, CriticalVendorName, CriticalDate,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeQualityScore(&tt.result)
			assert.InDelta(t, tt.expectedScore, score.Score, 0.0001)
			assert.Equal(t, tt.expectedMissing, score.MissingCriticalFields)
			assert.Len(t, score.Issues, tt.expectedIssues)
		})
	}
}

func TestComputeQualityScore_Deterministic(t *testing.T) {
	result := models.ExtractionResult{
		VendorName:  nil,
		Currency:    "EU",
		TotalAmount: 100,
		Date:        strPtr("2024-13-40"),
	}

	first := ComputeQualityScore(&result)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeQualityScore(&result))
	}
}

func TestQualityScore_Sufficient(t *testing.T) {
	tests := []struct {
		name      string
		score     QualityScore
		threshold float64
		want      bool
	}{
		{"above threshold, nothing missing", QualityScore{Score: 0.8}, 0.7, true},
		{"exactly at threshold", QualityScore{Score: 0.7}, 0.7, true},
		{"below threshold", QualityScore{Score: 0.65}, 0.7, false},
		{
			"above threshold but critical field missing",
			QualityScore{Score: 0.8, MissingCriticalFields: []string{CriticalCurrency}},
			0.7,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.score.Sufficient(tt.threshold))
		})
	}
}
