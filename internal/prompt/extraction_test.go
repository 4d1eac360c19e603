package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_Deterministic(t *testing.T) {
	first := BuildExtractionPrompt("Acme GmbH")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildExtractionPrompt("Acme GmbH"))
	}
}

func TestBuildExtractionPrompt_CompanyName(t *testing.T) {
	withCompany := BuildExtractionPrompt("Acme GmbH")
	assert.Contains(t, withCompany, `The receiving company is "Acme GmbH"`)
	assert.Contains(t, withCompany, "CUSTOMER, never the vendor")

	withoutCompany := BuildExtractionPrompt("")
	assert.NotContains(t, withoutCompany, "receiving company")
}

func TestBuildExtractionPrompt_CoreInstructions(t *testing.T) {
	p := BuildExtractionPrompt("")

	assert.Contains(t, p, "VENDOR IDENTIFICATION RULES")
	assert.Contains(t, p, "NUMBER NORMALIZATION RULES")
	assert.Contains(t, p, "CURRENCY RULES")
	assert.Contains(t, p, "DATE RULES")
	assert.Contains(t, p, `"1.234,56" means 1234.56`)
	assert.Contains(t, p, "ISO 4217")
	assert.Contains(t, p, "YYYY-MM-DD")
	assert.Contains(t, p, `"total_amount": number (required, positive)`)
	assert.Contains(t, p, "Do not wrap the response in code fences")
}

func TestBuildFallbackExtractionPrompt(t *testing.T) {
	p := BuildFallbackExtractionPrompt("Acme GmbH")

	assert.Contains(t, p, "Think step by step")
	assert.Contains(t, p, "previous extraction attempt")
	assert.Contains(t, p, `The receiving company is "Acme GmbH"`, "fallback must carry the standard instructions too")
	assert.Contains(t, p, extractionOutputShape)

	standard := BuildExtractionPrompt("Acme GmbH")
	assert.True(t, strings.HasSuffix(p, standard), "fallback wraps the standard prompt")
	assert.Greater(t, len(p), len(standard))
}
