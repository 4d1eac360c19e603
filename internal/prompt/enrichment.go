package prompt

import (
	"fmt"
	"strings"

	"github.com/darioristic/crm-monorepo-sub013/internal/models"
)

// EnrichmentItem is the prepared, model-facing view of one transaction in an
// enrichment batch.
type EnrichmentItem struct {
	Description   string
	Amount        string
	Currency      string
	NeedsCategory bool
}

// legalEntityMappings holds verbatim normalizations for well-known vendors.
// The model is instructed to use these exact spellings.
var legalEntityMappings = [][2]string{
	{"amazon", "Amazon.com, Inc."},
	{"google", "Google LLC"},
	{"apple", "Apple Inc."},
	{"microsoft", "Microsoft Corporation"},
	{"meta / facebook", "Meta Platforms, Inc."},
	{"netflix", "Netflix, Inc."},
	{"spotify", "Spotify AB"},
	{"uber", "Uber Technologies, Inc."},
	{"airbnb", "Airbnb, Inc."},
	{"paypal", "PayPal Holdings, Inc."},
	{"stripe", "Stripe, Inc."},
	{"shopify", "Shopify Inc."},
	{"adobe", "Adobe Inc."},
	{"salesforce", "Salesforce, Inc."},
	{"slack", "Slack Technologies, LLC"},
	{"zoom", "Zoom Video Communications, Inc."},
	{"dropbox", "Dropbox, Inc."},
	{"github", "GitHub, Inc."},
	{"atlassian", "Atlassian Corporation"},
	{"digitalocean", "DigitalOcean, LLC"},
	{"hetzner", "Hetzner Online GmbH"},
	{"vodafone", "Vodafone Group Plc"},
	{"deutsche telekom / t-mobile", "Deutsche Telekom AG"},
	{"ikea", "Inter IKEA Systems B.V."},
	{"lidl", "Lidl Stiftung & Co. KG"},
	{"booking.com", "Booking.com B.V."},
}

// BuildEnrichmentPrompt builds the batched instruction string for merchant
// normalization and category inference. Categorization instructions are only
// included when at least one item in the batch still needs a category, which
// keeps prompts short for pre-categorized batches.
func BuildEnrichmentPrompt(items []EnrichmentItem, taxonomy []models.Category) string {
	needsCategories := false
	for _, it := range items {
		if it.NeedsCategory {
			needsCategories = true
			break
		}
	}

	var b strings.Builder

	b.WriteString("You are a financial data enrichment engine for business transactions.\n")
	b.WriteString("For each transaction below, identify the merchant's formal LEGAL ENTITY name")
	if needsCategories {
		b.WriteString(" and, where requested, infer a spending category")
	}
	b.WriteString(".\n\n")

	b.WriteString("MERCHANT NAME RULES:\n")
	b.WriteString("- Return the registered legal entity name including its jurisdiction suffix (Inc., LLC, Ltd., GmbH, AG, d.o.o., a.d., d.d., s.r.o., Sp. z o.o., S.A., B.V., OÜ).\n")
	b.WriteString("- Balkan and EU vendors: companies from Serbia, Croatia, Slovenia and Bosnia commonly use \"d.o.o.\" (limited liability) or \"a.d.\"/\"d.d.\" (joint stock); keep those suffixes lowercase with dots, e.g. \"Telekom Srbija a.d.\" or \"Infobip d.o.o.\".\n")
	b.WriteString("- Strip payment-processor noise (\"PAYPAL *\", \"SQ *\", \"AMZN MKTP\", card terminal ids) before identifying the merchant.\n")
	b.WriteString("- Use these exact normalizations for well-known vendors:\n")
	for _, m := range legalEntityMappings {
		b.WriteString("  - " + m[0] + " → " + m[1] + "\n")
	}
	b.WriteString("- If the merchant cannot be identified as a real business, return null with low confidence.\n\n")

	if needsCategories {
		b.WriteString("CATEGORY RULES:\n")
		b.WriteString("- category_slug must be EXACTLY one of the following (lowercase, as written):\n")
		for _, c := range taxonomy {
			if c.Hint != "" {
				b.WriteString("  - " + c.Slug + ": " + c.Hint + "\n")
			} else {
				b.WriteString("  - " + c.Slug + "\n")
			}
		}
		b.WriteString("- Only categorize transactions marked \"categorize: yes\"; for the rest return null.\n")
		b.WriteString("- Confidence calibration examples:\n")
		b.WriteString("  - \"LUFTHANSA FRA-JFK\" → travel, confidence 0.95\n")
		b.WriteString("  - \"GITHUB, INC.\" → software, confidence 0.9\n")
		b.WriteString("  - \"CITY CENTRE 4421\" → other, confidence 0.3\n")
		b.WriteString("- When unsure, prefer a low confidence over a wrong category.\n\n")
	}

	b.WriteString(fmt.Sprintf("TRANSACTIONS (%d):\n", len(items)))
	for i, it := range items {
		b.WriteString(fmt.Sprintf("%d. description: %q | amount: %s %s", i+1, it.Description, it.Amount, it.Currency))
		if needsCategories {
			if it.NeedsCategory {
				b.WriteString(" | categorize: yes")
			} else {
				b.WriteString(" | categorize: no")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nReturn ONLY a JSON object of the form {\"results\": [...]} where results contains EXACTLY %d entries, one per transaction, in the same order as listed.\n", len(items)))
	b.WriteString("Each entry must be:\n")
	b.WriteString("{\"merchant_name\": string or null, \"category_slug\": string or null, \"merchant_confidence\": number 0-1, \"category_confidence\": number 0-1}\n")
	b.WriteString("Do not wrap the response in code fences.\n")

	return b.String()
}
