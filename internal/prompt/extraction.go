// Package prompt builds the instruction strings sent to the generative
// model. Builders are pure functions: no I/O, deterministic for identical
// inputs, so prompts can be asserted verbatim in tests.
package prompt

import (
	"strings"
)

// extractionOutputShape is the required JSON contract for document
// extraction. The model must return exactly this object, no prose around it.
const extractionOutputShape = `{
  "vendor_name": string or null,
  "vendor_address": string or null,
  "website": string or null,
  "email": string or null,
  "invoice_number": string or null,
  "date": string "YYYY-MM-DD" or null,
  "due_date": string "YYYY-MM-DD" or null,
  "currency": string (ISO 4217, required),
  "total_amount": number (required, positive),
  "subtotal_amount": number or null,
  "tax_amount": number or null,
  "tax_rate": number 0-100 or null,
  "tax_type": "vat"|"sales_tax"|"gst"|"withholding_tax"|"service_tax"|"excise_tax"|"reverse_charge"|"custom_tax" or null,
  "type": "invoice"|"receipt"|"expense"|"other",
  "customer_name": string or null,
  "customer_address": string or null,
  "line_items": [{"description": string or null, "quantity": number or null, "unit_price": number or null, "total_price": number or null}],
  "payment_method": string or null,
  "iban": string or null,
  "reference_number": string or null,
  "notes": string or null,
  "language": string or null
}`

// BuildExtractionPrompt builds the standard (pass 1) instruction string for
// structured field extraction from a scanned invoice or receipt. The optional
// companyName identifies the receiving company so the model does not confuse
// it with the vendor.
func BuildExtractionPrompt(companyName string) string {
	var b strings.Builder

	b.WriteString("You are an expert document parser for scanned invoices and receipts.\n")
	b.WriteString("Extract the structured fields below from the attached document.\n\n")

	b.WriteString("VENDOR IDENTIFICATION RULES:\n")
	b.WriteString("- The vendor is the party that ISSUED the document. Look in the header, letterhead or logo area.\n")
	b.WriteString("- The customer is the party the document is addressed to, usually under \"Bill to\" or \"Invoice to\".\n")
	if companyName != "" {
		b.WriteString("- The receiving company is \"" + companyName + "\". If that name appears on the document it is the CUSTOMER, never the vendor.\n")
	}
	b.WriteString("- A vendor name is never a date, a date range, a document number or an amount.\n")
	b.WriteString("- If you cannot identify the vendor with certainty, return null rather than guessing.\n\n")

	b.WriteString("NUMBER NORMALIZATION RULES:\n")
	b.WriteString("- European formats use '.' as thousands separator and ',' as decimal separator: \"1.234,56\" means 1234.56.\n")
	b.WriteString("- Anglo formats use ',' as thousands separator and '.' as decimal separator: \"1,234.56\" means 1234.56.\n")
	b.WriteString("- Always output plain JSON numbers with '.' as the decimal separator and no thousands separators.\n")
	b.WriteString("- Amounts are never negative on an invoice; a parenthesized amount is a credit note, use type \"other\".\n\n")

	b.WriteString("CURRENCY RULES:\n")
	b.WriteString("- Return the ISO 4217 code, never a symbol: \"$\" alone means USD, \"€\" means EUR, \"£\" means GBP, \"CHF\" stays CHF, \"kr\" means SEK unless the document is clearly Danish (DKK) or Norwegian (NOK), \"din\"/\"RSD\" means RSD, \"kn\"/\"HRK\" means EUR for documents issued after 2023.\n")
	b.WriteString("- If a country-prefixed symbol is present (\"US$\", \"CA$\", \"A$\"), use the country's code (USD, CAD, AUD).\n")
	b.WriteString("- The currency of total_amount wins when a document mixes currencies.\n\n")

	b.WriteString("DATE RULES:\n")
	b.WriteString("- Output all dates as \"YYYY-MM-DD\".\n")
	b.WriteString("- \"date\" is the issue date; \"due_date\" is the payment deadline. Do not swap them.\n\n")

	b.WriteString("Return ONLY a single JSON object with exactly this shape:\n")
	b.WriteString(extractionOutputShape)
	b.WriteString("\n\nDo not wrap the response in code fences. Output must begin with \"{\" and end with \"}\".\n")

	return b.String()
}

// BuildFallbackExtractionPrompt builds the augmented chain-of-thought variant
// used for the pass 2 fallback after a low quality score. It asks the model
// to reason step by step before answering, which recovers critical fields the
// first pass missed on low-quality scans.
func BuildFallbackExtractionPrompt(companyName string) string {
	var b strings.Builder

	b.WriteString("You are an expert document parser. A previous extraction attempt on this document missed or mangled critical fields, so work carefully.\n\n")
	b.WriteString("Think step by step BEFORE answering:\n")
	b.WriteString("1. Identify the document issuer: scan the header, letterhead, stamp and footer for a business name.\n")
	b.WriteString("2. Locate the grand total: it is usually the largest amount, labeled \"Total\", \"Gesamtbetrag\", \"Ukupno\", \"Montant total\" or similar, near the bottom.\n")
	b.WriteString("3. Determine the currency from explicit codes first, symbols second, language and country hints last.\n")
	b.WriteString("4. Find the issue date, distinguishing it from due dates and delivery dates.\n")
	b.WriteString("5. Only then fill in the remaining fields.\n\n")
	b.WriteString("Apply this reasoning silently; the final output must still be only the JSON object.\n\n")

	b.WriteString(BuildExtractionPrompt(companyName))

	return b.String()
}
