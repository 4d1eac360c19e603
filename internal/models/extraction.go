// Package models provides the data structures used throughout the
// document-understanding pipeline.
package models

import (
	"regexp"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
)

// DocumentType classifies an extracted document.
type DocumentType string

// Document types the extraction model may return.
const (
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeReceipt DocumentType = "receipt"
	DocumentTypeExpense DocumentType = "expense"
	DocumentTypeOther   DocumentType = "other"
)

// TaxType classifies the tax regime found on a document.
type TaxType string

// Tax types the extraction model may return.
const (
	TaxTypeVAT            TaxType = "vat"
	TaxTypeSalesTax       TaxType = "sales_tax"
	TaxTypeGST            TaxType = "gst"
	TaxTypeWithholdingTax TaxType = "withholding_tax"
	TaxTypeServiceTax     TaxType = "service_tax"
	TaxTypeExciseTax      TaxType = "excise_tax"
	TaxTypeReverseCharge  TaxType = "reverse_charge"
	TaxTypeCustomTax      TaxType = "custom_tax"
)

// LineItem is a single position on an invoice or receipt.
// Every field is independently nullable; scanned documents routinely omit
// quantities or unit prices.
type LineItem struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	TotalPrice  *float64 `json:"total_price"`
}

// ExtractionResult is the structured output of document extraction.
// Absence of an optional field is a valid, expected state, not an error —
// only currency, total_amount and document_type are required.
type ExtractionResult struct {
	VendorName      *string      `json:"vendor_name"`
	VendorAddress   *string      `json:"vendor_address"`
	Website         *string      `json:"website"`
	Email           *string      `json:"email"`
	InvoiceNumber   *string      `json:"invoice_number"`
	Date            *string      `json:"date"`
	DueDate         *string      `json:"due_date"`
	Currency        string       `json:"currency"`
	TotalAmount     float64      `json:"total_amount"`
	SubtotalAmount  *float64     `json:"subtotal_amount"`
	TaxAmount       *float64     `json:"tax_amount"`
	TaxRate         *float64     `json:"tax_rate"`
	TaxType         *TaxType     `json:"tax_type"`
	Type            DocumentType `json:"type"`
	CustomerName    *string      `json:"customer_name"`
	CustomerAddress *string      `json:"customer_address"`
	LineItems       []LineItem   `json:"line_items"`
	PaymentMethod   *string      `json:"payment_method"`
	IBAN            *string      `json:"iban"`
	ReferenceNumber *string      `json:"reference_number"`
	Notes           *string      `json:"notes"`
	Language        *string      `json:"language"`
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s matches the canonical YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// ValidDocumentType reports membership in the closed document-type set.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeReceipt, DocumentTypeExpense, DocumentTypeOther:
		return true
	}
	return false
}

// ValidTaxType reports membership in the closed tax-type set.
func ValidTaxType(t TaxType) bool {
	switch t {
	case TaxTypeVAT, TaxTypeSalesTax, TaxTypeGST, TaxTypeWithholdingTax,
		TaxTypeServiceTax, TaxTypeExciseTax, TaxTypeReverseCharge, TaxTypeCustomTax:
		return true
	}
	return false
}

// Validate checks the required-field contract for an extraction result.
// Optional fields are never rejected for being absent.
func (r *ExtractionResult) Validate() error {
	if r.Currency == "" {
		return &aierror.ValidationError{Field: "currency", Reason: "required field is missing"}
	}
	if r.TotalAmount <= 0 {
		return &aierror.ValidationError{Field: "total_amount", Reason: "must be positive"}
	}
	if !ValidDocumentType(r.Type) {
		return &aierror.ValidationError{Field: "type", Reason: "unknown document type '" + string(r.Type) + "'"}
	}
	if r.TaxType != nil && !ValidTaxType(*r.TaxType) {
		return &aierror.ValidationError{Field: "tax_type", Reason: "unknown tax type '" + string(*r.TaxType) + "'"}
	}
	return nil
}
