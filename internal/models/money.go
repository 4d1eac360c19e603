package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a signed monetary value with currency.
// Enrichment targets carry their transaction amount as Money so sign checks
// and absolute-value formatting never go through float arithmetic.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney creates a Money value from a decimal amount and currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(amount), Currency: currency}
}

// NewMoneyFromString creates a Money value from a string amount.
func NewMoneyFromString(amount, currency string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return Money{Amount: dec, Currency: currency}, nil
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive returns true if the amount is strictly positive.
// Positive amounts carry income semantics in the enrichment pipeline.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// Abs returns the absolute value of the money amount.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), Currency: m.Currency}
}

// String returns a string representation of the money value.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// Equal returns true if two Money values have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}
