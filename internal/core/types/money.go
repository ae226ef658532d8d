// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundCurrency rounds a monetary value half away from zero to whole
// currency units. All money shown to the operator goes through this.
func RoundCurrency(m Money) int64 {
	return m.Round(0).IntPart()
}

// Rate is a commission fraction (e.g. 0.16). Stored and applied exactly,
// never as float64.
type Rate = decimal.Decimal

// NewRateFromString parses a commission fraction.
func NewRateFromString(s string) (Rate, error) {
	return decimal.NewFromString(s)
}
