package utils

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount conversion between human-readable decimal strings and
// smallest-unit (wei) integer strings. All scaling is exact base-10
// decimal arithmetic; floats never touch an amount.

// ParseDecimal parses a non-negative decimal amount string.
func ParseDecimal(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be negative")
	}

	return dec, nil
}

// ParseBigInt parses a base-10 integer string into a big.Int.
func ParseBigInt(value string) (*big.Int, bool) {
	if value == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(value, 10)
	return n, ok
}

// IsPositiveInteger reports whether raw is a strictly positive base-10
// integer string.
func IsPositiveInteger(raw string) bool {
	n, ok := ParseBigInt(raw)
	return ok && n.Sign() > 0
}

// ToSmallestUnit converts a whole-unit decimal string ("1.5") to a
// smallest-unit integer string at the given precision
// ("1500000000000000000" at 18). Amounts with more fractional digits
// than the precision allows are rejected rather than rounded.
func ToSmallestUnit(amount string, decimals int) (string, bool) {
	dec, err := ParseDecimal(amount)
	if err != nil {
		return "", false
	}

	scaled := dec.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return "", false
	}

	return scaled.BigInt().String(), true
}

// FromSmallestUnit converts a smallest-unit integer string back to its
// exact whole-unit decimal display form ("1500000000000000000" → "1.5").
func FromSmallestUnit(raw string, decimals int) (string, bool) {
	n, ok := ParseBigInt(raw)
	if !ok || n.Sign() < 0 {
		return "", false
	}
	return decimal.NewFromBigInt(n, -int32(decimals)).String(), true
}
