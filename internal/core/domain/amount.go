package domain

import (
	"strings"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxAmountScale is the number of fractional digits an amount may carry.
const MaxAmountScale = 2

// MaxAmount is the largest amount a single operation may move.
var MaxAmount = decimal.New(1, maxAmountExponent)

const (
	maxAmountInput    = 64
	maxAmountExponent = 15
	// Below this exponent a value cannot be checked for scale without large rescaling.
	minAmountExponent = -18
)

// ParseAmount turns user input into a strictly positive decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountInput {
		return decimal.Zero, invalidAmount()
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrValidation, apperrors.ErrMalformedAmount, "Invalid amount", err)
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateAmount rejects zero, negative, over-precise and out-of-range amounts.
// Exponent and digit count are checked before any arithmetic on d.
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return invalidAmount()
	}
	exp := d.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent {
		return invalidAmount()
	}
	// A coefficient of n digits is at least 10^(n-1).
	if int64(d.NumDigits())-1+int64(exp) > maxAmountExponent {
		return invalidAmount()
	}
	if d.GreaterThan(MaxAmount) {
		return invalidAmount()
	}
	if exp < -MaxAmountScale && !d.Equal(d.Truncate(MaxAmountScale)) {
		return invalidAmount()
	}
	return nil
}

func invalidAmount() error {
	return apperrors.Validation(apperrors.ErrMalformedAmount, "Invalid amount")
}
