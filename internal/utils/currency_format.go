package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// LedgerCurrency is the currency every balance and amount is held in.
const LedgerCurrency = "PKR"

var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// MinorUnits converts a major-unit amount to the currency's smallest unit,
// rounding half away from zero. ok is false when the result does not fit in an int64.
func MinorUnits(amount decimal.Decimal) (units int64, ok bool) {
	fraction := money.GetCurrency(LedgerCurrency).Fraction
	minor := amount.Shift(int32(fraction)).Round(0)
	if minor.LessThan(minMinorUnits) || minor.GreaterThan(maxMinorUnits) {
		return 0, false
	}
	return minor.IntPart(), true
}

// FormatAmount renders amount for display with the currency symbol and grouping.
// Amounts beyond go-money's int64 range fall back to a plain fixed-point string.
func FormatAmount(amount decimal.Decimal) string {
	units, ok := MinorUnits(amount)
	if !ok {
		return amount.StringFixed(int32(money.GetCurrency(LedgerCurrency).Fraction)) + " " + LedgerCurrency
	}
	return money.New(units, LedgerCurrency).Display()
}

// FormatSigned renders amount with a leading sign for debits and credits.
func FormatSigned(amount decimal.Decimal, isDebit bool) string {
	if isDebit {
		return "-" + FormatAmount(amount)
	}
	return "+" + FormatAmount(amount)
}
