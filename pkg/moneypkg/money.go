// Package moneypkg provides monetary amount parsing and rounding for the
// single platform currency (BRL).
package moneypkg

import (
	"github.com/shopspring/decimal"

	"github.com/SkelleTu/InvistaPro-V10-sub002/internal/domain"
)

// CentavoPlaces is the number of decimal places of the smallest currency unit.
const CentavoPlaces = 2

// Zero is the canonical zero amount.
const Zero = "0"

// Parse parses an amount string into a decimal, rejecting malformed input.
func Parse(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	return d, nil
}

// ParsePositive parses an amount and requires it to be strictly positive.
func ParsePositive(amount string) (decimal.Decimal, error) {
	d, err := Parse(amount)
	if err != nil {
		return d, err
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return d, domain.ErrNegativeAmount
	}

	return d, nil
}

// RoundCentavos rounds to the smallest currency unit using round-half-even,
// so repeated accruals across many accounts do not drift systematically.
func RoundCentavos(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(CentavoPlaces)
}

// Format renders a decimal as the canonical two-decimal amount string.
func Format(d decimal.Decimal) string {
	return d.StringFixed(CentavoPlaces)
}
