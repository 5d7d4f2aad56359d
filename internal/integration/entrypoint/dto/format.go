// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatCompact renders a monetary amount in the compact notation used
// by dashboard cards: amounts from one thousand up show as "1.5k",
// from one million up as "1.2M", anything smaller as a plain number.
// One decimal place, with a trailing ".0" trimmed ("2k", not "2.0k").
func FormatCompact(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	abs := amount.Abs()

	var formatted string
	switch {
	case abs.GreaterThanOrEqual(million):
		formatted = trimZero(abs.Div(million).StringFixed(1)) + "M"
	case abs.GreaterThanOrEqual(thousand):
		formatted = trimZero(abs.Div(thousand).StringFixed(1)) + "k"
	default:
		formatted = trimZero(abs.StringFixed(1))
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}

// trimZero drops a ".0" suffix from a fixed-point string.
func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 1, 64)
}
