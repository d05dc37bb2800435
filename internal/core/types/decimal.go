// Package types provides common type aliases and utilities.
package types

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value or a quantity with full precision.
// Uses decimal.Decimal to avoid floating-point errors in running totals.
type Money = decimal.Decimal

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// One returns Money value 1.
func One() Money {
	return decimal.NewFromInt(1)
}

var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseLoose converts a raw numeric field to Money.
// Accepts a comma decimal separator and thousands spaces, and like the
// console reads only the leading number ("12 DH" is 12, "3pcs" is 3).
// Anything without a leading number yields zero; the second result reports
// whether a number was found.
func ParseLoose(raw string) (Money, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			// 1.234,56 -> 1234.56
			s = strings.ReplaceAll(s, ".", "")
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return decimal.Zero, false
	}
	prefix = strings.TrimSuffix(strings.TrimPrefix(prefix, "+"), ".")
	if i := strings.IndexByte(prefix, '.'); i == 0 || (i == 1 && prefix[0] == '-') {
		prefix = prefix[:i] + "0" + prefix[i:]
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
