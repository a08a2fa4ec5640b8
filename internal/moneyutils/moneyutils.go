// Package moneyutils normalizes locale-specific monetary substrings into
// decimal values. OCR output mixes thousands separators (regular and
// non-breaking spaces, commas), comma decimal separators and trailing
// currency glyphs; everything here reduces those to a plain decimal.
package moneyutils

import (
	"strings"

	"alebedev/statement-parser/internal/parsererror"

	"github.com/shopspring/decimal"
)

var currencyReplacer = strings.NewReplacer(
	"₽", "",
	"$", "",
	"€", "",
	"руб.", "",
	"руб", "",
)

// ParseAmount converts a monetary substring into a decimal. The rule is the
// one observed across every supported grammar: drop all whitespace, turn
// commas into dots, strip currency glyphs, then parse. Sign is taken
// verbatim from the text; income/expense inference is parser policy, not
// normalization.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := stripSpaces(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = currencyReplacer.Replace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.MalformedAmountError{Value: s, Err: err}
	}
	return d, nil
}

// MustParseAmount is ParseAmount for test fixtures and compiled-in
// constants; it panics on malformed input.
func MustParseAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return d
}

// stripSpaces removes every Unicode space rune, including the NBSP and
// narrow NBSP that OCR engines emit as thousands separators.
func stripSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ' ', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
