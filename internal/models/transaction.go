// Package models provides the data structures shared by the statement
// parsing and categorization packages.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsedTransaction is a single transaction extracted from statement text.
// Amounts follow the design-wide sign convention: expenses are negative,
// income is positive. Balance is the running balance as stated by the
// source document and may be zero when the statement does not expose it.
type ParsedTransaction struct {
	Date        string          `csv:"Date" json:"date"`               // YYYY-MM-DD
	Time        string          `csv:"Time" json:"time,omitempty"`     // HH:MM, empty when absent
	Description string          `csv:"Description" json:"description"` // trimmed, non-empty
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
	Balance     decimal.Decimal `csv:"Balance" json:"balance"`
}

// HasTime reports whether the statement carried a clock time for this entry.
func (t *ParsedTransaction) HasTime() bool {
	return t.Time != ""
}

// IsExpense reports whether the transaction is an outflow.
func (t *ParsedTransaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

func (t *ParsedTransaction) String() string {
	if t.Time != "" {
		return fmt.Sprintf("%s %s %s %s", t.Date, t.Time, t.Description, t.Amount.StringFixed(2))
	}
	return fmt.Sprintf("%s %s %s", t.Date, t.Description, t.Amount.StringFixed(2))
}

// CategorizedTransaction pairs an extracted transaction with the bank it
// came from and the categorization outcome.
type CategorizedTransaction struct {
	ParsedTransaction
	Bank       Bank    `csv:"Bank" json:"bank"`
	Category   string  `csv:"Category" json:"category"`
	Confidence float64 `csv:"Confidence" json:"confidence"`
	Method     Method  `csv:"Method" json:"method"`
}
