// Package parser defines the statement parser contract and the ordered
// bank registry used for grammar detection.
package parser

import (
	"alebedev/statement-parser/internal/models"
)

// StatementParser is implemented once per supported bank. Parse is a pure
// function of the statement text: a parser keeps no state between calls,
// so one instance is safe to share across concurrent requests.
type StatementParser interface {
	// Bank returns the identity applied to every transaction parsed from
	// a statement this parser accepted.
	Bank() models.Bank

	// Detect reports whether the statement text looks like it was produced
	// by this bank's grammar.
	Detect(text string) bool

	// Parse scans the statement text and returns the transactions it could
	// extract. Malformed lines are dropped, not reported; an empty slice is
	// a valid result.
	Parse(text string) []models.ParsedTransaction
}

// Registry holds parsers in registration order. Detection returns the
// first parser whose indicators match, so order is the only tie-breaker on
// ambiguous text; there is no specificity scoring.
type Registry struct {
	parsers []StatementParser
}

// NewRegistry builds a registry from parsers in the given order.
func NewRegistry(parsers ...StatementParser) *Registry {
	return &Registry{parsers: parsers}
}

// Detect returns the first registered parser matching the text, or nil
// when no bank is recognized.
func (r *Registry) Detect(text string) StatementParser {
	for _, p := range r.parsers {
		if p.Detect(text) {
			return p
		}
	}
	return nil
}

// Get returns the parser registered for a bank, or nil.
func (r *Registry) Get(bank models.Bank) StatementParser {
	for _, p := range r.parsers {
		if p.Bank() == bank {
			return p
		}
	}
	return nil
}

// Banks lists the registered banks in detection order.
func (r *Registry) Banks() []models.Bank {
	banks := make([]models.Bank, 0, len(r.parsers))
	for _, p := range r.parsers {
		banks = append(banks, p.Bank())
	}
	return banks
}
