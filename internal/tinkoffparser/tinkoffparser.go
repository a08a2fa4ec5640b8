// Package tinkoffparser parses Tinkoff statement text. The grammar anchors
// the amount to a trailing ruble glyph, which keeps OCR noise such as card
// and account numbers from being mistaken for amounts.
package tinkoffparser

import (
	"regexp"
	"strings"

	"alebedev/statement-parser/internal/dateutils"
	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/models"
	"alebedev/statement-parser/internal/moneyutils"
	"alebedev/statement-parser/internal/parser"

	"github.com/shopspring/decimal"
)

var (
	indicators = []*regexp.Regexp{
		regexp.MustCompile(`(?i)тинькофф`),
		regexp.MustCompile(`(?i)tinkoff`),
		regexp.MustCompile(`(?i)тинькоф`),
		regexp.MustCompile(`(?i)карта.*тинькофф`),
	}

	datePat = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timePat = regexp.MustCompile(`\d{2}:\d{2}`)
	// The currency glyph is required: a bare number is not an amount here.
	amountPat  = regexp.MustCompile(`[+-]?\d+(?:[\s\x{00a0}]\d{3})*(?:[.,]\d{1,2})?\s*₽`)
	balancePat = regexp.MustCompile(`(?i)баланс[:\s]+(\d[\d\s\x{00a0},]*(?:[.,]\d{1,2})?)`)
)

// Parser is the Tinkoff statement parser.
type Parser struct {
	log logging.Logger
}

// New builds a Tinkoff parser with the given logger.
func New(log logging.Logger) *Parser {
	if log == nil {
		log = logging.Nop()
	}
	return &Parser{log: log}
}

// Bank implements parser.StatementParser.
func (p *Parser) Bank() models.Bank {
	return models.BankTinkoff
}

// Detect implements parser.StatementParser.
func (p *Parser) Detect(text string) bool {
	for _, re := range indicators {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Parse scans line by line. Lines without a date or a glyph-anchored
// amount are skipped; the balance is looked up on the same line by label,
// then on the following line.
func (p *Parser) Parse(text string) []models.ParsedTransaction {
	lines := parser.SplitLines(text)
	var out []models.ParsedTransaction

	for i, line := range lines {
		dateLoc := datePat.FindStringIndex(line)
		if dateLoc == nil {
			continue
		}
		date, err := dateutils.NormalizeDate(line[dateLoc[0]:dateLoc[1]])
		if err != nil {
			p.log.WithError(err).WithField("line", i).Debug("dropping line with bad date")
			continue
		}

		tokenEnd := dateLoc[1]
		var tm string
		if tmLoc := timePat.FindStringIndex(line[dateLoc[1]:]); tmLoc != nil {
			tm = dateutils.NormalizeTime(line[dateLoc[1]+tmLoc[0] : dateLoc[1]+tmLoc[1]])
			tokenEnd = dateLoc[1] + tmLoc[1]
		}

		rest := line[tokenEnd:]
		amtLoc := amountPat.FindStringIndex(rest)
		if amtLoc == nil {
			continue
		}
		amount, err := moneyutils.ParseAmount(rest[amtLoc[0]:amtLoc[1]])
		if err != nil {
			p.log.WithError(err).WithField("line", i).Debug("dropping line with bad amount")
			continue
		}
		// Statement lines are debit-oriented: a bare positive is an expense.
		if amount.IsPositive() {
			amount = amount.Neg()
		}

		desc := strings.TrimSpace(rest[:amtLoc[0]])

		balance := decimal.Zero
		if m := balancePat.FindStringSubmatch(line); m != nil {
			if b, err := moneyutils.ParseAmount(m[1]); err == nil {
				balance = b
			}
		} else if i+1 < len(lines) {
			if m := balancePat.FindStringSubmatch(lines[i+1]); m != nil {
				if b, err := moneyutils.ParseAmount(m[1]); err == nil {
					balance = b
				}
			}
		}

		if desc == "" || amount.IsZero() {
			continue
		}
		out = append(out, models.ParsedTransaction{
			Date:        date,
			Time:        tm,
			Description: desc,
			Amount:      amount,
			Balance:     balance,
		})
	}

	return out
}
