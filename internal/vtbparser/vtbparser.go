// Package vtbparser parses VTB statement text. VTB lines carry several
// numeric tokens; the grammar is positional: with two or more matches the
// second-to-last is the transaction amount and the last is the balance,
// with exactly one match it is the amount and the balance stays unknown.
package vtbparser

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
		regexp.MustCompile(`(?i)втб`),
		regexp.MustCompile(`(?i)vtb`),
		regexp.MustCompile(`(?i)втб24`),
		regexp.MustCompile(`(?i)карта.*втб`),
	}

	datePat    = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timePat    = regexp.MustCompile(`\d{2}:\d{2}`)
	amountPat  = regexp.MustCompile(`[+-]?\d+(?:[\s\x{00a0}]\d{3})*(?:[.,]\d{1,2})?\s*₽?`)
	balancePat = regexp.MustCompile(`(?i)баланс[:\s]+(\d[\d\s\x{00a0},]*(?:[.,]\d{1,2})?)`)
)

// Parser is the VTB statement parser.
type Parser struct {
	log logging.Logger
}

// New builds a VTB parser with the given logger.
func New(log logging.Logger) *Parser {
	if log == nil {
		log = logging.Nop()
	}
	return &Parser{log: log}
}

// Bank implements parser.StatementParser.
func (p *Parser) Bank() models.Bank {
	return models.BankVTB
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

// Parse scans line by line, applying the positional multi-amount rule to
// the numeric tokens found after the date and time.
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
		matches := amountPat.FindAllStringIndex(rest, -1)
		if len(matches) == 0 {
			continue
		}

		var amount, balance decimal.Decimal
		if len(matches) >= 2 {
			amount, err = moneyutils.ParseAmount(rest[matches[len(matches)-2][0]:matches[len(matches)-2][1]])
			if err != nil {
				p.log.WithError(err).WithField("line", i).Debug("dropping line with bad amount")
				continue
			}
			if b, berr := moneyutils.ParseAmount(rest[matches[len(matches)-1][0]:matches[len(matches)-1][1]]); berr == nil {
				balance = b
			}
		} else {
			amount, err = moneyutils.ParseAmount(rest[matches[0][0]:matches[0][1]])
			if err != nil {
				p.log.WithError(err).WithField("line", i).Debug("dropping line with bad amount")
				continue
			}
		}

		if amount.IsPositive() {
			amount = amount.Neg()
		}

		desc := strings.TrimSpace(rest[:matches[0][0]])

		// The positional rule misses a labelled balance when only one
		// numeric token is present.
		if balance.IsZero() {
			if m := balancePat.FindStringSubmatch(line); m != nil {
				if b, berr := moneyutils.ParseAmount(m[1]); berr == nil {
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
