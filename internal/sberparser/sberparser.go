// Package sberparser parses Sberbank statement text. The grammar is dense
// single-line: date (plus optional time) and amount usually share a
// physical line, with the description between the tokens. When OCR pushes
// the amount onto its own line, a two-line fallback recovers it using the
// neighbouring lines.
package sberparser

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
		regexp.MustCompile(`(?i)сбербанк`),
		regexp.MustCompile(`(?i)sberbank`),
		regexp.MustCompile(`(?i)сбер`),
		regexp.MustCompile(`(?i)карта.*сбер`),
	}

	datePat    = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timePat    = regexp.MustCompile(`\d{2}:\d{2}`)
	amountPat  = regexp.MustCompile(`[+-]?\d+(?:[\s\x{00a0}]\d{3})*(?:[.,]\d{1,2})?\s*₽?`)
	balancePat = regexp.MustCompile(`(?i)баланс[:\s]+(\d[\d\s\x{00a0},]*(?:[.,]\d{1,2})?)`)
)

// Config carries the parser policy knobs.
type Config struct {
	// ForceDebitSign preserves the historically observed behavior of
	// recording every matched amount as a debit, inverting any positive
	// textual sign. Set to false to honour the sign as written, so that a
	// stated "+1500" credit stays positive.
	ForceDebitSign bool
}

// DefaultConfig matches the observed statement behavior.
func DefaultConfig() Config {
	return Config{ForceDebitSign: true}
}

// Parser is the Sberbank statement parser.
type Parser struct {
	cfg Config
	log logging.Logger
}

// New builds a Sberbank parser with the given policy and logger.
func New(cfg Config, log logging.Logger) *Parser {
	if log == nil {
		log = logging.Nop()
	}
	return &Parser{cfg: cfg, log: log}
}

// Bank implements parser.StatementParser.
func (p *Parser) Bank() models.Bank {
	return models.BankSberbank
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

// Parse scans the statement line by line. Interpretation of line i may
// depend on lines i-1 and i+1, so the scan is strictly sequential.
func (p *Parser) Parse(text string) []models.ParsedTransaction {
	lines := parser.SplitLines(text)
	var out []models.ParsedTransaction

	// Running context carried across lines: the date/time of the last
	// dated line and the last labelled balance seen.
	var curDate, curTime string
	var curBalance decimal.Decimal

	for i, line := range lines {
		dateLoc := datePat.FindStringIndex(line)
		if dateLoc != nil {
			d, err := dateutils.NormalizeDate(line[dateLoc[0]:dateLoc[1]])
			if err != nil {
				p.log.WithError(err).WithField("line", i).Debug("dropping line with bad date")
				continue
			}
			curDate = d
			curTime = ""
			if tm := timePat.FindString(line[dateLoc[1]:]); tm != "" {
				curTime = dateutils.NormalizeTime(tm)
			}
		}

		if m := balancePat.FindStringSubmatch(line); m != nil {
			if b, err := moneyutils.ParseAmount(m[1]); err == nil {
				curBalance = b
			}
		}

		if dateLoc != nil {
			// Dense single-line case: amount somewhere after the tokens.
			tokenEnd := dateLoc[1]
			if tmLoc := timePat.FindStringIndex(line[dateLoc[1]:]); tmLoc != nil {
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
			desc := strings.TrimSpace(rest[:amtLoc[0]])
			p.emit(&out, curDate, curTime, desc, amount, curBalance)
			continue
		}

		// Two-line fallback: a bare amount line following a dated line.
		// The description is taken from the previous non-date line.
		if curDate == "" {
			continue
		}
		amtLoc := amountPat.FindStringIndex(line)
		if amtLoc == nil || strings.TrimSpace(line[:amtLoc[0]]) != "" {
			continue
		}
		amount, err := moneyutils.ParseAmount(line[amtLoc[0]:amtLoc[1]])
		if err != nil {
			continue
		}
		var desc string
		if i > 0 && !datePat.MatchString(lines[i-1]) && !balancePat.MatchString(lines[i-1]) {
			desc = strings.TrimSpace(lines[i-1])
		}
		p.emit(&out, curDate, curTime, desc, amount, curBalance)
	}

	return out
}

// emit applies the common acceptance policy: sign normalization, then
// silent drop of records without a description or with a zero amount.
func (p *Parser) emit(out *[]models.ParsedTransaction, date, tm, desc string, amount, balance decimal.Decimal) {
	if p.cfg.ForceDebitSign && amount.IsPositive() {
		amount = amount.Neg()
	}
	if desc == "" || amount.IsZero() {
		return
	}
	*out = append(*out, models.ParsedTransaction{
		Date:        date,
		Time:        tm,
		Description: desc,
		Amount:      amount,
		Balance:     balance,
	})
}
