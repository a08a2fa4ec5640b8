// Package aiparser delegates statement extraction to a generative-text
// backend constrained to emit a fixed JSON schema. Output is validated
// strictly before it is allowed to replace the deterministic parsers'
// result; any failure, including an empty result, is surfaced as an
// AIParseError so the caller can fall back.
package aiparser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/models"
	"alebedev/statement-parser/internal/parsererror"

	"github.com/shopspring/decimal"
)

// TextGenerator is the narrow contract to the generative backend: prompt
// in, text out. Production uses the Gemini implementation; tests inject
// fakes.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// codeFencePat strips an optional markdown code fence around the JSON
// payload; models wrap their output this way despite instructions.
var codeFencePat = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// rawTransaction mirrors the JSON schema the backend is instructed to emit.
// json.Number keeps amount precision out of float64 on the way to decimal.
type rawTransaction struct {
	Date        string      `json:"date"`
	Time        string      `json:"time,omitempty"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Balance     json.Number `json:"balance"`
}

// Parser extracts transactions from statement text via a TextGenerator.
type Parser struct {
	gen TextGenerator
	log logging.Logger
}

// New builds an AI parser around the given backend.
func New(gen TextGenerator, log logging.Logger) *Parser {
	if log == nil {
		log = logging.Nop()
	}
	return &Parser{gen: gen, log: log}
}

// Parse sends the statement text with a bank hint to the backend and
// validates the JSON reply. The context bounds the single network call;
// there is no retry, a failure means the deterministic parser takes over.
func (p *Parser) Parse(ctx context.Context, text string, bank models.Bank) ([]models.ParsedTransaction, error) {
	reply, err := p.gen.Generate(ctx, buildPrompt(text, bank))
	if err != nil {
		return nil, &parsererror.AIParseError{Bank: string(bank), Reason: "backend call failed", Err: err}
	}

	payload := strings.TrimSpace(reply)
	if m := codeFencePat.FindStringSubmatch(payload); m != nil {
		payload = m[1]
	}

	var raw []rawTransaction
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &parsererror.AIParseError{Bank: string(bank), Reason: "reply is not a JSON array", Err: err}
	}

	transactions := make([]models.ParsedTransaction, 0, len(raw))
	for _, r := range raw {
		tx, ok := p.validate(r)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	// Zero surviving transactions is not a usable AI result.
	if len(transactions) == 0 {
		return nil, &parsererror.AIParseError{Bank: string(bank), Reason: "no valid transactions in reply"}
	}

	p.log.WithField("count", len(transactions)).Debug("ai parse accepted")
	return transactions, nil
}

// validate drops elements lacking a date or description or whose amount is
// unparseable, and defaults a missing balance to zero.
func (p *Parser) validate(r rawTransaction) (models.ParsedTransaction, bool) {
	if r.Date == "" || strings.TrimSpace(r.Description) == "" {
		return models.ParsedTransaction{}, false
	}
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return models.ParsedTransaction{}, false
	}
	balance := decimal.Zero
	if r.Balance != "" {
		if b, err := decimal.NewFromString(r.Balance.String()); err == nil {
			balance = b
		}
	}
	return models.ParsedTransaction{
		Date:        r.Date,
		Time:        r.Time,
		Description: strings.TrimSpace(r.Description),
		Amount:      amount,
		Balance:     balance,
	}, true
}

func buildPrompt(text string, bank models.Bank) string {
	return fmt.Sprintf(`Ты помощник для парсинга банковских выписок.
Извлеки все транзакции из следующего текста банковской выписки (%s).

Верни результат в формате JSON массива, где каждый объект содержит:
- date: дата в формате YYYY-MM-DD
- time: время в формате HH:mm (опционально)
- amount: сумма (отрицательная для расходов, положительная для доходов)
- description: описание транзакции
- balance: баланс после транзакции

Пример формата:
[
  {
    "date": "2026-01-03",
    "time": "14:30",
    "amount": -1500.50,
    "description": "Оплата в магазине Магнит",
    "balance": 50000.00
  }
]

Текст выписки:
%s

Верни ТОЛЬКО JSON массив, без дополнительных объяснений.`, bank, text)
}
