// Package orchestrator ties the pipeline together: detect the bank, try
// the AI parser when allowed, fall back to the deterministic grammar, then
// categorize each transaction. One call owns one statement; there is no
// state shared across calls, so concurrent uploads need no locking here.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"alebedev/statement-parser/internal/aiparser"
	"alebedev/statement-parser/internal/categorizer"
	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/models"
	"alebedev/statement-parser/internal/parser"
)

// ErrBankNotDetected is returned when no registered grammar matches the
// statement text. Callers surface it as "could not identify your bank".
var ErrBankNotDetected = errors.New("no supported bank detected in statement text")

// Result is the outcome of parsing one statement.
type Result struct {
	Bank         models.Bank
	Transactions []models.ParsedTransaction
}

// Service runs the extraction pipeline. All collaborators are injected;
// aiParser may be nil, in which case the deterministic parsers always run.
type Service struct {
	registry  *parser.Registry
	aiParser  *aiparser.Parser
	cat       *categorizer.Categorizer
	aiTimeout time.Duration
	log       logging.Logger
}

// New builds a Service. aiTimeout bounds each backend call; zero means
// no explicit deadline beyond the caller's context.
func New(registry *parser.Registry, aiParser *aiparser.Parser, cat *categorizer.Categorizer, aiTimeout time.Duration, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		registry:  registry,
		aiParser:  aiParser,
		cat:       cat,
		aiTimeout: aiTimeout,
		log:       log,
	}
}

// ParseStatement extracts transactions from raw OCR/PDF text. When useAI
// is set and an AI parser is configured it is tried first; any AI failure,
// including a timeout or an empty validated result, falls back silently to
// the detected bank's deterministic parser.
func (s *Service) ParseStatement(ctx context.Context, text string, useAI bool) (*Result, error) {
	p := s.registry.Detect(text)
	if p == nil {
		return nil, ErrBankNotDetected
	}
	bank := p.Bank()

	var transactions []models.ParsedTransaction
	if useAI && s.aiParser != nil {
		aiCtx := ctx
		if s.aiTimeout > 0 {
			var cancel context.CancelFunc
			aiCtx, cancel = context.WithTimeout(ctx, s.aiTimeout)
			defer cancel()
		}
		txs, err := s.aiParser.Parse(aiCtx, text, bank)
		if err != nil {
			s.log.WithError(err).WithField("bank", bank).
				Warn("ai parse failed, using deterministic parser")
			transactions = p.Parse(text)
		} else {
			transactions = txs
		}
	} else {
		transactions = p.Parse(text)
	}

	s.log.WithField("bank", bank).
		WithField("count", len(transactions)).
		Info("statement parsed")

	return &Result{Bank: bank, Transactions: transactions}, nil
}

// ExtractStatement parses the statement and categorizes every transaction.
// Categorization calls are independent of each other; line parsing already
// happened, so order is preserved but carries no semantic weight.
func (s *Service) ExtractStatement(ctx context.Context, text string, useAI bool) (models.Bank, []models.CategorizedTransaction, error) {
	res, err := s.ParseStatement(ctx, text, useAI)
	if err != nil {
		return "", nil, err
	}

	categorized := make([]models.CategorizedTransaction, 0, len(res.Transactions))
	for _, tx := range res.Transactions {
		cr := s.categorizeOne(ctx, tx, useAI)
		categorized = append(categorized, models.CategorizedTransaction{
			ParsedTransaction: tx,
			Bank:              res.Bank,
			Category:          cr.Category,
			Confidence:        cr.Confidence,
			Method:            cr.Method,
		})
	}

	return res.Bank, categorized, nil
}

func (s *Service) categorizeOne(ctx context.Context, tx models.ParsedTransaction, useAI bool) models.CategorizationResult {
	if useAI && s.aiTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.aiTimeout)
		defer cancel()
	}
	return s.cat.Categorize(ctx, tx.Description, tx.Amount, useAI)
}
