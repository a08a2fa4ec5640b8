// Package categorizer assigns spending categories to transactions. Two
// paths exist: a keyword table (always available, the fallback) and a
// Gemini-backed classifier constrained to the closed category set. A hard
// business rule runs before either: positive amounts are income, full
// confidence, no classification attempted.
package categorizer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/models"

	"github.com/shopspring/decimal"
)

// TextGenerator is the generative backend used by the AI path. Nil means
// the AI path is unavailable and the keyword path is used directly.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Categorizer classifies transactions. It is stateless across calls and
// safe for concurrent use.
type Categorizer struct {
	categories []CategoryConfig
	gen        TextGenerator
	log        logging.Logger
}

// New builds a Categorizer. categories may be nil to use the compiled-in
// keyword table; gen may be nil to disable the AI path.
func New(categories []CategoryConfig, gen TextGenerator, log logging.Logger) *Categorizer {
	if categories == nil {
		categories = DefaultKeywords()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Categorizer{categories: categories, gen: gen, log: log}
}

// Categorize classifies one transaction. When useAI is set and a backend
// is configured the Gemini path is tried first; any failure there is
// logged and the keyword result is returned instead, so the caller never
// observes an AI error.
func (c *Categorizer) Categorize(ctx context.Context, description string, amount decimal.Decimal, useAI bool) models.CategorizationResult {
	if amount.IsPositive() {
		return models.CategorizationResult{
			Category:   models.CategoryIncome,
			Confidence: 1.0,
			Method:     models.MethodKeywords,
		}
	}

	if useAI && c.gen != nil {
		res, err := c.categorizeWithGemini(ctx, description)
		if err == nil {
			return res
		}
		c.log.WithError(err).WithField("description", description).
			Warn("ai categorization failed, falling back to keywords")
	}

	return c.categorizeByKeywords(description)
}

// categorizeByKeywords matches the description against the keyword table.
// Confidence scales with the number of matched keywords in the winning
// category and never drops below the 0.5 floor; a miss is not an error,
// it is the default category at floor confidence.
func (c *Categorizer) categorizeByKeywords(description string) models.CategorizationResult {
	name, hits := matchKeywords(c.categories, description)
	if name == "" {
		return models.CategorizationResult{
			Category:   models.CategoryOther,
			Confidence: 0.5,
			Method:     models.MethodKeywords,
		}
	}
	return models.CategorizationResult{
		Category:   name,
		Confidence: math.Min(0.5+0.15*float64(hits), 0.9),
		Method:     models.MethodKeywords,
	}
}

// geminiConfidence is a fixed trust constant for backend answers, not a
// computed value.
const geminiConfidence = 0.9

func (c *Categorizer) categorizeWithGemini(ctx context.Context, description string) (models.CategorizationResult, error) {
	prompt := fmt.Sprintf(`Ты помощник для категоризации банковских транзакций.
Твоя задача - определить категорию транзакции на основе описания.

Доступные категории: %s.

Описание транзакции: "%s"

Верни ТОЛЬКО название категории, без дополнительных объяснений.`,
		strings.Join(models.AllCategories, ", "), description)

	reply, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return models.CategorizationResult{}, err
	}

	category := strings.TrimSpace(reply)
	if !models.IsValidCategory(category) {
		c.log.WithField("reply", category).Debug("gemini returned unknown label, using default")
		category = models.CategoryOther
	}

	return models.CategorizationResult{
		Category:   category,
		Confidence: geminiConfidence,
		Method:     models.MethodGemini,
	}, nil
}
