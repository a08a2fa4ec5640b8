// Package root contains the root command and the shared wiring used by
// every subcommand.
package root

import (
	"context"
	"time"

	"alebedev/statement-parser/internal/aiparser"
	"alebedev/statement-parser/internal/categorizer"
	"alebedev/statement-parser/internal/config"
	"alebedev/statement-parser/internal/gemini"
	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/orchestrator"
	"alebedev/statement-parser/internal/parser"
	"alebedev/statement-parser/internal/sberparser"
	"alebedev/statement-parser/internal/tinkoffparser"
	"alebedev/statement-parser/internal/vtbparser"

	"github.com/spf13/cobra"
)

var (
	// Cfg and Log are populated by PersistentPreRunE before any
	// subcommand runs.
	Cfg *config.Config
	Log logging.Logger

	// UseAI is the persistent --ai flag. It only has effect when a Gemini
	// credential is configured.
	UseAI bool

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "stmt-parse",
		Short: "Extract and categorize transactions from bank statement text",
		Long: `stmt-parse takes OCR or PDF-extracted bank statement text, detects which
bank produced it, extracts the transactions and assigns each a spending
category. Sberbank, Tinkoff and VTB statement layouts are supported.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)

// Init registers the persistent flags.
func Init() {
	Cmd.PersistentFlags().BoolVar(&UseAI, "ai", true, "allow AI-assisted parsing and categorization when a credential is configured")
}

// NewRegistry builds the bank parser registry in detection order.
func NewRegistry() *parser.Registry {
	sberCfg := sberparser.DefaultConfig()
	sberCfg.ForceDebitSign = Cfg.Parsers.Sberbank.ForceDebitSign

	return parser.NewRegistry(
		sberparser.New(sberCfg, Log),
		tinkoffparser.New(Log),
		vtbparser.New(Log),
	)
}

// NewService wires the full pipeline from configuration. The AI parser is
// only constructed when a credential is present; otherwise the service
// runs purely deterministic.
func NewService(ctx context.Context) (*orchestrator.Service, error) {
	var gen categorizer.TextGenerator
	var aiP *aiparser.Parser

	if Cfg.AIAvailable() {
		client, err := gemini.NewClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model)
		if err != nil {
			return nil, err
		}
		gen = client
		aiP = aiparser.New(client, Log)
	}

	keywords := categorizer.DefaultKeywords()
	if Cfg.Categories.File != "" {
		kws, err := categorizer.LoadKeywordConfig(Cfg.Categories.File)
		if err != nil {
			return nil, err
		}
		keywords = kws
	}
	cat := categorizer.New(keywords, gen, Log)

	timeout := time.Duration(Cfg.AI.TimeoutSeconds) * time.Second
	return orchestrator.New(NewRegistry(), aiP, cat, timeout, Log), nil
}
