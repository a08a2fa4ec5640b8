// Package parse implements the parse subcommand: statement text in,
// categorized transactions out as CSV.
package parse

import (
	"errors"
	"fmt"
	"os"

	"alebedev/statement-parser/cmd/root"
	"alebedev/statement-parser/internal/common"
	"alebedev/statement-parser/internal/logging"
	"alebedev/statement-parser/internal/orchestrator"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string

	// Cmd is the parse command.
	Cmd = &cobra.Command{
		Use:   "parse",
		Short: "Parse a statement text file and categorize its transactions",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "statement text file (OCR or PDF extraction output)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file (default stdout)")
	_ = Cmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read statement text: %w", err)
	}

	svc, err := root.NewService(cmd.Context())
	if err != nil {
		return err
	}

	useAI := root.UseAI && root.Cfg.AIAvailable()
	bank, transactions, err := svc.ExtractStatement(cmd.Context(), string(data), useAI)
	if err != nil {
		if errors.Is(err, orchestrator.ErrBankNotDetected) {
			return fmt.Errorf("could not identify the bank for %s; supported: Сбербанк, Тинькофф, ВТБ", inputFile)
		}
		return err
	}

	root.Log.Info("statement extracted",
		logging.Field{Key: "bank", Value: bank},
		logging.Field{Key: "transactions", Value: len(transactions)})

	delimiter := rune(root.Cfg.CSV.Delimiter[0])
	if outputFile == "" {
		return common.WriteTransactionsCSV(transactions, os.Stdout, delimiter)
	}
	return common.WriteTransactionsCSVFile(transactions, outputFile, delimiter)
}
