// Package categorize implements the categorize subcommand: classify a
// single transaction description and amount.
package categorize

import (
	"fmt"

	"alebedev/statement-parser/cmd/root"
	"alebedev/statement-parser/internal/categorizer"
	"alebedev/statement-parser/internal/gemini"
	"alebedev/statement-parser/internal/moneyutils"

	"github.com/spf13/cobra"
)

var (
	description string
	amountStr   string

	// Cmd is the categorize command.
	Cmd = &cobra.Command{
		Use:   "categorize",
		Short: "Categorize a single transaction",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	Cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "transaction amount, negative for expenses")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("amount")
}

func run(cmd *cobra.Command, args []string) error {
	amount, err := moneyutils.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	var gen categorizer.TextGenerator
	if root.Cfg.AIAvailable() {
		client, cerr := gemini.NewClient(cmd.Context(), root.Cfg.AI.APIKey, root.Cfg.AI.Model)
		if cerr != nil {
			return cerr
		}
		defer client.Close()
		gen = client
	}

	keywords := categorizer.DefaultKeywords()
	if root.Cfg.Categories.File != "" {
		if keywords, err = categorizer.LoadKeywordConfig(root.Cfg.Categories.File); err != nil {
			return err
		}
	}

	cat := categorizer.New(keywords, gen, root.Log)
	useAI := root.UseAI && root.Cfg.AIAvailable()
	res := cat.Categorize(cmd.Context(), description, amount, useAI)

	fmt.Printf("category:   %s\nconfidence: %.2f\nmethod:     %s\n", res.Category, res.Confidence, res.Method)
	return nil
}
