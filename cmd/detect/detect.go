// Package detect implements the detect subcommand: print which bank's
// grammar matches a statement text file.
package detect

import (
	"fmt"
	"os"

	"alebedev/statement-parser/cmd/root"

	"github.com/spf13/cobra"
)

var (
	inputFile string

	// Cmd is the detect command.
	Cmd = &cobra.Command{
		Use:   "detect",
		Short: "Detect which supported bank produced a statement",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "statement text file")
	_ = Cmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read statement text: %w", err)
	}

	p := root.NewRegistry().Detect(string(data))
	if p == nil {
		return fmt.Errorf("no supported bank detected in %s", inputFile)
	}

	fmt.Println(p.Bank())
	return nil
}
