// Package ocr implements the ocr subcommand: recognize statement text on
// an image via Yandex Vision so it can be piped into parse.
package ocr

import (
	"encoding/base64"
	"fmt"
	"os"

	"alebedev/statement-parser/cmd/root"
	"alebedev/statement-parser/internal/ocr"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string

	// Cmd is the ocr command.
	Cmd = &cobra.Command{
		Use:   "ocr",
		Short: "Recognize statement text on an image (JPG/PNG)",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "statement image file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output text file (default stdout)")
	_ = Cmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	client := ocr.NewClient(root.Cfg.OCR.APIKey, root.Cfg.OCR.FolderID, nil, root.Log)
	text, err := client.RecognizeText(cmd.Context(), base64.StdEncoding.EncodeToString(data))
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(outputFile, []byte(text), 0o644)
}
