// Package common provides the shared CSV output used by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"alebedev/statement-parser/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteTransactionsCSV writes categorized transactions to w with the given
// delimiter. Column order follows the struct tags on CategorizedTransaction.
func WriteTransactionsCSV(transactions []models.CategorizedTransaction, w io.Writer, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("write transactions csv: %w", err)
	}
	return nil
}

// WriteTransactionsCSVFile writes categorized transactions to a file path,
// creating or truncating it.
func WriteTransactionsCSVFile(transactions []models.CategorizedTransaction, path string, delimiter rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	return WriteTransactionsCSV(transactions, f, delimiter)
}
