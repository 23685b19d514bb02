// Package common holds the export surfaces shared by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the output CSV field separator.
const Delimiter = ','

// csvRow is the flat export shape of one transaction. Dates and amounts
// are rendered to fixed text so the file round-trips through spreadsheet
// tools without locale surprises.
type csvRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Card        string `csv:"Card"`
	Category    string `csv:"Category"`
}

// WriteTransactionsToCSV writes the transactions to csvFile, creating
// parent directories as needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.Info("writing transactions to CSV",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close CSV file")
		}
	}()

	rows := make([]csvRow, 0, len(transactions))
	for i := range transactions {
		rows = append(rows, toCSVRow(&transactions[i]))
	}

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

func toCSVRow(tx *models.Transaction) csvRow {
	return csvRow{
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Card:        tx.SourceCardLast4,
		Category:    tx.Category,
	}
}
