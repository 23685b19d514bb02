// Package extract handles the statement extraction command.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"raj/stmt-extract/cmd/root"
	"raj/stmt-extract/internal/batch"
	"raj/stmt-extract/internal/common"
	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/pdftext"
	"raj/stmt-extract/internal/statement"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract <statement.pdf> [statement.pdf...]",
	Short: "Extract transactions from one or more statement PDFs",
	Long: `Extract parses each statement PDF into card metadata and transactions,
merges the results, removes duplicates across statements, categorizes
every transaction, and writes the combined list as CSV or YAML.`,
	Args: cobra.MinimumNArgs(1),
	Run:  extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	docs := make([]statement.Document, 0, len(args))
	for _, path := range args {
		pages, err := pdftext.ExtractPages(path)
		if err != nil {
			root.Log.WithError(err).Error("skipping unreadable document",
				logging.Field{Key: logging.FieldFile, Value: path})
			continue
		}
		docs = append(docs, statement.Document{
			Name:  filepath.Base(path),
			Pages: pages,
		})
	}
	if len(docs) == 0 {
		root.Log.Fatal("no readable documents")
	}

	results := batch.ParseAll(context.Background(), docs, root.SharedFlags.Workers)
	summary := batch.Aggregate(results)

	for _, card := range summary.Cards {
		root.Log.Info("statement parsed",
			logging.Field{Key: logging.FieldCard, Value: card.Label()})
	}
	root.Log.Info("extraction complete",
		logging.Field{Key: logging.FieldCount, Value: len(summary.Transactions)},
		logging.Field{Key: "duplicates_removed", Value: summary.DuplicatesRemoved})

	output := root.SharedFlags.Output
	if output == "" {
		output = filepath.Join(root.Cfg.Output.Directory, defaultOutput(root.SharedFlags.Format))
	}

	var err error
	if strings.EqualFold(root.SharedFlags.Format, "yaml") {
		err = common.WriteSummaryToYAML(summary.Cards, summary.Transactions, summary.DuplicatesRemoved, output)
	} else {
		err = common.WriteTransactionsToCSV(summary.Transactions, output)
	}
	if err != nil {
		root.Log.WithError(err).Fatal("failed to write output")
	}
}

func defaultOutput(format string) string {
	if strings.EqualFold(format, "yaml") {
		return "transactions.yaml"
	}
	return "transactions.csv"
}
