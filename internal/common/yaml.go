package common

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
)

// summaryDocument is the YAML export shape of an aggregated batch.
type summaryDocument struct {
	Cards             []models.CardInfo `yaml:"cards"`
	DuplicatesRemoved int               `yaml:"duplicates_removed"`
	Transactions      []yamlTransaction `yaml:"transactions"`
}

type yamlTransaction struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Card        string `yaml:"card"`
	Category    string `yaml:"category"`
}

// WriteSummaryToYAML writes the aggregated cards and transactions to
// yamlFile, creating parent directories as needed.
func WriteSummaryToYAML(cards []models.CardInfo, transactions []models.Transaction, duplicatesRemoved int, yamlFile string) error {
	doc := summaryDocument{
		Cards:             cards,
		DuplicatesRemoved: duplicatesRemoved,
		Transactions:      make([]yamlTransaction, 0, len(transactions)),
	}
	for i := range transactions {
		tx := &transactions[i]
		doc.Transactions = append(doc.Transactions, yamlTransaction{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Card:        tx.SourceCardLast4,
			Category:    tx.Category,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("error marshalling summary to YAML: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(yamlFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(yamlFile, data, 0600); err != nil {
		return fmt.Errorf("error writing YAML file: %w", err)
	}

	log.Info("wrote summary to YAML",
		logging.Field{Key: logging.FieldFile, Value: yamlFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
