package batch

import (
	"sort"

	"raj/stmt-extract/internal/categorizer"
	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
)

// Summary is the merged output of a batch: every surviving transaction in
// chronological order, the card record of each document that produced
// transactions, and how many duplicates the merge removed.
type Summary struct {
	Transactions      []models.Transaction
	Cards             []models.CardInfo
	DuplicatesRemoved int
}

// Aggregate concatenates the per-document transaction lists in document
// order, removes duplicates on (date, description, amount, last4)
// keeping the first occurrence, categorizes every survivor, and sorts
// the result chronologically. Documents that errored contribute nothing.
func Aggregate(results []DocumentResult) Summary {
	var summary Summary
	seen := make(map[string]struct{})

	for _, result := range results {
		if result.Err != nil || len(result.Transactions) == 0 {
			continue
		}
		summary.Cards = append(summary.Cards, result.Card)

		for _, tx := range result.Transactions {
			tx.SourceCardLast4 = result.Card.LastFourDigits
			key := tx.DedupeKey()
			if _, dup := seen[key]; dup {
				summary.DuplicatesRemoved++
				continue
			}
			seen[key] = struct{}{}
			tx.Category = categorizer.Categorize(tx.Description)
			summary.Transactions = append(summary.Transactions, tx)
		}
	}

	// Stable so same-day transactions keep document order.
	sort.SliceStable(summary.Transactions, func(a, b int) bool {
		return summary.Transactions[a].Date.Before(summary.Transactions[b].Date)
	})

	if summary.DuplicatesRemoved > 0 {
		log.Info("duplicate transactions removed",
			logging.Field{Key: logging.FieldCount, Value: summary.DuplicatesRemoved})
	}
	return summary
}
