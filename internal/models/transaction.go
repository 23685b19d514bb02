package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized statement line. Amounts follow the
// canonical sign convention: expenses negative, income/payments/credits
// positive, regardless of how the issuer printed them.
type Transaction struct {
	Date            time.Time       `json:"date" yaml:"date"`
	Description     string          `json:"description" yaml:"description"`
	Amount          decimal.Decimal `json:"amount" yaml:"amount"`
	SourceCardLast4 string          `json:"source_card_last4" yaml:"source_card_last4"`
	Category        string          `json:"category" yaml:"category"`
}

// IsExpense reports whether the transaction is an outflow.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// DedupeKey is the identity used to drop duplicates across documents.
func (t *Transaction) DedupeKey() string {
	return strings.Join([]string{
		t.Date.Format("2006-01-02"),
		t.Description,
		t.Amount.StringFixed(2),
		t.SourceCardLast4,
	}, "|")
}

// AppendDetail extends the description with a continuation line.
func (t *Transaction) AppendDetail(detail string) {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return
	}
	t.Description = t.Description + " - " + detail
}
