// Package models provides the data structures shared by the extraction
// engine, the aggregator and the output layer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardInfo is the structured metadata of one statement document. It is
// created empty when a document parse starts, mutated field by field while
// scanning, and treated as immutable once the scan ends. Every field
// follows a first-match-wins policy: once set to a non-default value it is
// never overwritten, with the single exception of the "Payment Due By"
// override handled by the detector.
type CardInfo struct {
	CardName       string          `json:"card_name" yaml:"card_name"`
	LastFourDigits string          `json:"last_4_digits" yaml:"last_4_digits"`
	StatementDate  *time.Time      `json:"statement_date" yaml:"statement_date"`
	DueDate        *time.Time      `json:"due_date" yaml:"due_date"`
	NewBalance     decimal.Decimal `json:"new_balance" yaml:"new_balance"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" yaml:"minimum_payment"`
	CreditLimit    decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`
	AvailableCred  decimal.Decimal `json:"available_credit" yaml:"available_credit"`
}

// NewCardInfo returns a CardInfo at its documented defaults.
func NewCardInfo() CardInfo {
	return CardInfo{
		CardName:       CardNameUnknown,
		LastFourDigits: Last4Placeholder,
	}
}

// Unknown reports whether no issuer detection rule ever matched.
func (c *CardInfo) Unknown() bool {
	return c.CardName == CardNameUnknown
}

// Label renders the card as "<name> (...<last4>)" for display and logs.
func (c *CardInfo) Label() string {
	return c.CardName + " (..." + c.LastFourDigits + ")"
}

// Utilization returns NewBalance/CreditLimit as a percentage, or zero when
// the limit was never extracted.
func (c *CardInfo) Utilization() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	return c.NewBalance.Div(c.CreditLimit).Mul(decimal.NewFromInt(100))
}
