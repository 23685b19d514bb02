// Package parsererror defines the typed errors produced by the statement
// extraction engine. Line-level errors are consumed by the per-line
// dispatch loop; only document-level conditions reach the caller.
package parsererror

import (
	"errors"
	"fmt"
)

// DateParseError reports a date token that could not be resolved to a
// calendar date. The offending candidate line is dropped, not propagated.
type DateParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q with layout %q: %v", e.Value, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// AmountParseError reports an amount token that could not be converted to
// a decimal value.
type AmountParseError struct {
	Value string
	Err   error
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("failed to parse amount %q: %v", e.Value, e.Err)
}

func (e *AmountParseError) Unwrap() error {
	return e.Err
}

// NoIssuerDetectedError means no issuer-identifying line matched anywhere
// in the document. The CardInfo record stays at its defaults.
type NoIssuerDetectedError struct {
	Document string
}

func (e *NoIssuerDetectedError) Error() string {
	return fmt.Sprintf("no issuer detected in document %q; card info left at defaults", e.Document)
}

// NoTransactionsError means the document parse finished without a single
// extracted transaction. Callers treat this differently from a
// legitimately empty result so they can surface the raw input.
type NoTransactionsError struct {
	Document string
	Pages    int
}

func (e *NoTransactionsError) Error() string {
	return fmt.Sprintf("no transactions extracted from document %q (%d pages)", e.Document, e.Pages)
}

// IsNoTransactions reports whether err is a NoTransactionsError.
func IsNoTransactions(err error) bool {
	var nte *NoTransactionsError
	return errors.As(err, &nte)
}
