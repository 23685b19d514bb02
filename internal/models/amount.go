package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"raj/stmt-extract/internal/parsererror"
)

// ParseAmount converts a statement amount token like "$1,234.56" or
// "-402.53" to a decimal. Currency symbols and thousand separators are
// stripped; anything left that is not a number is an AmountParseError.
func ParseAmount(token string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if cleaned == "" {
		return decimal.Zero, &parsererror.AmountParseError{Value: token}
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.AmountParseError{Value: token, Err: err}
	}
	return dec, nil
}
