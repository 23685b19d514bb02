package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raj/stmt-extract/internal/parsererror"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"dollar with thousands", "$1,234.56", "1234.56"},
		{"negative dollar", "-$402.53", "-402.53"},
		{"bare negative", "-402.53", "-402.53"},
		{"plain cents", "19.98", "19.98"},
		{"embedded spaces", "$ 1,234.56", "1234.56"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, amount.String())
		})
	}
}

func TestParseAmountFailures(t *testing.T) {
	for _, token := range []string{"$--", "", "$", "abc", "1.2.3"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseAmount(token)
			require.Error(t, err)

			var amountErr *parsererror.AmountParseError
			require.ErrorAs(t, err, &amountErr)
			assert.Equal(t, token, amountErr.Value)
		})
	}
}
