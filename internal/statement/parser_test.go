package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raj/stmt-extract/internal/models"
	"raj/stmt-extract/internal/parsererror"
)

func TestParseStoreCardDocument(t *testing.T) {
	doc := Document{
		Name: "lowes-oct.pdf",
		Pages: []Page{
			{
				"SYNCHRONY BANK / LOWE'S ADVANTAGE",
				"Account Number ending in 698 0",
				"Statement period Sep 21, 2025 - Oct 20, 2025",
				"New Balance: $325.50",
				"Payment Due Date: 11/20/25",
				"PAYMENTS AND OTHER CREDITS",
				"10/15 PAYMENT - THANK YOU $100.00",
				"10/28 70556 STORE 0678 CUMMING GA $19.98",
			},
			{
				// Section state survives the page break.
				"10/02 12345 STORE 0678 ATLANTA GA $7.50",
				"Totals Year-to-Date",
				"10/03 AFTER THE TOTALS ROW GA $9.99",
			},
		},
	}

	card, txs, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, models.CardLowesSynchrony, card.CardName)
	assert.Equal(t, "6980", card.LastFourDigits)
	assert.Equal(t, "325.5", card.NewBalance.String())
	require.NotNil(t, card.DueDate)
	assert.Equal(t, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), *card.DueDate)
	require.NotNil(t, card.StatementDate)
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), *card.StatementDate)

	// The line after the year-to-date footer is outside the section.
	require.Len(t, txs, 3)

	// Chronologically sorted even though the listing was not.
	assert.Equal(t, time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, "ATLANTA", txs[0].Description)
	assert.Equal(t, "PAYMENT - THANK YOU", txs[1].Description)
	assert.Equal(t, "100", txs[1].Amount.String())
	assert.Equal(t, "CUMMING", txs[2].Description)
	assert.Equal(t, "-19.98", txs[2].Amount.String())
}

func TestParseYearInferenceFromStatementPeriod(t *testing.T) {
	doc := Document{
		Name: "dec.pdf",
		Pages: []Page{{
			"SYNCHRONY BANK",
			"Statement period December 2024",
			"PAYMENTS AND OTHER CREDITS",
			"12/31 YEAR END MERCHANT GA $10.00",
		}},
	}

	_, txs, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 2024, txs[0].Date.Year())
}

func TestParseNoTransactions(t *testing.T) {
	doc := Document{
		Name: "empty.pdf",
		Pages: []Page{{
			"SYNCHRONY BANK",
			"New Balance: $0.00",
		}},
	}

	card, txs, err := Parse(doc)
	assert.Empty(t, txs)
	require.Error(t, err)
	assert.True(t, parsererror.IsNoTransactions(err))
	assert.Equal(t, models.CardSynchrony, card.CardName)
}

func TestParseNoIssuer(t *testing.T) {
	doc := Document{
		Name:  "mystery.pdf",
		Pages: []Page{{"nothing recognizable here"}},
	}

	card, txs, err := Parse(doc)
	assert.Empty(t, txs)
	require.Error(t, err)

	var noIssuer *parsererror.NoIssuerDetectedError
	require.ErrorAs(t, err, &noIssuer)
	assert.Equal(t, "mystery.pdf", noIssuer.Document)
	assert.Equal(t, models.CardNameUnknown, card.CardName)
}

func TestParseAppleFallbackLast4(t *testing.T) {
	doc := Document{
		Name: "apple.pdf",
		Pages: []Page{{
			"Apple Card Statement",
			"Transactions by date",
			"10/13/2025 APPLE.COM/BILL 3% $0.68 $22.99",
		}},
	}

	card, txs, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.CardApple, card.CardName)
	assert.Equal(t, models.Last4AppleFallback, card.LastFourDigits)
}

func TestParseAppleDueDateOverride(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	doc := Document{
		Name: "apple.pdf",
		Pages: []Page{{
			"Apple Card Statement",
			// An unrelated due date seen first would normally win.
			"Payment Due Date: 11/01/25",
			"Payment Due By Nov 30, 2025",
		}},
	}

	card, _, err := Parse(doc)
	require.Error(t, err) // no transactions, metadata still extracted
	require.NotNil(t, card.DueDate)
	assert.Equal(t, time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), *card.DueDate)
}

func TestParseAppleDueDateOverrideRejectsStaleDates(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	doc := Document{
		Name: "apple.pdf",
		Pages: []Page{{
			"Apple Card Statement",
			"Payment Due Date: 11/01/25",
			// More than three days in the past, an "as of" artifact.
			"Payment Due By Oct 15, 2025",
		}},
	}

	card, _, _ := Parse(doc)
	require.NotNil(t, card.DueDate)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), *card.DueDate)
}

func TestParseDocumentsAreIndependent(t *testing.T) {
	first := Document{
		Name: "a.pdf",
		Pages: []Page{{
			"SYNCHRONY BANK",
			"Statement period December 2024",
			"PAYMENTS AND OTHER CREDITS",
			"12/01 FIRST DOC GA $1.00",
		}},
	}
	second := Document{
		Name: "b.pdf",
		Pages: []Page{{
			"SYNCHRONY BANK",
			"PAYMENTS AND OTHER CREDITS",
			"12/01 SECOND DOC GA $1.00",
		}},
	}

	_, txs1, err := Parse(first)
	require.NoError(t, err)
	_, txs2, err := Parse(second)
	require.NoError(t, err)

	// The first document's inferred year must not leak into the second,
	// which falls back to the default.
	assert.Equal(t, 2024, txs1[0].Date.Year())
	assert.Equal(t, 2025, txs2[0].Date.Year())
}
