package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeCtx returns a context as if a transaction section had been
// entered with the statement year already established.
func activeCtx(year string) *parseContext {
	ctx := newParseContext()
	ctx.inTransactions = true
	ctx.currentYear = year
	return ctx
}

func parseLine(ctx *parseContext, line string) {
	parseTransactionLine(ctx, "test.pdf", 1, line)
}

func TestGrammarLines(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantDate    time.Time
		wantDesc    string
		wantAmount  string
	}{
		{
			name:       "synchrony purchase with reference number",
			line:       "10/28 70556 STORE 0678 CUMMING GA $19.98",
			wantDate:   time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
			wantDesc:   "CUMMING",
			wantAmount: "-19.98",
		},
		{
			name:       "synchrony payment keeps positive sign",
			line:       "10/15 PAYMENT - THANK YOU $100.00",
			wantDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			wantDesc:   "PAYMENT - THANK YOU",
			wantAmount: "100",
		},
		{
			name:       "dcu withdrawal keeps printed sign and drops date stamp",
			line:       "OCT02 EFT ACH AMEX EPAYMENT ACH PMT 251002 Raj DCU -402.53 9,278.35",
			wantDate:   time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
			wantDesc:   "EFT ACH AMEX EPAYMENT ACH PMT Raj DCU",
			wantAmount: "-402.53",
		},
		{
			name:       "barclays purchase with miles column",
			line:       "Nov 10 Nov 12 HOBBY-LOBBY #0231 CUMMING GA 4 $4.27",
			wantDate:   time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
			wantDesc:   "HOBBY-LOBBY #0231 CUMMING GA",
			wantAmount: "-4.27",
		},
		{
			name:       "capital one shaped purchase",
			line:       "Oct 2 Oct 4 ETIHAD AIRWAYSMUMBAIMAH $925.81",
			wantDate:   time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
			wantDesc:   "ETIHAD AIRWAYSMUMBAIMAH",
			wantAmount: "-925.81",
		},
		{
			name:       "amex charge with explicit year is negated",
			line:       "10/28/25 GOOGLE *YOUTUBEPREMIUM G.CO/HELPPAY# CA $22.99",
			wantDate:   time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
			wantDesc:   "GOOGLE *YOUTUBEPREMIUM G.CO/HELPPAY# CA",
			wantAmount: "-22.99",
		},
		{
			name:       "chase single digit month passes amount through",
			line:       "9/5 AMAZON MKTPL 12.34",
			wantDate:   time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
			wantDesc:   "AMAZON MKTPL",
			wantAmount: "12.34",
		},
		{
			name:       "discover payment stays negative",
			line:       "10/13 INTERNET PAYMENT - THANK YOU -693.62",
			wantDate:   time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			wantDesc:   "INTERNET PAYMENT - THANK YOU",
			wantAmount: "-693.62",
		},
		{
			name:       "dollar amount purchase strips nothing extra",
			line:       "10/13 PAYPAL *WALMART COM 888-221-1161 Supermarkets $42.76",
			wantDate:   time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			wantDesc:   "PAYPAL *WALMART COM 888-221-1161 Supermarkets",
			wantAmount: "-42.76",
		},
		{
			name:       "apple purchase with daily cash column",
			line:       "10/13/2025 APPLE.COM/BILL 3% $0.68 $22.99",
			wantDate:   time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			wantDesc:   "APPLE.COM/BILL",
			wantAmount: "-22.99",
		},
		{
			name:       "apple payment already negative",
			line:       "10/20/2025 ACH Deposit -$150.00",
			wantDate:   time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
			wantDesc:   "ACH Deposit",
			wantAmount: "-150",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := activeCtx("2025")
			parseLine(ctx, tc.line)

			require.Len(t, ctx.transactions, 1)
			tx := ctx.transactions[0]
			assert.True(t, tc.wantDate.Equal(tx.Date), "date %s", tx.Date)
			assert.Equal(t, tc.wantDesc, tx.Description)
			assert.Equal(t, tc.wantAmount, tx.Amount.String())
		})
	}
}

func TestGrammarSkipLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"synchrony total row", "10/01 Total Purchases $50.00"},
		{"synchrony invoice row", "10/01 Invoice Number 12345 $0.00"},
		{"dcu new balance row", "OCT31 NEW BALANCE 100.00 1,234.56"},
		{"dcu dividend row", "OCT31 DIVIDEND 0.05 1,234.61"},
		{"barclays period total", "Nov 10 Nov 12 Total for this period $4.27"},
		{"amex summary row", "10/28/25 Total New Charges $22.99"},
		{"chase order number row", "9/5 Order Number 114-5556667-7788990 12.34"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := activeCtx("2025")
			parseLine(ctx, tc.line)
			assert.Empty(t, ctx.transactions)
		})
	}
}

func TestGrammarDroppedLinesDoNotAbort(t *testing.T) {
	ctx := activeCtx("2025")

	parseLine(ctx, "13/45 SOME MERCHANT GA $5.00")
	assert.Empty(t, ctx.transactions, "impossible date drops the line")

	parseLine(ctx, "10/28 ANOTHER MERCHANT $10.00")
	require.Len(t, ctx.transactions, 1)
	assert.Equal(t, "ANOTHER MERCHANT", ctx.transactions[0].Description)
}

func TestContinuationLines(t *testing.T) {
	ctx := activeCtx("2025")

	parseLine(ctx, "10/28 70556 STORE 0678 CUMMING GA $19.98")
	require.Len(t, ctx.transactions, 1)

	parseLine(ctx, "-, - LOWES #01234")
	require.Len(t, ctx.transactions, 1)
	assert.Equal(t, "CUMMING - LOWES #01234", ctx.transactions[0].Description)

	// A second detail line keeps extending the same transaction.
	parseLine(ctx, "CARD ENDING")
	assert.Equal(t, "CUMMING - LOWES #01234 - CARD ENDING", ctx.transactions[0].Description)
}

func TestContinuationEndsOnNewTransaction(t *testing.T) {
	ctx := activeCtx("2025")

	parseLine(ctx, "10/28 FIRST MERCHANT GA $19.98")
	parseLine(ctx, "10/29 SECOND MERCHANT GA $5.00")
	require.Len(t, ctx.transactions, 2)

	parseLine(ctx, "EXTRA DETAIL")
	assert.Equal(t, "FIRST MERCHANT", ctx.transactions[0].Description)
	assert.Equal(t, "SECOND MERCHANT - EXTRA DETAIL", ctx.transactions[1].Description)
}

func TestContinuationEndsOnAmountBearingLine(t *testing.T) {
	ctx := activeCtx("2025")

	parseLine(ctx, "10/28 FIRST MERCHANT GA $19.98")
	// A line carrying its own amount is a malformed transaction, not
	// detail text.
	parseLine(ctx, "MYSTERY ROW $3.00 EXTRA")
	parseLine(ctx, "ORPHAN DETAIL")

	require.Len(t, ctx.transactions, 1)
	assert.Equal(t, "FIRST MERCHANT", ctx.transactions[0].Description)
}

func TestContinuationOnlyForStoreCardFamily(t *testing.T) {
	ctx := activeCtx("2025")

	parseLine(ctx, "10/28/25 GOOGLE *YOUTUBEPREMIUM CA $22.99")
	require.Len(t, ctx.transactions, 1)

	parseLine(ctx, "SOME DETAIL TEXT")
	assert.Equal(t, "GOOGLE *YOUTUBEPREMIUM CA", ctx.transactions[0].Description)
}

func TestYearInferenceAppliesToGrammarDates(t *testing.T) {
	ctx := activeCtx("2024")
	parseLine(ctx, "12/31 LATE DECEMBER GA $10.00")
	require.Len(t, ctx.transactions, 1)
	assert.Equal(t, 2024, ctx.transactions[0].Date.Year())

	fallback := activeCtx("")
	parseLine(fallback, "12/31 LATE DECEMBER GA $10.00")
	require.Len(t, fallback.transactions, 1)
	assert.Equal(t, 2025, fallback.transactions[0].Date.Year())
}
