package statement

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"raj/stmt-extract/internal/dateutils"
	"raj/stmt-extract/internal/models"
)

// errSkipLine marks a structurally valid line whose description hits an
// issuer skip keyword (running totals, repeated headers, currency
// annotations, cardholder markers). The candidate is discarded silently.
var errSkipLine = errors.New("line matches skip keyword")

// lineGrammar is one issuer's transaction-line format. Grammars are tried
// in a fixed order and the first structural match wins; a grammar with an
// exclude pattern defers to a later grammar when both match the same
// line. Build turns the captures into a canonical transaction or reports
// why the candidate must be dropped.
type lineGrammar struct {
	name string
	re   *regexp.Regexp
	// exclude defers this grammar when it also matches the line.
	exclude *regexp.Regexp
	// continuation marks the grammar family whose transactions accept
	// trailing detail lines.
	continuation bool
	build        func(ctx *parseContext, m []string) (models.Transaction, error)
}

var (
	synchronyLineRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2})\s+(\d+\s+)?(.+?)\s+(-?\$[\d,]+\.\d{2})\s*$`)
	dcuLineRe       = regexp.MustCompile(`^([A-Z]{3})(\d{2})\s+(.+?)\s+(-?[\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)
	barclaysLineRe  = regexp.MustCompile(`^([A-Z][a-z]{2})\s+(\d{1,2})\s+([A-Z][a-z]{2})\s+(\d{1,2})\s+(.+?)\s+(\d+\s+)?(-?\$[\d,]+\.\d{2})\s*$`)
	capOneLineRe    = regexp.MustCompile(`^([A-Z][a-z]{2})\s+(\d{1,2})\s+([A-Z][a-z]{2})\s+(\d{1,2})\s+(.+?)\s+(-?\$[\d,]+\.\d{2})\s*$`)
	amexLineRe      = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`)
	chaseLineRe     = regexp.MustCompile(`^(\d{1,2}/\d{1,2})\s+(.+?)\s+(-?\d+\.\d{2})$`)
	discoverLineRe  = regexp.MustCompile(`^(\d{2}/\d{2})\s+(.+?)\s+(-?\$?[\d,]+\.\d{2})$`)
	appleLineRe     = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+\d+%\s+\$?[\d.]+\s+(-?\$?[\d,]+\.\d{2})$`)
	applePayLineRe  = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(-\$?[\d,]+\.\d{2})$`)
)

// Description scrubbing patterns shared across grammars.
var (
	phoneNumberRe   = regexp.MustCompile(`\s+\d{3}-\d{3}-\d{4}`)
	stateUSASuffixRe = regexp.MustCompile(`\s+[A-Z]{2}\s+USA$`)
	storeNumberRe   = regexp.MustCompile(`STORE\s+\d+`)
	stateSuffixRe   = regexp.MustCompile(`\s+[A-Z]{2}$`)
	dashArtifactRe  = regexp.MustCompile(`^-,\s*-\s*`)
	dateStampRe     = regexp.MustCompile(`\s+\d{6}\s+`)
	longRefRe       = regexp.MustCompile(`\s+\d{5,}`)
	zipStateUSARe   = regexp.MustCompile(`\s+\d{5,}\s+[A-Z]{2}\s+USA$`)
	usStateSuffixRe = regexp.MustCompile(`\s+(CA|NY|TX|FL|GA|IL|PA|OH|NC|MI|NJ|VA|WA|AZ|MA|TN|IN|MO|MD|WI|CO|MN|SC|AL|LA|KY|OR|OK|CT|UT|IA|NV|AR|MS|KS|NM|NE|WV|ID|HI|NH|ME|MT|RI|DE|SD|ND|AK|VT|WY)\s*$`)
)

// negatePurchase flips a positive source amount to the canonical negative
// expense sign unless the description marks it as a payment or credit.
func negatePurchase(amount decimal.Decimal, description string, creditMarkers ...string) decimal.Decimal {
	if !amount.IsPositive() {
		return amount
	}
	upper := strings.ToUpper(description)
	for _, marker := range creditMarkers {
		if strings.Contains(upper, marker) {
			return amount
		}
	}
	return amount.Neg()
}

// containsAnyKeyword is the issuer skip test: a plain substring check,
// case preserved. A merchant literally named "Total Wine" is discarded
// by a "Total" skip keyword.
func containsAnyKeyword(description string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}
	return false
}

var lineGrammars = []lineGrammar{
	{
		// Synchrony store cards: "10/28 70556 STORE 0678 CUMMING GA $19.98"
		// (date, optional reference number, description, amount).
		name:         "synchrony",
		re:           synchronyLineRe,
		continuation: true,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveMonthDay(m[1], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[3])
			amount, err := models.ParseAmount(m[4])
			if err != nil {
				return models.Transaction{}, err
			}
			// Purchases print positive; payments and credits negative.
			amount = negatePurchase(amount, description, "PAYMENT", "CREDIT", "THANK YOU")

			if containsAnyKeyword(description, []string{
				"Payments", "Other Credits", "Purchases and Other Debits", "Total", "Invoice Number",
			}) {
				return models.Transaction{}, errSkipLine
			}

			description = storeNumberRe.ReplaceAllString(description, "")
			description = stateSuffixRe.ReplaceAllString(description, "")
			description = dashArtifactRe.ReplaceAllString(description, "")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// DCU share accounts:
		// "OCT02 EFT ACH AMEX EPAYMENT ACH PMT Raj DCU -402.53 9,278.35"
		// (month-abbrev+day, description, signed amount, running balance).
		name: "dcu",
		re:   dcuLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveAbbrevDay(m[1], m[2], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[3])
			// Withdrawals already print negative, deposits positive.
			amount, err := models.ParseAmount(m[4])
			if err != nil {
				return models.Transaction{}, err
			}

			if containsAnyKeyword(strings.ToUpper(description), []string{
				"PREVIOUS BALANCE", "NEW BALANCE", "DIVIDEND", "ANNUAL PERCENTAGE",
			}) {
				return models.Transaction{}, errSkipLine
			}

			description = dateStampRe.ReplaceAllString(description, " ")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// Barclays: "Nov 10 Nov 12 HOBBY-LOBBY #0231 CUMMING GA 4 $4.27"
		// (trans date, post date, description, optional miles, amount).
		name: "barclays",
		re:   barclaysLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveWordMonthDay(m[1], m[2], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[5])
			amount, err := models.ParseAmount(m[7])
			if err != nil {
				return models.Transaction{}, err
			}
			amount = negatePurchase(amount, description, "PAYMENT", "CREDIT")

			if containsAnyKeyword(description, []string{
				"Total", "card ending", "for this period", "No Payment", "No fees", "No interest",
			}) {
				return models.Transaction{}, errSkipLine
			}

			description = phoneNumberRe.ReplaceAllString(description, "")
			description = stateUSASuffixRe.ReplaceAllString(description, "")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// Capital One: "Oct 2 Oct 4 ETIHAD AIRWAYSMUMBAIMAH $925.81"
		// (trans date, post date, description, amount).
		name: "capitalone",
		re:   capOneLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveWordMonthDay(m[1], m[2], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[5])
			amount, err := models.ParseAmount(m[6])
			if err != nil {
				return models.Transaction{}, err
			}
			amount = negatePurchase(amount, description, "PAYMENT", "CREDIT")

			// "#" drops cardholder-name rows; the currency codes drop
			// exchange-rate annotations under foreign transactions.
			if containsAnyKeyword(description, []string{
				"#", "Total", "Exchange Rate", "INR", "USD", "EUR", "GBP", "CAD", "AUD", "JPY",
			}) {
				return models.Transaction{}, errSkipLine
			}

			description = phoneNumberRe.ReplaceAllString(description, "")
			description = stateUSASuffixRe.ReplaceAllString(description, "")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// Amex: "10/28/25 GOOGLE *YOUTUBEPREMIUM G.CO/HELPPAY# CA $22.99"
		// with an explicit two-digit year.
		name: "amex",
		re:   amexLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1])
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[2])
			amount, err := models.ParseAmount(m[3])
			if err != nil {
				return models.Transaction{}, err
			}
			// Amex prints every charge positive; payments arrive negative.
			if amount.IsPositive() {
				amount = amount.Neg()
			}

			if containsAnyKeyword(description, []string{"Total", "Summary", "Detail", "Card Ending"}) {
				return models.Transaction{}, errSkipLine
			}

			description = phoneNumberRe.ReplaceAllString(description, "")
			description = longRefRe.ReplaceAllString(description, "")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// Chase: "10/5 AMAZON MKTPL*XY12Z -23.45", bare signed amounts in
		// the canonical convention already. Defers to the Discover grammar
		// when both match (two-digit month/day with an optional dollar
		// sign makes the formats near-overlapping).
		name:    "chase",
		re:      chaseLineRe,
		exclude: discoverLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveMonthDay(m[1], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[2])
			amount, err := models.ParseAmount(m[3])
			if err != nil {
				return models.Transaction{}, err
			}
			if strings.Contains(description, "Order Number") {
				return models.Transaction{}, errSkipLine
			}
			return models.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
			}, nil
		},
	},
	{
		// Discover: "10/13 PAYPAL *WALMART COM 888-221-1161 Supermarkets $42.76".
		name: "discover",
		re:   discoverLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.ResolveMonthDay(m[1], ctx.year())
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[2])
			amount, err := models.ParseAmount(m[3])
			if err != nil {
				return models.Transaction{}, err
			}
			amount = negatePurchase(amount, description, "PAYMENT", "THANK YOU")

			description = phoneNumberRe.ReplaceAllString(description, "")
			description = longRefRe.ReplaceAllString(description, "")
			description = usStateSuffixRe.ReplaceAllString(description, "")
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(description),
				Amount:      amount,
			}, nil
		},
	},
	{
		// Apple Card purchases carry a Daily Cash column:
		// "10/13/2025 APPLE.COM/BILL 3% $0.68 $22.99".
		name: "apple",
		re:   appleLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.Parse(dateutils.LayoutUS, m[1])
			if err != nil {
				return models.Transaction{}, err
			}
			description := strings.TrimSpace(m[2])
			amount, err := models.ParseAmount(m[3])
			if err != nil {
				return models.Transaction{}, err
			}
			// Charges print positive; canonical expenses are negative.
			amount = amount.Abs().Neg()

			description = zipStateUSARe.ReplaceAllString(description, "")
			description = phoneNumberRe.ReplaceAllString(description, "")
			description = strings.TrimSpace(description)
			if description == "" {
				return models.Transaction{}, errSkipLine
			}
			return models.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
			}, nil
		},
	},
	{
		// Apple Card payments: "10/20/2025 ACH Deposit -$150.00".
		name: "applepayment",
		re:   applePayLineRe,
		build: func(ctx *parseContext, m []string) (models.Transaction, error) {
			date, err := dateutils.Parse(dateutils.LayoutUS, m[1])
			if err != nil {
				return models.Transaction{}, err
			}
			amount, err := models.ParseAmount(m[3])
			if err != nil {
				return models.Transaction{}, err
			}
			return models.Transaction{
				Date:        date,
				Description: strings.TrimSpace(m[2]),
				Amount:      amount,
			}, nil
		},
	},
}
