package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"raj/stmt-extract/internal/dateutils"
	"raj/stmt-extract/internal/models"
)

// timeNow is stubbed in tests of the due-date override guard.
var timeNow = time.Now

// fieldRule extracts one CardInfo field from a line. Rules may peek at
// the following lines of the same page: a few issuers split a header and
// its values across rows. Every field obeys first-match-wins, with the
// single documented exception of the "Payment Due By" override.
type fieldRule func(ctx *parseContext, page Page, i int)

var fieldRules = []fieldRule{
	extractDueDate,
	extractLegacyDueDate,
	extractNewBalance,
	extractMinimumPayment,
	extractCreditLimit,
	extractAvailableCredit,
	extractStatementDate,
	extractAppleBalanceBlock,
	extractAppleDueDateOverride,
	extractDiscoverPaymentBlock,
	extractDiscoverCreditLine,
}

// applyFieldRules runs the whole catalogue against one line.
func applyFieldRules(ctx *parseContext, page Page, i int) {
	for _, rule := range fieldRules {
		rule(ctx, page, i)
	}
}

var (
	mdyFullDateRe  = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)
	wordDateRe     = regexp.MustCompile(`([A-Z][a-z]{2}\s+\d{1,2},\s+\d{4})`)
	mdyShortDateRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2})(\D|$)`)

	dollarCentsRe = regexp.MustCompile(`\$[\d,]+\.\d{2}`)
	bareCentsRe   = regexp.MustCompile(`([\d,]+\.\d{2})`)
	dollarWholeRe = regexp.MustCompile(`\$[\d,]+`)

	creditLimitRe     = regexp.MustCompile(`(?i)Credit Limit\s+\$?([\d,]+(?:\.\d{2})?)`)
	availableCreditRe = regexp.MustCompile(`(?i)Available Credit\s+\$?([\d,]+(?:\.\d{2})?)`)

	openClosRangeRe   = regexp.MustCompile(`\d{2}/\d{2}/\d{2}\s*-\s*(\d{2}/\d{2}/\d{2})`)
	closingDateRe     = regexp.MustCompile(`(\d{2}/\d{2}/\d{2})`)
	wordRangeRe       = regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{1,2},\s+\d{4}\s*-\s*([A-Z][a-z]{2}\s+\d{1,2},\s+\d{4})`)
	slashRangeRe      = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2}\s*-\s*(\d{1,2}/\d{1,2}/\d{2})`)
	dashRangeRe       = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2}\s+to\s+(\d{1,2}-\d{1,2}-\d{2})`)
	discoverHeaderRe  = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)
)

// parseDollars converts the first $-amount on the line to a decimal.
func parseDollars(token string) (decimal.Decimal, bool) {
	amount, err := models.ParseAmount(token)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// extractDueDate handles "Payment Due Date"/"Payment Due:" lines. Three
// formats are tried most-specific first: a four-digit-year slash date, a
// word-month date, then a two-digit-year slash date as last resort.
func extractDueDate(ctx *parseContext, page Page, i int) {
	line := page[i]
	if ctx.card.DueDate != nil {
		return
	}
	if !strings.Contains(line, "Payment Due Date") && !strings.Contains(line, "Payment Due:") {
		return
	}
	if m := mdyFullDateRe.FindStringSubmatch(line); m != nil {
		if t, err := dateutils.Parse(dateutils.LayoutUS, m[1]); err == nil {
			ctx.card.DueDate = &t
			return
		}
	}
	if m := wordDateRe.FindStringSubmatch(line); m != nil {
		if t, err := dateutils.Parse(dateutils.LayoutWordMonth, m[1]); err == nil {
			ctx.card.DueDate = &t
			return
		}
	}
	if m := mdyShortDateRe.FindStringSubmatch(line); m != nil {
		if t, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1]); err == nil {
			ctx.card.DueDate = &t
		}
	}
}

// extractLegacyDueDate covers older layouts that spell "due date" in
// lowercase with a two-digit year.
func extractLegacyDueDate(ctx *parseContext, page Page, i int) {
	line := page[i]
	if ctx.card.DueDate != nil {
		return
	}
	if !strings.Contains(strings.ToLower(line), "due date") || strings.Contains(line, "Payment Due Date") {
		return
	}
	if m := mdyShortDateRe.FindStringSubmatch(line); m != nil {
		if t, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1]); err == nil {
			ctx.card.DueDate = &t
		}
	}
}

// extractNewBalance handles the three balance layouts: DCU's "NEW
// BALANCE" with no dollar sign, Synchrony's "New Balance:" with one, and
// the Chase/Amex/Barclays "New Balance"/"Statement Balance" rows, which
// must not be confused with reward balances or "as of" rows.
func extractNewBalance(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !ctx.card.NewBalance.IsZero() {
		return
	}

	if strings.Contains(line, "NEW BALANCE") && !strings.Contains(line, "$") {
		if m := bareCentsRe.FindStringSubmatch(line); m != nil {
			if amount, ok := parseDollars(m[1]); ok {
				ctx.card.NewBalance = amount
			}
		}
		return
	}

	if strings.Contains(line, "New Balance:") && strings.Contains(line, "$") {
		if m := dollarCentsRe.FindString(line); m != "" {
			if amount, ok := parseDollars(m); ok {
				ctx.card.NewBalance = amount
			}
		}
		return
	}

	if (strings.Contains(line, "New Balance") || strings.Contains(line, "Statement Balance")) &&
		strings.Contains(line, "$") {
		if strings.Contains(line, "Reward") || strings.Contains(line, "Point") ||
			strings.Contains(line, "Mile") || strings.Contains(strings.ToLower(line), "as of") {
			return
		}
		if m := dollarCentsRe.FindString(line); m != "" {
			if amount, ok := parseDollars(m); ok {
				ctx.card.NewBalance = amount
			}
		}
	}
}

// extractMinimumPayment matches the several "Minimum Payment" spellings,
// skipping the regulatory warning box.
func extractMinimumPayment(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !ctx.card.MinimumPayment.IsZero() || !strings.Contains(line, "$") {
		return
	}

	due := strings.Contains(line, "Minimum Payment Due") ||
		strings.Contains(strings.ToLower(line), "minimum payment due") ||
		strings.Contains(line, "Minimum Payment:") ||
		strings.Contains(line, "Total Minimum Payment Due:")
	plain := strings.Contains(line, "Minimum Payment") &&
		!strings.Contains(line, "Due:") && !strings.Contains(line, "Warning")
	if !due && !plain {
		return
	}

	if m := dollarCentsRe.FindString(line); m != "" {
		if amount, ok := parseDollars(m); ok {
			ctx.card.MinimumPayment = amount
		}
	}
}

// extractCreditLimit handles Chase "Credit Access Line", the generic
// "Credit Limit $9,000 Available Credit $8,882" row (first amount is the
// limit) and "Credit Line" with or without cents.
func extractCreditLimit(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !ctx.card.CreditLimit.IsZero() {
		return
	}

	if strings.Contains(line, "Credit Access Line") && !strings.Contains(line, "Available") {
		if m := dollarWholeRe.FindString(line); m != "" {
			if amount, ok := parseDollars(m); ok {
				ctx.card.CreditLimit = amount
			}
		}
		return
	}

	if strings.Contains(line, "Credit Limit") && strings.Contains(line, "$") &&
		!strings.Contains(line, "Cash Advance") {
		if m := creditLimitRe.FindStringSubmatch(line); m != nil {
			if amount, ok := parseDollars(m[1]); ok {
				ctx.card.CreditLimit = amount
			}
		}
		return
	}

	if strings.Contains(line, "Credit Line") && strings.Contains(line, "$") &&
		!strings.Contains(line, "Available") && !strings.Contains(line, "Cash Advance") {
		m := dollarCentsRe.FindString(line)
		if m == "" {
			m = dollarWholeRe.FindString(line)
		}
		if m != "" {
			if amount, ok := parseDollars(m); ok {
				ctx.card.CreditLimit = amount
			}
		}
	}
}

// extractAvailableCredit completes the row extractCreditLimit reads the
// first amount from.
func extractAvailableCredit(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !ctx.card.AvailableCred.IsZero() {
		return
	}
	if m := availableCreditRe.FindStringSubmatch(line); m != nil {
		if amount, ok := parseDollars(m[1]); ok {
			ctx.card.AvailableCred = amount
		}
	}
}

// extractStatementDate resolves the statement (closing) date from the
// issuer-specific period formats, always taking the end of the range.
func extractStatementDate(ctx *parseContext, page Page, i int) {
	line := page[i]
	if ctx.card.StatementDate != nil {
		return
	}

	if strings.Contains(line, "Opening/Closing Date") {
		if m := openClosRangeRe.FindStringSubmatch(line); m != nil {
			if t, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1]); err == nil {
				ctx.card.StatementDate = &t
			}
		}
		return
	}

	if strings.Contains(line, "Closing Date") {
		if m := closingDateRe.FindStringSubmatch(line); m != nil {
			if t, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1]); err == nil {
				ctx.card.StatementDate = &t
			}
		}
		return
	}

	switch {
	case wordRangeRe.MatchString(line): // "Sep 10, 2025 - Oct 10, 2025"
		m := wordRangeRe.FindStringSubmatch(line)
		if t, err := dateutils.Parse(dateutils.LayoutWordMonth, m[1]); err == nil {
			ctx.card.StatementDate = &t
		}
	case slashRangeRe.MatchString(line): // "10/16/25 - 11/15/25"
		m := slashRangeRe.FindStringSubmatch(line)
		if t, err := dateutils.Parse(dateutils.LayoutUSShortYear, m[1]); err == nil {
			ctx.card.StatementDate = &t
		}
	case dashRangeRe.MatchString(line): // "10-01-25 to 10-31-25"
		m := dashRangeRe.FindStringSubmatch(line)
		if t, err := dateutils.Parse(dateutils.LayoutDashed, m[1]); err == nil {
			ctx.card.StatementDate = &t
		}
	case strings.Contains(strings.ToLower(line), "as of") && mdyFullDateRe.MatchString(line):
		m := mdyFullDateRe.FindStringSubmatch(line)
		if t, err := dateutils.Parse(dateutils.LayoutUS, m[1]); err == nil {
			ctx.card.StatementDate = &t
		}
	}
}

// extractAppleBalanceBlock handles the Apple Card header whose values sit
// a few rows below: "Your ... Balance ... Minimum Payment" followed by a
// line with two dollar amounts.
func extractAppleBalanceBlock(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !strings.Contains(line, "Your") || !strings.Contains(line, "Balance") ||
		!strings.Contains(line, "Minimum Payment") {
		return
	}
	for j := i + 1; j < min(i+5, len(page)); j++ {
		amounts := dollarCentsRe.FindAllString(page[j], -1)
		if len(amounts) < 2 {
			continue
		}
		if ctx.card.NewBalance.IsZero() {
			if amount, ok := parseDollars(amounts[0]); ok {
				ctx.card.NewBalance = amount
			}
		}
		if ctx.card.MinimumPayment.IsZero() {
			if amount, ok := parseDollars(amounts[1]); ok {
				ctx.card.MinimumPayment = amount
			}
		}
		return
	}
}

// extractAppleDueDateOverride handles "Payment Due By <date>". Unlike
// every other field this unconditionally replaces an earlier due date:
// the Apple layout places an unrelated "as of" balance row above the real
// due-date row, so first-match-wins would lock in the wrong value. Dates
// older than three days ago are rejected as "as of" artifacts.
func extractAppleDueDateOverride(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !strings.Contains(line, "Due By") &&
		!(strings.Contains(line, "Payment") && strings.Contains(line, "Due")) {
		return
	}
	for j := i; j < min(i+3, len(page)); j++ {
		check := page[j]
		if strings.Contains(strings.ToLower(check), "as of") {
			continue
		}
		m := wordDateRe.FindStringSubmatch(check)
		if m == nil {
			continue
		}
		t, err := dateutils.Parse(dateutils.LayoutWordMonth, m[1])
		if err != nil {
			continue
		}
		today := timeNow().Truncate(24 * time.Hour)
		if t.Before(today.AddDate(0, 0, -3)) {
			continue
		}
		ctx.card.DueDate = &t
		return
	}
}

// extractDiscoverPaymentBlock handles Discover's squeezed three-column
// header "NewBalance MinimumPayment PaymentDueDate" whose values appear
// on one of the following rows.
func extractDiscoverPaymentBlock(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !strings.Contains(line, "NewBalance") || !strings.Contains(line, "MinimumPayment") ||
		!strings.Contains(line, "PaymentDueDate") {
		return
	}
	for j := i + 1; j < min(i+5, len(page)); j++ {
		next := page[j]
		amounts := dollarCentsRe.FindAllString(next, -1)
		if len(amounts) >= 2 {
			if ctx.card.NewBalance.IsZero() {
				if amount, ok := parseDollars(amounts[0]); ok {
					ctx.card.NewBalance = amount
				}
			}
			if ctx.card.MinimumPayment.IsZero() {
				if amount, ok := parseDollars(amounts[1]); ok {
					ctx.card.MinimumPayment = amount
				}
			}
		}
		if ctx.card.DueDate == nil {
			if m := discoverHeaderRe.FindStringSubmatch(next); m != nil {
				if t, err := dateutils.Parse(dateutils.LayoutUS, m[1]); err == nil {
					ctx.card.DueDate = &t
				}
			}
		}
	}
}

// extractDiscoverCreditLine handles Discover's squeezed "CreditLine" row.
func extractDiscoverCreditLine(ctx *parseContext, page Page, i int) {
	line := page[i]
	if !ctx.card.CreditLimit.IsZero() {
		return
	}
	if !strings.Contains(line, "CreditLine") || !strings.Contains(line, "$") ||
		strings.Contains(line, "Available") {
		return
	}
	if m := dollarWholeRe.FindString(line); m != "" {
		if amount, ok := parseDollars(m); ok {
			ctx.card.CreditLimit = amount
		}
	}
}
