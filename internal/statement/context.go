package statement

import (
	"regexp"

	"raj/stmt-extract/internal/dateutils"
	"raj/stmt-extract/internal/models"
)

// parseContext carries every piece of document-scoped mutable state. One
// is created per document parse and discarded when the parse completes,
// so independent documents can be parsed concurrently with no shared
// state.
type parseContext struct {
	card models.CardInfo

	// inTransactions is the two-state section machine. It persists
	// across page boundaries and resets only with the next document.
	inTransactions bool

	// currentYear backs year inference for grammars whose date tokens
	// carry no year. Empty until a statement-period line establishes it.
	currentYear string

	// pending indexes the most recently appended transaction while its
	// grammar family allows continuation lines, -1 otherwise. An index
	// stays valid when the backing slice grows.
	pending int

	transactions []models.Transaction
}

func newParseContext() *parseContext {
	return &parseContext{card: models.NewCardInfo(), pending: -1}
}

func (ctx *parseContext) clearPending() {
	ctx.pending = -1
}

// appendPendingDetail extends the open transaction's description with a
// continuation line. Reports whether a transaction was open to extend.
func (ctx *parseContext) appendPendingDetail(detail string) bool {
	if ctx.pending < 0 {
		return false
	}
	ctx.transactions[ctx.pending].AppendDetail(detail)
	return true
}

// year returns the inferred statement year, falling back to the fixed
// default when no line ever established one.
func (ctx *parseContext) year() string {
	if ctx.currentYear == "" {
		return dateutils.FallbackYear
	}
	return ctx.currentYear
}

// append records a parsed transaction and returns its index so
// continuation lines can extend its description later.
func (ctx *parseContext) append(tx models.Transaction) int {
	ctx.transactions = append(ctx.transactions, tx)
	return len(ctx.transactions) - 1
}

// Year-establishing patterns. These run on every line regardless of
// section state: statement-period headers usually sit outside the
// transaction listing.
var (
	monthNameYearRe = regexp.MustCompile(
		`(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})`)
	periodRangeYearRe = regexp.MustCompile(
		`[A-Z][a-z]{2}\s+\d{1,2},\s+\d{4}\s*-\s*[A-Z][a-z]{2}\s+\d{1,2},\s+(\d{4})`)
	applePeriodYearRe = regexp.MustCompile(
		`[A-Z][a-z]{2}\s+\d{1,2}\s*\x{2014}\s*[A-Z][a-z]{2}\s+\d{1,2},\s*(\d{4})`)
)

// noteYear updates currentYear when the line names the statement period.
// For "Mon D, YYYY - Mon D, YYYY" ranges the trailing year wins.
func (ctx *parseContext) noteYear(line string) {
	if m := monthNameYearRe.FindStringSubmatch(line); m != nil {
		ctx.currentYear = m[2]
	}
	if m := periodRangeYearRe.FindStringSubmatch(line); m != nil {
		ctx.currentYear = m[1]
	}
	if m := applePeriodYearRe.FindStringSubmatch(line); m != nil {
		ctx.currentYear = m[1]
	}
}
