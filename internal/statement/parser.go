package statement

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
	"raj/stmt-extract/internal/parsererror"
)

var log = logging.GetLogger()

// Continuation-line shape tests. A detail line extends the open
// transaction only when it starts with neither a date token nor carries
// an amount token of its own.
var (
	leadingDateTokenRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}|[A-Z][a-z]{2}\s+\d{1,2}|[A-Z]{3}\d{2})`)
	amountTokenRe      = regexp.MustCompile(`-?\$?[\d,]+\.\d{2}`)
	leadingArtifactRe  = regexp.MustCompile(`^[-,;.\s]+`)
)

// Parse extracts card metadata and transactions from one document. Lines
// that fail to parse are dropped individually; the document as a whole
// fails only when no issuer could be recognized or no transactions
// survived.
func Parse(doc Document) (models.CardInfo, []models.Transaction, error) {
	ctx := newParseContext()

	for pageNum, page := range doc.Pages {
		for i, raw := range page {
			line := strings.TrimSpace(raw)
			if line == "" {
				ctx.clearPending()
				continue
			}

			detectIssuer(ctx, line)
			detectLast4(ctx, line)
			applyFieldRules(ctx, page, i)

			if applySectionTriggers(ctx, page, i) {
				continue
			}

			ctx.noteYear(line)

			if ctx.inTransactions {
				parseTransactionLine(ctx, doc.Name, pageNum+1, line)
			}
		}
	}

	if ctx.card.CardName == models.CardApple && ctx.card.LastFourDigits == models.Last4Placeholder {
		ctx.card.LastFourDigits = models.Last4AppleFallback
	}

	// Dates repeat within a statement, so a stable sort keeps same-day
	// transactions in listing order.
	sort.SliceStable(ctx.transactions, func(a, b int) bool {
		return ctx.transactions[a].Date.Before(ctx.transactions[b].Date)
	})

	if len(ctx.transactions) == 0 {
		if ctx.card.CardName == models.CardNameUnknown {
			return ctx.card, nil, &parsererror.NoIssuerDetectedError{Document: doc.Name}
		}
		return ctx.card, nil, &parsererror.NoTransactionsError{Document: doc.Name, Pages: len(doc.Pages)}
	}
	if ctx.card.CardName == models.CardNameUnknown {
		log.Warn("transactions extracted without an issuer match",
			logging.Field{Key: logging.FieldDocument, Value: doc.Name},
			logging.Field{Key: logging.FieldCount, Value: len(ctx.transactions)})
	}

	log.Debug("document parsed",
		logging.Field{Key: logging.FieldDocument, Value: doc.Name},
		logging.Field{Key: logging.FieldCard, Value: ctx.card.Label()},
		logging.Field{Key: logging.FieldCount, Value: len(ctx.transactions)})
	return ctx.card, ctx.transactions, nil
}

// parseTransactionLine tries each issuer grammar in order and applies the
// first structural match. Lines matching no grammar may still extend the
// previous transaction as continuation detail.
func parseTransactionLine(ctx *parseContext, document string, pageNum int, line string) {
	for _, grammar := range lineGrammars {
		m := grammar.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if grammar.exclude != nil && grammar.exclude.MatchString(line) {
			continue
		}

		tx, err := grammar.build(ctx, m)
		if err != nil {
			// A matched line that fails to build ends any open
			// continuation: whatever follows belongs to this line, not
			// the previous transaction.
			ctx.clearPending()
			if !errors.Is(err, errSkipLine) {
				log.Debug("transaction line dropped",
					logging.Field{Key: logging.FieldDocument, Value: document},
					logging.Field{Key: logging.FieldPage, Value: pageNum},
					logging.Field{Key: logging.FieldLine, Value: line},
					logging.Field{Key: logging.FieldReason, Value: err.Error()})
			}
			return
		}

		idx := ctx.append(tx)
		if grammar.continuation {
			ctx.pending = idx
		} else {
			ctx.clearPending()
		}
		return
	}

	maybeContinuation(ctx, line)
}

// maybeContinuation folds a free-form detail line into the open
// transaction. Date or amount tokens mean the line is a malformed
// transaction rather than detail, which also closes the open one.
func maybeContinuation(ctx *parseContext, line string) {
	if ctx.pending < 0 {
		return
	}
	if leadingDateTokenRe.MatchString(line) || amountTokenRe.MatchString(line) {
		ctx.clearPending()
		return
	}
	detail := strings.TrimSpace(leadingArtifactRe.ReplaceAllString(line, ""))
	if detail == "" {
		return
	}
	ctx.appendPendingDetail(detail)
}
