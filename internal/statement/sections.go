package statement

import (
	"strings"
)

// The section machine has two states: outside the transaction listing
// (initial) and inside it. Header patterns enter, footer/summary patterns
// exit. Trigger lines are consumed and never offered to the transaction
// grammars. Overlapping header text can cause false entries or exits,
// an accepted limitation of the source layouts.

// sectionTrigger reports whether the line at i flips the section state.
// A trigger may look at neighbouring lines of the same page.
type sectionTrigger func(page Page, i int) bool

var sectionEntryTriggers = []sectionTrigger{
	contains("PAYMENTS AND OTHER CREDITS", "PURCHASE", "CASH ADVANCES"),
	// Discover compresses whitespace out of its section headers.
	func(page Page, i int) bool {
		return strings.Contains(strings.ReplaceAll(page[i], " ", ""), "PAYMENTSANDCREDITS")
	},
	containsAll("PURCHASES", "TRANS."),
	contains("Transactions by"),
	// Apple payments section.
	func(page Page, i int) bool {
		return strings.Contains(page[i], "Payments") && strings.Contains(page[i], "made by")
	},
	contains("New Charges"),
	// Amex "Payments and Credits" detail, unless the previous line marks
	// it as the summary box.
	func(page Page, i int) bool {
		if !strings.Contains(page[i], "Payments and Credits") {
			return false
		}
		return i > 0 && !strings.Contains(page[i-1], "Summary")
	},
	// Generic "Transactions" headers and the various column-header rows.
	func(page Page, i int) bool {
		line := page[i]
		if strings.Contains(line, "Transactions") && !strings.Contains(line, "Total") &&
			!strings.Contains(strings.ToLower(line), "see") {
			return true
		}
		return false
	},
	containsAll("Trans Date", "Post Date", "Description"),
	containsAll("Transaction Date", "Posting Date", "Description"),
	containsAll("DATE", "TRANSACTION DESCRIPTION", "WITHDRAWALS", "DEPOSITS"),
	contains("Transaction Detail"),
	containsAll("Date", "Reference Number", "Description", "Amount"),
}

var sectionExitTriggers = []sectionTrigger{
	contains("Totals Year-to-Date", "INTEREST CHARGES", "Apple Card Monthly Installments", "Daily Cash"),
	contains("FeesandInterestCharged", "Fees and Interest Charged", "TOTALS YEAR-TO-DATE"),
	func(page Page, i int) bool {
		trimmed := strings.TrimSpace(page[i])
		return trimmed == "Fees" || trimmed == "Interest Charged" ||
			strings.Contains(page[i], "Continued on reverse")
	},
	contains(
		"Total Transactions for This Period",
		"Total Fees for This Period",
		"Total Interest for This Period",
		"DEPOSITS, DIVIDENDS AND OTHER CREDITS",
		"WITHDRAWALS, FEES AND OTHER DEBITS",
		"S T A T E M E N T  S U M M A R Y",
		"Total Fees Charged This Period",
		"Total Interest Charged This Period",
		"Year- to- Date Fees and Interest",
	),
}

// contains builds a trigger matching any of the given substrings.
func contains(subs ...string) sectionTrigger {
	return func(page Page, i int) bool {
		for _, sub := range subs {
			if strings.Contains(page[i], sub) {
				return true
			}
		}
		return false
	}
}

// containsAll builds a trigger requiring every given substring.
func containsAll(subs ...string) sectionTrigger {
	return func(page Page, i int) bool {
		for _, sub := range subs {
			if !strings.Contains(page[i], sub) {
				return false
			}
		}
		return true
	}
}

// applySectionTriggers updates the section state for the line at i and
// reports whether the line was consumed by a transition.
func applySectionTriggers(ctx *parseContext, page Page, i int) bool {
	for _, trigger := range sectionEntryTriggers {
		if trigger(page, i) {
			ctx.inTransactions = true
			ctx.clearPending()
			return true
		}
	}
	for _, trigger := range sectionExitTriggers {
		if trigger(page, i) {
			ctx.inTransactions = false
			ctx.clearPending()
			return true
		}
	}
	return false
}
