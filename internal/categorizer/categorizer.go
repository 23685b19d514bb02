// Package categorizer classifies transaction descriptions into the fixed
// spending taxonomy. Classification is a pure function over the
// description text: ordered keyword tiers, first matching tier wins,
// case-insensitive substring tests, no I/O and no state.
package categorizer

import (
	"regexp"
	"strings"

	"raj/stmt-extract/internal/models"
)

// tier is one priority level of the taxonomy. Tiers are evaluated in
// order and the first keyword hit decides the category, subject to the
// carve-outs below.
type tier struct {
	category string
	keywords []string
}

// tiers holds the taxonomy from highest to lowest priority. Adding a
// label means adding a tier; existing keyword lists stay stable so
// already-classified output never shifts.
var tiers = []tier{
	{models.CategoryIncome, []string{
		"payment thank you", "thank you", "payment received", "autopay",
		"online payment", "e-payment", "epayment", "ach pmt", "ach deposit",
		"direct deposit", "payroll", "salary", "refund", "reimburse",
		"cashback bonus", "statement credit", "deposit", "payment",
		"paypal", "venmo", "zelle",
	}},
	{models.CategoryGroceries, []string{
		"grocery", "supermarket", "whole foods", "trader joe", "safeway",
		"kroger", "publix", "aldi", "wegmans", "costco whse", "food lion",
		"h mart", "patel brothers", "farmers market",
	}},
	{models.CategoryDining, []string{
		"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "chipotle",
		"doordash", "grubhub", "uber eats", "ubereats", "pizza", "bakery",
		"diner", "grill", "taco", "sushi", "dunkin", "panera", "chick-fil-a",
		"wendy's", "kitchen", "food",
	}},
	{models.CategoryUtilities, []string{
		"electric", "power co", "water", "sewer", "internet", "broadband",
		"comcast", "xfinity", "verizon", "t-mobile", "at&t", "wireless",
		"phone", "utility", "utilities", "insurance", "trash", "waste mgmt",
	}},
	{models.CategoryTransport, []string{
		"uber", "lyft", "taxi", "gas", "fuel", "shell oil", "chevron",
		"exxon", "qt ", "racetrac", "parking", "toll", "transit", "metro",
		"marta", "amtrak", "airline", "airways", "airfare", "delta air",
		"united air",
	}},
	{models.CategoryHealthcare, []string{
		"pharmacy", "cvs", "walgreens", "medical", "dental", "doctor",
		"clinic", "hospital", "urgent care", "optical", "vision", "health",
	}},
	{models.CategoryHome, []string{
		"home depot", "lowe's", "lowes", "hardware", "ace hdwe", "menards",
		"sherwin", "paint", "lumber", "home improvement",
	}},
	// Online marketplaces sit ahead of general retail so "WAL-MART.COM"
	// style descriptions resolve before the broad keywords below fire.
	{models.CategoryShopping, []string{
		"amazon", "amzn", "ebay", "etsy", "walmart", "wal-mart", "target",
	}},
	{models.CategoryShopping, []string{
		"best buy", "macy", "kohl", "marshalls", "tj maxx", "ross dress",
		"ikea", "hobby-lobby", "hobby lobby", "outlet", "mall", "shopping",
		"store",
	}},
	{models.CategorySubscriptions, []string{
		"netflix", "hulu", "spotify", "disney+", "youtubepremium",
		"youtube premium", "apple.com/bill", "prime video", "audible",
		"icloud", "hbo", "peacock", "patreon", "subscription", "membership",
	}},
	{models.CategoryEntertainment, []string{
		"movie", "cinema", "theater", "theatre", "amc ", "gaming", "steam",
		"playstation", "xbox", "nintendo", "concert", "ticketmaster",
		"bowling", "golf", "entertainment",
	}},
	{models.CategoryServices, []string{
		"legal", "attorney", "accounting", "consulting", "notary",
		"turbotax", "h&r block", "salon", "barber", "cleaning", "lawn",
		"plumbing", "electrician",
	}},
	{models.CategoryFinance, []string{
		"interest charge", "annual fee", "late fee", "finance charge",
		"cash advance", "foreign transaction", "bank fee", "atm",
		"wire transfer", "overdraft",
	}},
}

// paymentIntermediaryRe matches descriptions where a payment processor
// prefixes the real merchant ("PAYPAL *WALMART COM", "SQ *CORNER CAFE").
// These are purchases, not payments, so an income-tier keyword hit on
// them falls through to the merchant tiers.
var paymentIntermediaryRe = regexp.MustCompile(`(?i)(paypal|venmo|cash app|sq|tst)\s*\*\S`)

// naturalGasRe marks gas-utility billers whose descriptions would
// otherwise hit the generic "gas" transportation keyword.
var naturalGasRe = regexp.MustCompile(`(?i)(natural gas|gas south|gas company|nicor|national grid|piedmont natural|scana energy)`)

// Categorize maps a free-text transaction description to a category
// label. It is total and deterministic: every input yields exactly one
// label and repeated calls agree.
func Categorize(description string) string {
	lower := strings.ToLower(description)

	for _, t := range tiers {
		if !matchesAny(lower, t.keywords) {
			continue
		}
		if t.category == models.CategoryIncome && paymentIntermediaryRe.MatchString(description) {
			continue
		}
		if t.category == models.CategoryTransport && naturalGasRe.MatchString(description) {
			return models.CategoryUtilities
		}
		return t.category
	}
	return models.CategoryOther
}

func matchesAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
