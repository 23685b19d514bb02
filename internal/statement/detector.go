package statement

import (
	"regexp"
	"strings"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
)

// issuerRule identifies an issuer/product from a single line. Rules are
// evaluated in order on every line until one matches; the first match
// locks CardName for the rest of the document. A rule returns "" when the
// line is not its format.
type issuerRule func(line string) string

var issuerRules = []issuerRule{
	// Chase
	func(line string) string {
		if strings.Contains(line, "Prime Visa") || strings.Contains(line, "PRIME VISA") {
			return models.CardChasePrimeVisa
		}
		if strings.Contains(line, "Chase") && strings.Contains(line, "Amazon") {
			return models.CardChaseAmazon
		}
		return ""
	},
	// Synchrony Bank store cards
	func(line string) string {
		if !strings.Contains(strings.ToLower(line), "synchrony") {
			return ""
		}
		switch {
		case strings.Contains(line, "Lowe") || strings.Contains(line, "LOWE") || strings.Contains(line, "lowes.com"):
			return models.CardLowesSynchrony
		case strings.Contains(line, "Amazon"):
			return models.CardAmazonStoreCard
		case strings.Contains(line, "PayPal"):
			return models.CardPayPalCredit
		default:
			return models.CardSynchrony
		}
	},
	// Digital Federal Credit Union
	func(line string) string {
		if !strings.Contains(line, "Digital Federal Credit Union") && !strings.Contains(line, "DCU") {
			return ""
		}
		switch {
		case strings.Contains(line, "FREE CHECKING") || strings.Contains(line, "Free Checking"):
			return models.CardDCUFreeChecking
		case strings.Contains(line, "PRIMARY SAVINGS") || strings.Contains(line, "Primary Savings"):
			return models.CardDCUPrimarySavings
		default:
			return models.CardDCU
		}
	},
	// Barclays
	func(line string) string {
		if !strings.Contains(strings.ToLower(line), "barclays") {
			return ""
		}
		switch {
		case strings.Contains(line, "Frontier Airlines"):
			return models.CardBarclaysFrontier
		case strings.Contains(line, "JetBlue"):
			return models.CardBarclaysJetBlue
		case strings.Contains(line, "Wyndham"):
			return models.CardBarclaysWyndham
		case strings.Contains(line, "Aviator"):
			return models.CardBarclaysAviator
		default:
			return models.CardBarclays
		}
	},
	// Capital One
	func(line string) string {
		if !strings.Contains(line, "Capital One") && !strings.Contains(line, "CAPITAL ONE") &&
			!strings.Contains(strings.ToLower(line), "capitalone") {
			return ""
		}
		switch {
		case strings.Contains(line, "VentureOne") || strings.Contains(line, "Venture One"):
			return models.CardCapitalOneVentureOne
		case strings.Contains(line, "Venture X"):
			return models.CardCapitalOneVentureX
		case strings.Contains(line, "Venture"):
			return models.CardCapitalOneVenture
		case strings.Contains(line, "Quicksilver"):
			return models.CardCapitalOneQuicksilver
		case strings.Contains(line, "Savor"):
			return models.CardCapitalOneSavor
		default:
			return models.CardCapitalOne
		}
	},
	// American Express
	func(line string) string {
		if !strings.Contains(line, "American Express") && !strings.Contains(line, "AMERICAN EXPRESS") {
			return ""
		}
		switch {
		case strings.Contains(line, "Cash Magnet"):
			return models.CardAmexCashMagnet
		case strings.Contains(line, "Gold"):
			return models.CardAmexGold
		case strings.Contains(line, "Platinum"):
			return models.CardAmexPlatinum
		case strings.Contains(line, "Blue Cash"):
			return models.CardAmexBlueCash
		default:
			return models.CardAmex
		}
	},
	// Bank of America
	func(line string) string {
		switch {
		case strings.Contains(line, "Bank of America") || strings.Contains(line, "BANK OF AMERICA"),
			strings.Contains(line, "BankofAmerica") || strings.Contains(line, "BANKOFAMERICA"):
			return models.CardBofA
		case strings.Contains(line, "Customized Cash Rewards"):
			return models.CardBofACashRewards
		case strings.Contains(line, "Premium Rewards"):
			return models.CardBofAPremiumRewards
		case strings.Contains(line, "Travel Rewards"):
			return models.CardBofATravelRewards
		}
		return ""
	},
	// Apple Card; "Co-Owners" and "Installments" rows mention the product
	// without being the statement masthead.
	func(line string) string {
		if strings.Contains(line, "Apple Card") &&
			!strings.Contains(line, "Co-Owners") && !strings.Contains(line, "Installments") {
			return models.CardApple
		}
		return ""
	},
	// Discover
	func(line string) string {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "DISCOVER") && strings.Contains(upper, "CARD ENDING IN") {
			return models.CardDiscover
		}
		return ""
	},
}

// detectIssuer applies the issuer catalogue; first match wins for the
// rest of the document.
func detectIssuer(ctx *parseContext, line string) {
	if !ctx.card.Unknown() {
		return
	}
	for _, rule := range issuerRules {
		if name := rule(line); name != "" {
			ctx.card.CardName = name
			log.Debug("issuer detected",
				logging.Field{Key: logging.FieldIssuer, Value: name})
			return
		}
	}
}

// Account-digit patterns per issuer.
var (
	chaseAccountRe    = regexp.MustCompile(`XXXX XXXX XXXX (\d{4})`)
	amexEndingRe      = regexp.MustCompile(`Ending\s*(\d[-\d]+)`)
	endingInRe        = regexp.MustCompile(`(?i)ending in\s*(\d{4})`)
	endingCompactRe   = regexp.MustCompile(`Ending\s*(\d{4})`)
	dcuAcctRe         = regexp.MustCompile(`ACCT#\s*(\d+)`)
	spacedEndingInRe  = regexp.MustCompile(`(?i)ending in\s*([\d\s]+)`)
	discoverEndingRe  = regexp.MustCompile(`(?i)ENDING IN\s*(\d{4})`)
)

// detectLast4 resolves the account's last four digits. First match wins;
// rules run in catalogue order on every line until then.
func detectLast4(ctx *parseContext, line string) {
	if ctx.card.LastFourDigits != models.Last4Placeholder {
		return
	}

	// Discover prints the digits on its masthead line.
	upper := strings.ToUpper(line)
	if strings.Contains(upper, "DISCOVER") && strings.Contains(upper, "CARD ENDING IN") {
		if m := discoverEndingRe.FindStringSubmatch(line); m != nil {
			ctx.card.LastFourDigits = m[1]
			return
		}
	}

	// Chase: "Account Number: XXXX XXXX XXXX 1234". This line also
	// identifies the issuer when nothing else has.
	if strings.Contains(line, "Account Number:") && strings.Contains(line, "XXXX") {
		if m := chaseAccountRe.FindStringSubmatch(line); m != nil {
			ctx.card.LastFourDigits = m[1]
			if ctx.card.Unknown() {
				ctx.card.CardName = models.CardChase
			}
			return
		}
	}

	// Amex: "Account Ending5-05001" / "Card Ending5-05001".
	if strings.Contains(line, "Account Ending") || strings.Contains(line, "Card Ending") {
		if m := amexEndingRe.FindStringSubmatch(line); m != nil {
			acct := strings.ReplaceAll(m[1], "-", "")
			ctx.card.LastFourDigits = lastN(acct, 4)
			return
		}
	}

	// Capital One "ending in 6165" or Barclays "Ending5459".
	if strings.Contains(strings.ToLower(line), "ending in") || strings.Contains(line, "Ending") {
		if m := endingInRe.FindStringSubmatch(line); m != nil {
			ctx.card.LastFourDigits = m[1]
			return
		}
		if m := endingCompactRe.FindStringSubmatch(line); m != nil {
			ctx.card.LastFourDigits = m[1]
			return
		}
	}

	// DCU: "ACCT# 123456".
	if strings.Contains(line, "ACCT#") {
		if m := dcuAcctRe.FindStringSubmatch(line); m != nil {
			ctx.card.LastFourDigits = lastN(m[1], 4)
			return
		}
	}

	// Synchrony: "Account Number ending in 698 0" (digits may be spaced).
	if strings.Contains(line, "Account Number ending in") {
		if m := spacedEndingInRe.FindStringSubmatch(line); m != nil {
			acct := strings.TrimSpace(strings.ReplaceAll(m[1], " ", ""))
			if acct != "" {
				ctx.card.LastFourDigits = lastN(acct, 4)
			}
		}
	}
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
