package models

// Issuer / product names from the supported statement layouts. The first
// matching detection rule wins for the rest of the document, so these are
// also the only values CardName can take besides CardNameUnknown.
const (
	CardNameUnknown = "Unknown Card"

	CardChasePrimeVisa = "Chase Prime Visa"
	CardChaseAmazon    = "Chase Amazon Card"
	CardChase          = "Chase Card"

	CardLowesSynchrony  = "Lowe's Synchrony"
	CardAmazonStoreCard = "Amazon Store Card"
	CardPayPalCredit    = "PayPal Credit"
	CardSynchrony       = "Synchrony Bank"

	CardDCUFreeChecking   = "DCU Free Checking"
	CardDCUPrimarySavings = "DCU Primary Savings"
	CardDCU               = "DCU"

	CardBarclaysFrontier = "Barclays Frontier Airlines"
	CardBarclaysJetBlue  = "Barclays JetBlue"
	CardBarclaysWyndham  = "Barclays Wyndham Rewards"
	CardBarclaysAviator  = "Barclays Aviator"
	CardBarclays         = "Barclays"

	CardCapitalOneVentureOne  = "Capital One VentureOne"
	CardCapitalOneVentureX    = "Capital One Venture X"
	CardCapitalOneVenture     = "Capital One Venture"
	CardCapitalOneQuicksilver = "Capital One Quicksilver"
	CardCapitalOneSavor       = "Capital One Savor"
	CardCapitalOne            = "Capital One"

	CardAmexCashMagnet = "American Express Cash Magnet"
	CardAmexGold       = "American Express Gold"
	CardAmexPlatinum   = "American Express Platinum"
	CardAmexBlueCash   = "American Express Blue Cash"
	CardAmex           = "American Express"

	CardBofA               = "Bank of America"
	CardBofACashRewards    = "Bank of America Cash Rewards"
	CardBofAPremiumRewards = "Bank of America Premium Rewards"
	CardBofATravelRewards  = "Bank of America Travel Rewards"

	CardApple    = "Apple Card"
	CardDiscover = "Discover Card"
)

// Last4Placeholder is the value of LastFourDigits until a rule resolves it.
const Last4Placeholder = "****"

// Last4AppleFallback labels an Apple Card statement whose account digits
// never appear in the text.
const Last4AppleFallback = "AAPL"

// Category taxonomy. The categorizer evaluates tiers in a fixed priority
// order; adding a label means adding a tier, never editing an existing one.
const (
	CategoryIncome        = "Income/Payments"
	CategoryGroceries     = "Groceries"
	CategoryDining        = "Food & Dining"
	CategoryUtilities     = "Bills & Utilities"
	CategoryTransport     = "Transportation"
	CategoryHealthcare    = "Healthcare"
	CategoryHome          = "Home Improvement"
	CategoryShopping      = "Shopping"
	CategorySubscriptions = "Subscriptions"
	CategoryEntertainment = "Entertainment"
	CategoryServices      = "Professional Services"
	CategoryFinance       = "Finance & Banking"
	CategoryOther         = "Other"
)
