package pricing

import (
	"math"

	"eventmanager/internal/models"
)

// Quote is the local price for one protected action: a monthly subscription
// for businesses, a per-inquiry fee for individuals.
type Quote struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol"`
	Country  string  `json:"country"`
}

// Lookup returns the table row for a country name (exact match, as the
// frontend submits values straight from the table).
func Lookup(country string) (CountryInfo, bool) {
	for _, c := range Countries {
		if c.Country == country {
			return c, true
		}
	}
	return CountryInfo{}, false
}

// CurrencyFor resolves the account currency at signup. Unrecognized
// countries fall back to USD.
func CurrencyFor(country string) string {
	if info, ok := Lookup(country); ok {
		return info.Currency
	}
	return "USD"
}

// QuoteFor prices a payment for the given role and country. Fixed local
// prices win; otherwise the USD base fee is converted at the table rate and
// rounded to 2 decimals. Unknown countries are priced in USD at the base fee.
func QuoteFor(role models.Role, country string, individualBase, businessBase float64) Quote {
	base := individualBase
	if role == models.RoleBusiness {
		base = businessBase
	}

	info, ok := Lookup(country)
	if !ok {
		return Quote{Amount: round2(base), Currency: "USD", Symbol: "$", Country: country}
	}

	fixed := info.FixedIndividual
	if role == models.RoleBusiness {
		fixed = info.FixedBusiness
	}

	amount := fixed
	if amount == 0 {
		rate := info.Rate
		if rate == 0 {
			rate = 1
		}
		amount = round2(base * rate)
	}

	return Quote{Amount: amount, Currency: info.Currency, Symbol: info.Symbol, Country: info.Country}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
