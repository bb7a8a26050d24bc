package pricing

import (
	"testing"

	"eventmanager/internal/models"
)

func TestCurrencyForKnownCountry(t *testing.T) {
	if got := CurrencyFor("Pakistan"); got != "PKR" {
		t.Fatalf("expected PKR for Pakistan, got %s", got)
	}
	if got := CurrencyFor("United Kingdom"); got != "GBP" {
		t.Fatalf("expected GBP for United Kingdom, got %s", got)
	}
}

func TestCurrencyForUnknownCountryFallsBackToUSD(t *testing.T) {
	if got := CurrencyFor("Atlantis"); got != "USD" {
		t.Fatalf("expected USD fallback, got %s", got)
	}
}

func TestQuoteForUsesFixedPricesWhenPresent(t *testing.T) {
	q := QuoteFor(models.RoleIndividual, "Pakistan", 5, 40)
	if q.Amount != 500 || q.Currency != "PKR" {
		t.Fatalf("expected fixed 500 PKR, got %v %s", q.Amount, q.Currency)
	}

	q = QuoteFor(models.RoleBusiness, "Pakistan", 5, 40)
	if q.Amount != 2500 || q.Currency != "PKR" {
		t.Fatalf("expected fixed 2500 PKR, got %v %s", q.Amount, q.Currency)
	}
}

func TestQuoteForConvertsAtRateWhenNoFixedPrice(t *testing.T) {
	// United Kingdom has no fixed prices; 40 * 0.79 = 31.60.
	q := QuoteFor(models.RoleBusiness, "United Kingdom", 5, 40)
	if q.Amount != 31.60 {
		t.Fatalf("expected 31.60, got %v", q.Amount)
	}
	if q.Currency != "GBP" || q.Symbol != "£" {
		t.Fatalf("expected GBP/£, got %s/%s", q.Currency, q.Symbol)
	}
}

func TestQuoteForRoundsToTwoDecimals(t *testing.T) {
	// Switzerland: 5 * 0.88 = 4.4, 40 * 0.88 = 35.2; Brazil: 5 * 4.97 = 24.85.
	q := QuoteFor(models.RoleIndividual, "Brazil", 5, 40)
	if q.Amount != 24.85 {
		t.Fatalf("expected 24.85, got %v", q.Amount)
	}
}

func TestQuoteForUnknownCountry(t *testing.T) {
	q := QuoteFor(models.RoleIndividual, "Atlantis", 5, 40)
	if q.Amount != 5 || q.Currency != "USD" {
		t.Fatalf("expected 5 USD for unknown country, got %v %s", q.Amount, q.Currency)
	}
}
