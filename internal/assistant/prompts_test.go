package assistant

import (
	"strings"
	"testing"

	"eventmanager/internal/models"
)

func TestEmailDraftPromptIncludesEventFields(t *testing.T) {
	e := models.Event{
		Name:        "Emily Clarke",
		PartnerName: "James Wilson",
		Status:      models.StatusConfirmed,
		WeddingDate: "2024-06-15",
	}
	p := EmailDraftPrompt(e, "confirm the final headcount")

	for _, want := range []string{"Emily Clarke", "James Wilson", "Confirmed", "2024-06-15", "confirm the final headcount"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestEmailDraftPromptHandlesMissingPartner(t *testing.T) {
	p := EmailDraftPrompt(models.Event{Name: "Jo"}, "say hi")
	if !strings.Contains(p, "Partner: N/A") {
		t.Fatalf("expected N/A partner, got:\n%s", p)
	}
}

func TestEventIdeasPromptDefaultsUnknownBudget(t *testing.T) {
	p := EventIdeasPrompt(models.Event{Name: "Jo", GuestCount: 80})
	if !strings.Contains(p, "Budget: $Unknown") {
		t.Fatalf("expected unknown budget marker, got:\n%s", p)
	}
	if !strings.Contains(p, "Guests: 80") {
		t.Fatalf("expected guest count, got:\n%s", p)
	}
}

func TestVendorEmailPromptIncludesVendor(t *testing.T) {
	p := VendorEmailPrompt(models.Business{Name: "Saadeddin Pastry", Category: "Catering Services", ContactName: "Saad Sales"})
	for _, want := range []string{"Saadeddin Pastry", "Catering Services", "Saad Sales"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestUpsellPromptDefaults(t *testing.T) {
	p := UpsellPrompt(models.Event{EventType: models.EventWedding, GuestCount: 150})
	if !strings.Contains(p, "General Luxury") || !strings.Contains(p, "None") {
		t.Fatalf("expected defaults for empty preferences/notes, got:\n%s", p)
	}
}
