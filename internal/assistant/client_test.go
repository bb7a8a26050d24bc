package assistant

import (
	"strings"
	"testing"
)

func TestParseGroundedExtractsTextAndMapsLinks(t *testing.T) {
	body := []byte(`{
		"candidates": [{
			"content": {"parts": [{"text": "Top 5 venues in Riyadh..."}]},
			"groundingMetadata": {"groundingChunks": [
				{"maps": {"title": "Royal Hall", "uri": "https://maps.google.com/?cid=1"}},
				{"maps": {"uri": "https://maps.google.com/?cid=2"}},
				{"maps": {"title": "No URI"}}
			]}
		}]
	}`)

	text, links, err := parseGrounded(body)
	if err != nil {
		t.Fatalf("parseGrounded: %v", err)
	}
	if text != "Top 5 venues in Riyadh..." {
		t.Errorf("text = %q", text)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links (chunks without uri are skipped), got %d", len(links))
	}
	if links[0].Title != "Royal Hall" || links[0].URI != "https://maps.google.com/?cid=1" {
		t.Errorf("links[0] = %+v", links[0])
	}
	if links[1].Title != "View on Google Maps" {
		t.Errorf("untitled link should get the default title, got %q", links[1].Title)
	}
}

func TestParseGroundedWithoutMetadata(t *testing.T) {
	body := []byte(`{"candidates": [{"content": {"parts": [{"text": "plain answer"}]}}]}`)

	text, links, err := parseGrounded(body)
	if err != nil {
		t.Fatalf("parseGrounded: %v", err)
	}
	if text != "plain answer" || len(links) != 0 {
		t.Errorf("text=%q links=%v", text, links)
	}
}

func TestParseGroundedRejectsEmptyResponse(t *testing.T) {
	if _, _, err := parseGrounded([]byte(`{"candidates": []}`)); err == nil {
		t.Fatal("expected error for empty candidates")
	}
	if _, _, err := parseGrounded([]byte(`not json`)); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestVendorSearchPromptDefaults(t *testing.T) {
	p := VendorSearchPrompt("Riyadh", "Catering Services", "", "")

	for _, want := range []string{"Riyadh", "Catering Services", "No specific preferences"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
	if !strings.Contains(p, "planning a event") {
		t.Errorf("empty event type should default to \"event\":\n%s", p)
	}

	p = VendorSearchPrompt("London", "Venue / Hall Services", "Wedding", "rustic, outdoor")
	for _, want := range []string{"Wedding", "rustic, outdoor", "London"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
