package assistant

import (
	"fmt"

	"eventmanager/internal/models"
)

// Fallback strings shown verbatim when the upstream fails. The frontend
// renders these in place of the generated text.
const (
	FallbackEmailDraft   = "Error generating draft. Please try again."
	FallbackEventIdeas   = "Error generating ideas. Please try again."
	FallbackUpsells      = "Error generating suggestions. Please try again."
	FallbackVendorEmail  = "Error generating draft. Please try again."
	FallbackVendorSearch = "Unable to search for vendors at this time."
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// EmailDraftPrompt asks for a client-facing email about an event.
func EmailDraftPrompt(e models.Event, context string) string {
	return fmt.Sprintf(`You are a professional and warm event hall manager assistant.
Write an email to an individual named %s (Partner: %s).
Their status is %s.
Event Date: %s.
Context/Goal of email: %s.
Keep the tone elegant, celebratory, and helpful.
Do not include placeholders like "[Your Name]", sign it as "The EventManager Team".
Return only the email body text.`,
		e.Name, orNA(e.PartnerName), e.Status, e.WeddingDate, context)
}

// VendorEmailPrompt asks for an outreach email to a vendor.
func VendorEmailPrompt(b models.Business) string {
	return fmt.Sprintf(`You are a professional event hall manager.
Write a business inquiry email to a vendor named %q (Category: %s).
Contact Person: %s.

Goal: Inquire about their availability and rates for upcoming events at our venue. Express interest in adding them to our preferred vendor list.

Keep the tone professional, concise, and partnership-oriented.
Sign it as "The EventManager Team".
Return only the email body text.`,
		b.Name, b.Category, b.ContactName)
}

// EventIdeasPrompt asks for three themed event concepts.
func EventIdeasPrompt(e models.Event) string {
	budget := "Unknown"
	if e.Budget > 0 {
		budget = fmt.Sprintf("%.0f", e.Budget)
	}
	return fmt.Sprintf(`You are a creative event planner.
An individual (%s & %s) is planning an event.
Details:
- Date: %s
- Guests: %d
- Budget: $%s
- Preferences: %s

Please provide 3 distinct Event Concepts. For each concept, include:
1. **Theme Name**: A creative title.
2. **Decor**: Specific decor ideas that fit the season of the event date.
3. **Menu Concept**: A cohesive menu (Appetizer, Main, Dessert) that matches the theme perfectly.

Format the output as clear Markdown with bold headings for each Concept.`,
		e.Name, orDefault(e.PartnerName, "Partner"), e.WeddingDate, e.GuestCount, budget, e.Preferences)
}

// UpsellPrompt asks for add-on service suggestions for an event.
func UpsellPrompt(e models.Event) string {
	return fmt.Sprintf(`You are an expert event planner and revenue optimization specialist for an event hall.
Your goal is to suggest high-value upgrades and complementary services to a client.

Client Details:
- Event Type: %s
- Event Name: %s
- Expected Guest Count: %d
- Current Preferences/Vibe: %s
- Internal Notes: %s

Based on these details, suggest 4 specific, creative, and lucrative "Elite Upgrades" or "Add-on Services".
For each suggestion:
1. **Upgrade Title**: A catchy name.
2. **Why it fits**: Explain why this specifically matches their event type/vibe.
3. **Value Proposition**: How it improves the guest experience.
4. **Estimated Upsell Tier**: (e.g., Premium, Ultra-Luxury).

Format the output as clear Markdown with bold headings.`,
		e.EventType, orNA(e.EventName), e.GuestCount,
		orDefault(e.Preferences, "General Luxury"), orDefault(e.Notes, "None"))
}

// VendorSearchPrompt asks for local vendor recommendations matched to the
// event; answered with maps grounding so the links name real places.
func VendorSearchPrompt(city, category, eventType, preferences string) string {
	return fmt.Sprintf(`You are a local event matchmaking expert. I am planning a %s in %s.
Specific Preferences for the event: %q.

Please find 5 highly rated and popular vendors in the category %q in %s that would be a perfect match for this specific event type and aesthetic.

For each vendor, include:
1. **Name and Rating**
2. **Signature Style**: Brief description of what they are known for.
3. **Why they match**: A specific sentence explaining why they are recommended for THIS specific %q and these preferences.

Provide your response in professional Markdown.`,
		orDefault(eventType, "event"), city,
		orDefault(preferences, "No specific preferences"),
		category, city, orDefault(eventType, "event"))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
