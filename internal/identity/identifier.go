package identity

import (
	"strings"

	"eventmanager/internal/models"
)

// ContactMethod is a login identifier classified once at the boundary. The
// classification rule is a bare '@' substring check; many screens rely on
// exactly this boundary to decide which contact field to fill, so it must
// not be strengthened into real format validation.
type ContactMethod struct {
	Kind  models.ContactKind
	Value string
}

// ParseIdentifier classifies a raw identifier string.
func ParseIdentifier(identifier string) ContactMethod {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return ContactMethod{Kind: models.ContactEmail, Value: identifier}
	}
	return ContactMethod{Kind: models.ContactPhone, Value: identifier}
}

// Matches reports whether the identifier resolves to the given stored
// identifier: case-insensitive for emails, exact for phone strings.
func (m ContactMethod) Matches(stored string) bool {
	if m.Kind == models.ContactEmail {
		return strings.EqualFold(stored, m.Value)
	}
	return stored == m.Value
}

// Channel names the login channel for activity descriptions.
func (m ContactMethod) Channel() string {
	if m.Kind == models.ContactEmail {
		return "Email"
	}
	return "Mobile"
}
