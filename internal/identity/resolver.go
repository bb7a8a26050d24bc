// Package identity resolves login and signup identifiers against the stored
// account records. There is no password credential: possession of the
// identifier is the whole authentication model.
package identity

import (
	"context"
	"errors"
	"fmt"

	"eventmanager/internal/billing"
	"eventmanager/internal/models"
	"eventmanager/internal/pricing"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRoleMismatch      = errors.New("registered as a different role")
	ErrAlreadyRegistered = errors.New("an account with this identifier already exists")
	ErrInvalidRole       = errors.New("invalid role")
)

// UserStore is the persistence surface the resolver needs.
type UserStore interface {
	// FindByIdentifier returns nil, nil when no account matches.
	FindByIdentifier(ctx context.Context, m ContactMethod) (*models.UserProfile, error)
	Insert(ctx context.Context, u models.UserProfile) error
}

// BusinessProvisioner creates an empty vendor profile for a fresh business
// signup and returns its id.
type BusinessProvisioner interface {
	EnsureProfile(ctx context.Context, u models.UserProfile) (string, error)
}

// ActivityRecorder appends audit entries; failures are logged by the
// recorder itself and never block authentication.
type ActivityRecorder interface {
	Record(ctx context.Context, actor models.UserProfile, action models.ActionType, description string)
}

// Resolver implements login and signup over the stored collections.
type Resolver struct {
	Users      UserStore
	Businesses BusinessProvisioner
	Activity   ActivityRecorder
	Clock      billing.Clock

	// AdminEmail is the reserved identifier that always resolves to the
	// owner account.
	AdminEmail string
}

// Login resolves an identifier for the requested role.
//
// The reserved admin address always yields a paid owner profile regardless
// of the requested role. For everyone else, the identifier must resolve to
// an existing account whose stored role matches the requested one.
func (r *Resolver) Login(ctx context.Context, role models.Role, identifier string) (models.UserProfile, error) {
	method := ParseIdentifier(identifier)

	if isAdminIdentifier(identifier, r.AdminEmail) {
		owner := models.UserProfile{
			Name:        "Super Admin",
			Email:       identifier,
			ContactKind: models.ContactEmail,
			Role:        models.RoleOwner,
			Country:     "United States",
			Currency:    "USD",
			CreatedAt:   r.Clock.Now(),
			IsPaid:      true,
		}
		r.Activity.Record(ctx, owner, models.ActionLogin, "Owner Access Granted")
		return owner, nil
	}

	if !role.Valid() {
		return models.UserProfile{}, ErrInvalidRole
	}

	user, err := r.Users.FindByIdentifier(ctx, method)
	if err != nil {
		return models.UserProfile{}, err
	}
	if user == nil {
		return models.UserProfile{}, ErrUserNotFound
	}
	if user.Role != role {
		return models.UserProfile{}, ErrRoleMismatch
	}

	r.Activity.Record(ctx, *user, models.ActionLogin, fmt.Sprintf("Logged in successfully via %s", method.Channel()))
	return *user, nil
}

// Signup creates a new account. Business signups auto-provision an empty
// vendor profile so the portal has something to edit immediately.
func (r *Resolver) Signup(ctx context.Context, role models.Role, name, identifier, country, businessType string) (models.UserProfile, error) {
	if role != models.RoleIndividual && role != models.RoleBusiness {
		return models.UserProfile{}, ErrInvalidRole
	}

	method := ParseIdentifier(identifier)

	existing, err := r.Users.FindByIdentifier(ctx, method)
	if err != nil {
		return models.UserProfile{}, err
	}
	if existing != nil {
		return models.UserProfile{}, ErrAlreadyRegistered
	}

	user := models.UserProfile{
		Name:        name,
		Email:       method.Value,
		ContactKind: method.Kind,
		Role:        role,
		Country:     country,
		Currency:    pricing.CurrencyFor(country),
		CreatedAt:   r.Clock.Now(),
		IsPaid:      false,
	}

	if role == models.RoleBusiness {
		user.BusinessCategory = businessType
		if r.Businesses != nil {
			businessID, err := r.Businesses.EnsureProfile(ctx, user)
			if err != nil {
				return models.UserProfile{}, err
			}
			user.BusinessID = businessID
		}
	}

	if err := r.Users.Insert(ctx, user); err != nil {
		return models.UserProfile{}, err
	}

	r.Activity.Record(ctx, user, models.ActionSignup,
		fmt.Sprintf("Created account from %s via %s", country, method.Channel()))
	return user, nil
}

func isAdminIdentifier(identifier, adminEmail string) bool {
	if adminEmail == "" {
		return false
	}
	return ContactMethod{Kind: models.ContactEmail, Value: identifier}.Matches(adminEmail)
}
