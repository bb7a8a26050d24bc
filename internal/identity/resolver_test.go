package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmanager/internal/models"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type fakeUserStore struct {
	users []models.UserProfile
}

func (s *fakeUserStore) FindByIdentifier(_ context.Context, m ContactMethod) (*models.UserProfile, error) {
	for i := range s.users {
		if m.Matches(s.users[i].Email) {
			return &s.users[i], nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Insert(_ context.Context, u models.UserProfile) error {
	s.users = append(s.users, u)
	return nil
}

type fakeProvisioner struct{ provisioned int }

func (p *fakeProvisioner) EnsureProfile(_ context.Context, _ models.UserProfile) (string, error) {
	p.provisioned++
	return "biz-1", nil
}

type fakeRecorder struct {
	entries []models.ActivityLog
}

func (r *fakeRecorder) Record(_ context.Context, actor models.UserProfile, action models.ActionType, description string) {
	r.entries = append(r.entries, models.ActivityLog{
		UserID:      actor.Email,
		UserName:    actor.Name,
		UserRole:    actor.Role,
		ActionType:  action,
		Description: description,
	})
}

func newResolver(users ...models.UserProfile) (*Resolver, *fakeUserStore, *fakeRecorder) {
	store := &fakeUserStore{users: users}
	rec := &fakeRecorder{}
	r := &Resolver{
		Users:      store,
		Businesses: &fakeProvisioner{},
		Activity:   rec,
		Clock:      fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		AdminEmail: "admin@eventmanager.com",
	}
	return r, store, rec
}

func TestLoginAdminAddressAlwaysResolvesToPaidOwner(t *testing.T) {
	r, _, rec := newResolver()

	for _, role := range []models.Role{models.RoleIndividual, models.RoleBusiness, models.RoleOwner} {
		user, err := r.Login(context.Background(), role, "Admin@EventManager.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleOwner, user.Role)
		assert.True(t, user.IsPaid)
	}
	require.Len(t, rec.entries, 3)
	assert.Equal(t, "Owner Access Granted", rec.entries[0].Description)
}

func TestLoginUnknownIdentifierRejected(t *testing.T) {
	r, _, _ := newResolver()

	_, err := r.Login(context.Background(), models.RoleIndividual, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginRoleMismatchRejected(t *testing.T) {
	r, _, _ := newResolver(models.UserProfile{
		Name: "Elena", Email: "elena@royalhall.com", Role: models.RoleBusiness,
	})

	_, err := r.Login(context.Background(), models.RoleIndividual, "elena@royalhall.com")
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestLoginMatchesEmailCaseInsensitively(t *testing.T) {
	r, _, rec := newResolver(models.UserProfile{
		Name: "Emily", Email: "emily.clarke@example.com", Role: models.RoleIndividual,
	})

	user, err := r.Login(context.Background(), models.RoleIndividual, "EMILY.CLARKE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Emily", user.Name)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "Logged in successfully via Email", rec.entries[0].Description)
}

func TestLoginMatchesPhoneExactly(t *testing.T) {
	r, _, rec := newResolver(models.UserProfile{
		Name: "Sarah", Email: "555-0102", ContactKind: models.ContactPhone, Role: models.RoleIndividual,
	})

	user, err := r.Login(context.Background(), models.RoleIndividual, "555-0102")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", user.Name)
	assert.Equal(t, "Logged in successfully via Mobile", rec.entries[0].Description)

	_, err = r.Login(context.Background(), models.RoleIndividual, "555-0103")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSignupDuplicateIdentifierRejected(t *testing.T) {
	r, _, _ := newResolver(models.UserProfile{
		Name: "Emily", Email: "emily.clarke@example.com", Role: models.RoleIndividual,
	})

	_, err := r.Signup(context.Background(), models.RoleIndividual, "Emily Again", "emily.clarke@example.com", "United States", "")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestSignupDerivesCurrencyFromCountry(t *testing.T) {
	r, store, rec := newResolver()

	user, err := r.Signup(context.Background(), models.RoleBusiness, "Grand Marquee", "halls@grandmarquee.pk", "Pakistan", "Venue / Hall Services")
	require.NoError(t, err)
	assert.Equal(t, "PKR", user.Currency)
	assert.Equal(t, "biz-1", user.BusinessID)
	assert.False(t, user.IsPaid)
	require.Len(t, store.users, 1)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.ActionSignup, rec.entries[0].ActionType)
	assert.Equal(t, "Created account from Pakistan via Email", rec.entries[0].Description)
}

func TestSignupUnknownCountryFallsBackToUSD(t *testing.T) {
	r, _, _ := newResolver()

	user, err := r.Signup(context.Background(), models.RoleIndividual, "Jo", "jo@example.com", "Atlantis", "")
	require.NoError(t, err)
	assert.Equal(t, "USD", user.Currency)
}

func TestSignupOwnerRoleRejected(t *testing.T) {
	r, _, _ := newResolver()

	_, err := r.Signup(context.Background(), models.RoleOwner, "Boss", "boss@example.com", "United States", "")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseIdentifierHeuristic(t *testing.T) {
	assert.Equal(t, models.ContactEmail, ParseIdentifier("a@b").Kind)
	assert.Equal(t, models.ContactPhone, ParseIdentifier("555-0101").Kind)
	// The rule is a bare substring check, not validation.
	assert.Equal(t, models.ContactEmail, ParseIdentifier("@").Kind)
}
