// Package billing holds the trial countdown and the gates that decide when a
// protected action must pass through payment first.
package billing

import (
	"time"

	"eventmanager/internal/models"
)

// Clock abstracts "now" so trial math is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DaysRemaining computes how many whole trial days are left for an account
// created at createdAt. Elapsed time is floored to whole days, so the value
// decreases by exactly one per elapsed day. Zero or negative means expired.
func DaysRemaining(createdAt, now time.Time, trialDays int) int {
	elapsed := int(now.Sub(createdAt).Hours() / 24)
	return trialDays - elapsed
}

// BusinessBillingRequired reports whether a business account must see the
// billing step before continuing. Paid accounts never hit the gate.
func BusinessBillingRequired(u models.UserProfile, now time.Time, trialDays int) bool {
	if u.Role != models.RoleBusiness || u.IsPaid {
		return false
	}
	return DaysRemaining(u.CreatedAt, now, trialDays) <= 0
}

// IndividualBillingRequired gates event creation for individuals: a free
// account may hold at most one non-cancelled event. The count excludes
// cancelled events.
func IndividualBillingRequired(u models.UserProfile, activeEventCount int) bool {
	if u.Role != models.RoleIndividual || u.IsPaid {
		return false
	}
	return activeEventCount >= 1
}

// CountActiveEvents counts the user's non-cancelled events, matching by
// login identifier the same way the portal filtered its lists.
func CountActiveEvents(identifier string, events []models.Event) int {
	n := 0
	for _, e := range events {
		if e.Status == models.StatusCancelled {
			continue
		}
		if e.BelongsTo(identifier) {
			n++
		}
	}
	return n
}
