package billing

import (
	"context"
	"time"

	"eventmanager/internal/models"
)

// Descriptions written to the transaction ledger, one per role.
const (
	DescriptionBusiness   = "Monthly Subscription"
	DescriptionIndividual = "Event Inquiry Fee"
)

// TransactionDescription picks the ledger description for a payer role.
func TransactionDescription(role models.Role) string {
	if role == models.RoleBusiness {
		return DescriptionBusiness
	}
	return DescriptionIndividual
}

// Provider charges a payment method. The original application has no real
// gateway; the interface exists so one can be slotted in without touching
// the completion flow.
type Provider interface {
	Charge(ctx context.Context, amount float64, currency string) error
}

// SimulatedProvider reproduces the original behavior: a fixed processing
// delay after which success is assumed unconditionally.
type SimulatedProvider struct {
	Delay time.Duration
}

func (p SimulatedProvider) Charge(ctx context.Context, amount float64, currency string) error {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
