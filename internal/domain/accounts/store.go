package accounts

import (
	"context"
	"errors"

	"clipgenie/internal/domain/plans"
)

var ErrNotFound = errors.New("account not found")

type Store interface {
	// FindOrCreate returns the account, creating it on the free plan when missing.
	FindOrCreate(ctx context.Context, id, ownerID string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindBySubscription(ctx context.Context, subscriptionID string) (*Account, error)
	SetPlan(ctx context.Context, id string, plan plans.Plan) error
	ApplyBilling(ctx context.Context, id string, u BillingUpdate) error
}

func applyBilling(a *Account, u BillingUpdate) {
	a.Plan = u.Plan
	if u.CustomerID != "" {
		a.StripeCustomerID = &u.CustomerID
	}
	if u.SubscriptionID != "" {
		a.StripeSubscriptionID = &u.SubscriptionID
	}
	if u.Status != "" {
		a.StripeSubscriptionStatus = &u.Status
	}
}
