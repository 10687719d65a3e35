package stripewebhooks

import (
	"context"
	"errors"

	"clipgenie/internal/domain/accounts"
	"clipgenie/internal/domain/plans"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

func (h *Handler) handleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription, log *zap.Logger) error {
	if sub.ID == "" {
		return nil
	}

	acct, err := h.findAccount(ctx, sub)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil
		}
		return err
	}

	status := string(sub.Status)
	if status == "" {
		status = "canceled"
	}
	return h.apply(ctx, acct, accounts.BillingUpdate{
		Plan:           plans.Free,
		CustomerID:     customerID(sub),
		SubscriptionID: sub.ID,
		Status:         status,
	}, log)
}
