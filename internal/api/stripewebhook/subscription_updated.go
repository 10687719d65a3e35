package stripewebhooks

import (
	"context"
	"errors"
	"fmt"

	"clipgenie/internal/domain/access"
	"clipgenie/internal/domain/accounts"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

func (h *Handler) handleSubscriptionUpdated(ctx context.Context, sub *stripe.Subscription, log *zap.Logger) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	acct, err := h.findAccount(ctx, sub)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			// acknowledge to avoid Stripe retries for accounts we never saw
			log.Warn("no account for subscription", zap.String("subscription_id", sub.ID))
			return nil
		}
		return err
	}

	priceID := sub.Items.Data[0].Price.ID
	subscribed, ok := h.Prices.PlanFor(priceID)
	if !ok {
		log.Warn("subscription price is not a known plan", zap.String("price_id", priceID))
		return nil
	}

	status := string(sub.Status)
	return h.apply(ctx, acct, accounts.BillingUpdate{
		Plan:           access.EffectivePlan(&status, subscribed),
		CustomerID:     customerID(sub),
		SubscriptionID: sub.ID,
		Status:         status,
	}, log)
}

// apply persists the billing change and drops the session when the plan moved,
// since managers are bound to the plan they were built with.
func (h *Handler) apply(ctx context.Context, acct *accounts.Account, u accounts.BillingUpdate, log *zap.Logger) error {
	if err := h.Store.ApplyBilling(ctx, acct.ID, u); err != nil {
		return fmt.Errorf("apply billing: %w", err)
	}

	if acct.Plan != u.Plan {
		h.Registry.Drop(acct.ID)
	}
	log.Info("account billing updated",
		zap.String("account_id", acct.ID),
		zap.String("from", string(acct.Plan)),
		zap.String("to", string(u.Plan)),
		zap.String("status", u.Status))
	return nil
}

func (h *Handler) findAccount(ctx context.Context, sub *stripe.Subscription) (*accounts.Account, error) {
	if id := accountIDFromMetadata(sub.Metadata); id != "" {
		acct, err := h.Store.FindByID(ctx, id)
		if err == nil || !errors.Is(err, accounts.ErrNotFound) {
			return acct, err
		}
	}
	return h.Store.FindBySubscription(ctx, sub.ID)
}

func accountIDFromMetadata(md map[string]string) string {
	if md == nil {
		return ""
	}
	return md["account_id"]
}

func customerID(sub *stripe.Subscription) string {
	if sub.Customer == nil {
		return ""
	}
	return sub.Customer.ID
}
