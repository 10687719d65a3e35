package access

import (
	"clipgenie/internal/domain/plans"
	"clipgenie/internal/infra/stripe"
)

// EffectivePlan is the plan an account actually gets for a subscription in the
// given Stripe status. Only live subscriptions keep their paid plan.
func EffectivePlan(status *string, subscribed plans.Plan) plans.Plan {
	if stripe.NormalizeStripeStatus(status).Entitled() && subscribed.Valid() {
		return subscribed
	}
	return plans.Free
}
