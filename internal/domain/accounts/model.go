package accounts

import (
	"time"

	"clipgenie/internal/domain/plans"
)

type Account struct {
	ID      string     `gorm:"primaryKey;type:varchar(64)"`
	OwnerID string     `gorm:"not null;index"`
	Plan    plans.Plan `gorm:"type:varchar(20);not null;default:'free'"`

	StripeCustomerID         *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_accounts_stripe_customer_id"`
	StripeSubscriptionID     *string `gorm:"column:stripe_subscription_id;uniqueIndex:idx_accounts_stripe_subscription_id"`
	StripeSubscriptionStatus *string `gorm:"column:stripe_subscription_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BillingUpdate is what a Stripe subscription event changes on an account.
type BillingUpdate struct {
	Plan           plans.Plan
	CustomerID     string
	SubscriptionID string
	Status         string
}
