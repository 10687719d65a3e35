package stripe

import "strings"

// Status is a Stripe subscription status collapsed to the values plan gating
// cares about.
type Status string

const (
	StatusNone     Status = "none"
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
)

// Entitled reports whether a subscription in this status keeps its paid plan.
func (s Status) Entitled() bool {
	return s == StatusActive || s == StatusTrialing
}

// NormalizeStripeStatus maps a raw subscription status onto Status. Statuses
// Stripe adds later pass through trimmed and are never entitled.
func NormalizeStripeStatus(s *string) Status {
	if s == nil || strings.TrimSpace(*s) == "" {
		return StatusNone
	}
	switch raw := strings.TrimSpace(*s); raw {
	case "active":
		return StatusActive
	case "trialing":
		return StatusTrialing
	case "past_due", "unpaid":
		return StatusPastDue
	case "canceled", "incomplete_expired":
		return StatusCanceled
	default:
		return Status(raw)
	}
}
