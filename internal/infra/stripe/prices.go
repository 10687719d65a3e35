package stripe

import (
	"strings"

	"clipgenie/internal/domain/plans"
)

// PriceMap maps Stripe price IDs to the plan they sell.
type PriceMap map[string]plans.Plan

// NewPriceMap builds the map from configured price IDs. Empty IDs are skipped.
func NewPriceMap(proPriceID, businessPriceID string) PriceMap {
	m := PriceMap{}
	if id := strings.TrimSpace(proPriceID); id != "" {
		m[id] = plans.Pro
	}
	if id := strings.TrimSpace(businessPriceID); id != "" {
		m[id] = plans.Business
	}
	return m
}

// PlanFor returns the plan for a price, or false when the price is not ours.
func (m PriceMap) PlanFor(priceID string) (plans.Plan, bool) {
	p, ok := m[strings.TrimSpace(priceID)]
	return p, ok
}
