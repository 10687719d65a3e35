package plans

import (
	"errors"
	"fmt"
	"strings"
)

// Plan is a subscription tier. It is used as the lookup key into the feature registry.
type Plan string

// Tier constants (single source of truth)
const (
	Free     Plan = "free"
	Pro      Plan = "pro"
	Business Plan = "business"
)

// All lists every plan from lowest to highest tier.
var All = []Plan{Free, Pro, Business}

// ErrUnknownPlan is returned when a plan is not one of All.
var ErrUnknownPlan = errors.New("unknown plan")

func (p Plan) String() string {
	return string(p)
}

// DisplayName is the capitalised name used in user-facing messages ("Pro").
func (p Plan) DisplayName() string {
	switch p {
	case Free:
		return "Free"
	case Pro:
		return "Pro"
	case Business:
		return "Business"
	default:
		return string(p)
	}
}

// Valid reports whether p has an entry in the registry.
func (p Plan) Valid() bool {
	_, ok := registry[p]
	return ok
}

// Parse normalizes a plan name coming from a token, a request or the database.
func Parse(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlan, s)
	}
	return p, nil
}
