package access

import (
	"fmt"

	"clipgenie/internal/domain/plans"
)

type Policy struct {
	Plan           plans.Plan  `json:"plan"`
	Capabilities   []string    `json:"capabilities"`
	Watermark      bool        `json:"watermark"`
	MaxTeamMembers plans.Limit `json:"max_team_members"`
}

// ComputePolicy summarises what a plan allows, for host-side affordances such as
// hiding the team tab or showing an upgrade banner.
func ComputePolicy(p plans.Plan) (Policy, error) {
	features, err := plans.GetPlanFeatures(p)
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		Plan:           p,
		Capabilities:   CapabilitiesFor(features),
		Watermark:      features.Watermark,
		MaxTeamMembers: features.MaxTeamMembers,
	}, nil
}

// Require returns a PermissionDenied error unless p includes feature.
// label is the feature's user-facing name, e.g. "Brand-Kit".
func Require(p plans.Plan, feature, label string) error {
	if plans.HasFeature(p, feature) {
		return nil
	}

	hint := plans.UpgradeHint(feature)
	return &Error{
		Kind:    PermissionDenied,
		Plan:    p,
		Upgrade: hint,
		Message: fmt.Sprintf("%s is not available on the %q plan. Upgrade to %s to use this feature.", label, string(p), hint),
	}
}
