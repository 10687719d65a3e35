package plans

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Feature names understood by HasFeature.
const (
	FeatureWatermark  = "watermark"
	FeatureBrandKit   = "brand_kit"
	FeatureTeamAccess = "team_access"
)

// Limit is a capacity. Unlimited means no bound.
type Limit int

const Unlimited Limit = -1

func (l Limit) IsUnlimited() bool {
	return l < 0
}

// Allows reports whether one more item fits when count items are already held.
func (l Limit) Allows(count int) bool {
	return l.IsUnlimited() || count < int(l)
}

func (l Limit) String() string {
	if l.IsUnlimited() {
		return "unlimited"
	}
	return strconv.Itoa(int(l))
}

// MarshalJSON encodes Unlimited as null.
func (l Limit) MarshalJSON() ([]byte, error) {
	if l.IsUnlimited() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(l))), nil
}

func (l *Limit) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = Unlimited
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("plans: limit: %w", err)
	}
	*l = Limit(n)
	return nil
}

// FeatureSet is the fixed record of flags and limits for one plan.
type FeatureSet struct {
	Watermark      bool  `json:"watermark"`
	BrandKit       bool  `json:"brand_kit"`
	TeamAccess     bool  `json:"team_access"`
	MaxTeamMembers Limit `json:"max_team_members"`
}

// Has returns the boolean interpretation of a named feature.
// Unknown names are false, and so is max_team_members: it is a limit, not a flag.
func (f FeatureSet) Has(name string) bool {
	switch name {
	case FeatureWatermark:
		return f.Watermark
	case FeatureBrandKit:
		return f.BrandKit
	case FeatureTeamAccess:
		return f.TeamAccess
	default:
		return false
	}
}

// Never mutated after init. FeatureSet is a value type so callers only ever get copies.
var registry = map[Plan]FeatureSet{
	Free: {
		Watermark:      true,
		BrandKit:       false,
		TeamAccess:     false,
		MaxTeamMembers: 0,
	},
	Pro: {
		Watermark:      false,
		BrandKit:       true,
		TeamAccess:     false,
		MaxTeamMembers: 0,
	},
	Business: {
		Watermark:      false,
		BrandKit:       true,
		TeamAccess:     true,
		MaxTeamMembers: Unlimited,
	},
}

// GetPlanFeatures returns the feature set for a plan.
func GetPlanFeatures(p Plan) (FeatureSet, error) {
	f, ok := registry[p]
	if !ok {
		return FeatureSet{}, fmt.Errorf("%w: %q", ErrUnknownPlan, string(p))
	}
	return f, nil
}

// MustFeatures is GetPlanFeatures for plans already known to be valid.
// An unknown plan is a programming error and panics.
func MustFeatures(p Plan) FeatureSet {
	f, err := GetPlanFeatures(p)
	if err != nil {
		panic(err)
	}
	return f
}

// HasFeature checks whether a plan includes a specific feature.
//
// Unknown feature names return false rather than an error, so a misspelled
// name silently reads as "not included". Panics on an unknown plan.
func HasFeature(p Plan, feature string) bool {
	return MustFeatures(p).Has(feature)
}

// PlansWith lists, lowest tier first, the plans that include feature.
func PlansWith(feature string) []Plan {
	var out []Plan
	for _, p := range All {
		if registry[p].Has(feature) {
			out = append(out, p)
		}
	}
	return out
}

// UpgradeHint names the plans that grant feature, e.g. "Pro or Business".
func UpgradeHint(feature string) string {
	granting := PlansWith(feature)
	names := make([]string, 0, len(granting))
	for _, p := range granting {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, " or ")
}
