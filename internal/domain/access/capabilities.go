package access

import (
	"clipgenie/internal/domain/plans"
)

const (
	CapabilityRender           = "render"
	CapabilityWatermarkRemoval = "watermark_removal"
	CapabilityBrandKit         = "brand_kit"
	CapabilityTeam             = "team"
)

func CapabilitiesFor(f plans.FeatureSet) []string {
	caps := []string{CapabilityRender}

	if !f.Watermark {
		caps = append(caps, CapabilityWatermarkRemoval)
	}
	if f.BrandKit {
		caps = append(caps, CapabilityBrandKit)
	}
	if f.TeamAccess {
		caps = append(caps, CapabilityTeam)
	}
	return caps
}
