package render

import (
	"clipgenie/internal/domain/brandkit"
	"clipgenie/internal/domain/plans"
)

// WatermarkText is stamped on every clip rendered for a plan with the watermark flag.
const WatermarkText = "ClipGenie"

type Options struct {
	Title           string  `json:"title"`
	DurationSeconds float64 `json:"duration_seconds"`

	// Brand fields. The renderer copies them as given; whether the account may
	// use a brand kit is checked when the kit is read.
	Font         *string `json:"font,omitempty"`
	PrimaryColor *string `json:"primary_color,omitempty"`
	LogoPath     *string `json:"logo_path,omitempty"`
}

// WithBrandKit fills the brand fields from kit. A nil kit leaves o unchanged.
func (o Options) WithBrandKit(kit *brandkit.BrandKit) Options {
	if kit == nil {
		return o
	}
	o.Font = kit.Font
	o.PrimaryColor = kit.PrimaryColor
	o.LogoPath = kit.LogoPath
	return o
}

type Clip struct {
	Title           string            `json:"title"`
	DurationSeconds float64           `json:"duration_seconds"`
	Watermark       *string           `json:"watermark"`
	Font            *string           `json:"font"`
	PrimaryColor    *string           `json:"primary_color"`
	LogoPath        *string           `json:"logo_path"`
	Metadata        map[string]string `json:"metadata"`
}

// RenderClip renders a clip for plan, adding the watermark on plans that carry one.
func RenderClip(opts Options, plan plans.Plan) Clip {
	var watermark *string
	if plans.HasFeature(plan, plans.FeatureWatermark) {
		text := WatermarkText
		watermark = &text
	}

	return Clip{
		Title:           opts.Title,
		DurationSeconds: opts.DurationSeconds,
		Watermark:       watermark,
		Font:            opts.Font,
		PrimaryColor:    opts.PrimaryColor,
		LogoPath:        opts.LogoPath,
		Metadata:        map[string]string{"plan": string(plan)},
	}
}
