package brandkit

import (
	"maps"

	"clipgenie/internal/domain/access"
	"clipgenie/internal/domain/plans"
)

// BrandKit holds an account's brand assets for use in generated clips.
type BrandKit struct {
	Font         *string        `json:"font"`
	PrimaryColor *string        `json:"primary_color"` // hex, e.g. "#FF5733"
	LogoPath     *string        `json:"logo_path"`     // file path or URL
	Extra        map[string]any `json:"extra"`
}

// Update is a partial update. Nil fields are left untouched; Extra entries
// are merged into the kit, overwriting keys of the same name.
type Update struct {
	Font         *string
	PrimaryColor *string
	LogoPath     *string
	Extra        map[string]any
}

// Manager manages brand-kit settings for a single account. It is not safe for
// concurrent use.
type Manager struct {
	plan plans.Plan
	kit  *BrandKit
}

func NewManager(plan plans.Plan) (*Manager, error) {
	if _, err := plans.GetPlanFeatures(plan); err != nil {
		return nil, err
	}
	return &Manager{
		plan: plan,
		kit:  &BrandKit{Extra: map[string]any{}},
	}, nil
}

// Plan is the plan the manager was built for.
func (m *Manager) Plan() plans.Plan {
	return m.plan
}

func (m *Manager) requireBrandKit() error {
	return access.Require(m.plan, plans.FeatureBrandKit, "Brand-Kit")
}

// Update applies u and returns the live kit.
func (m *Manager) Update(u Update) (*BrandKit, error) {
	if err := m.requireBrandKit(); err != nil {
		return nil, err
	}

	setString(&m.kit.Font, u.Font)
	setString(&m.kit.PrimaryColor, u.PrimaryColor)
	setString(&m.kit.LogoPath, u.LogoPath)
	maps.Copy(m.kit.Extra, u.Extra)

	return m.kit, nil
}

// setString stores a copy of *v so the caller's pointer never aliases the kit.
func setString(dst **string, v *string) {
	if v == nil {
		return
	}
	cp := *v
	*dst = &cp
}

// Get returns the live kit.
func (m *Manager) Get() (*BrandKit, error) {
	if err := m.requireBrandKit(); err != nil {
		return nil, err
	}
	return m.kit, nil
}
