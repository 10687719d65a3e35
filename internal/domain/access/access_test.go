package access

import (
	"errors"
	"fmt"
	"testing"

	"clipgenie/internal/domain/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	require.NoError(t, Require(plans.Pro, plans.FeatureBrandKit, "Brand-Kit"))
	require.NoError(t, Require(plans.Business, plans.FeatureTeamAccess, "Team access"))

	err := Require(plans.Free, plans.FeatureBrandKit, "Brand-Kit")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Brand-Kit")
	assert.Contains(t, err.Error(), `"free"`)
	assert.Contains(t, err.Error(), "Upgrade to Pro or Business")

	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, plans.Free, aerr.Plan)
	assert.Equal(t, "Pro or Business", aerr.Upgrade)

	err = Require(plans.Pro, plans.FeatureTeamAccess, "Team access")
	assert.Contains(t, err.Error(), "Upgrade to Business")
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("team: %w", &Error{Kind: DuplicateEntry, Message: "dup"})

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, DuplicateEntry, kind)
	assert.ErrorIs(t, wrapped, ErrDuplicateEntry)

	_, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestComputePolicy(t *testing.T) {
	tests := []struct {
		plan      plans.Plan
		caps      []string
		watermark bool
	}{
		{plans.Free, []string{CapabilityRender}, true},
		{plans.Pro, []string{CapabilityRender, CapabilityWatermarkRemoval, CapabilityBrandKit}, false},
		{plans.Business, []string{CapabilityRender, CapabilityWatermarkRemoval, CapabilityBrandKit, CapabilityTeam}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			p, err := ComputePolicy(tt.plan)
			require.NoError(t, err)
			assert.Equal(t, tt.caps, p.Capabilities)
			assert.Equal(t, tt.watermark, p.Watermark)
		})
	}

	_, err := ComputePolicy(plans.Plan("gold"))
	assert.ErrorIs(t, err, plans.ErrUnknownPlan)
}

func TestEffectivePlan(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name   string
		status *string
		plan   plans.Plan
		want   plans.Plan
	}{
		{"active business", str("active"), plans.Business, plans.Business},
		{"trialing pro", str("trialing"), plans.Pro, plans.Pro},
		{"past due", str("past_due"), plans.Business, plans.Free},
		{"unpaid", str("unpaid"), plans.Pro, plans.Free},
		{"canceled", str("canceled"), plans.Pro, plans.Free},
		{"no status", nil, plans.Pro, plans.Free},
		{"active unknown plan", str("active"), plans.Plan("gold"), plans.Free},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePlan(tt.status, tt.plan))
		})
	}
}
