package plans

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasFeature(t *testing.T) {
	tests := []struct {
		plan    Plan
		feature string
		want    bool
	}{
		{Free, FeatureWatermark, true},
		{Pro, FeatureWatermark, false},
		{Business, FeatureWatermark, false},

		{Free, FeatureBrandKit, false},
		{Pro, FeatureBrandKit, true},
		{Business, FeatureBrandKit, true},

		{Free, FeatureTeamAccess, false},
		{Pro, FeatureTeamAccess, false},
		{Business, FeatureTeamAccess, true},

		{Business, "max_team_members", false},
		{Business, "brandkit", false},
		{Pro, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan)+"/"+tt.feature, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFeature(tt.plan, tt.feature))
		})
	}
}

func TestHasFeature_UnknownPlanPanics(t *testing.T) {
	assert.Panics(t, func() { HasFeature(Plan("enterprise"), FeatureBrandKit) })
}

func TestGetPlanFeatures(t *testing.T) {
	for _, p := range All {
		first, err := GetPlanFeatures(p)
		require.NoError(t, err)
		second, err := GetPlanFeatures(p)
		require.NoError(t, err)
		assert.Equal(t, first, second, "plan %s", p)
	}

	biz, err := GetPlanFeatures(Business)
	require.NoError(t, err)
	assert.True(t, biz.MaxTeamMembers.IsUnlimited())

	free, err := GetPlanFeatures(Free)
	require.NoError(t, err)
	assert.Equal(t, Limit(0), free.MaxTeamMembers)
}

func TestGetPlanFeatures_UnknownPlan(t *testing.T) {
	_, err := GetPlanFeatures(Plan("gold"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestGetPlanFeatures_ReturnsCopy(t *testing.T) {
	f, err := GetPlanFeatures(Free)
	require.NoError(t, err)
	f.BrandKit = true

	assert.False(t, HasFeature(Free, FeatureBrandKit))
}

func TestLimit(t *testing.T) {
	assert.True(t, Unlimited.Allows(1_000_000))
	assert.False(t, Limit(0).Allows(0))
	assert.True(t, Limit(3).Allows(2))
	assert.False(t, Limit(3).Allows(3))
	assert.Equal(t, "unlimited", Unlimited.String())
	assert.Equal(t, "5", Limit(5).String())
}

func TestLimit_JSON(t *testing.T) {
	b, err := json.Marshal(MustFeatures(Business))
	require.NoError(t, err)
	assert.JSONEq(t, `{"watermark":false,"brand_kit":true,"team_access":true,"max_team_members":null}`, string(b))

	var f FeatureSet
	require.NoError(t, json.Unmarshal(b, &f))
	assert.Equal(t, MustFeatures(Business), f)

	var l Limit
	require.NoError(t, json.Unmarshal([]byte("4"), &l))
	assert.Equal(t, Limit(4), l)
}

func TestPlansWith(t *testing.T) {
	assert.Equal(t, []Plan{Pro, Business}, PlansWith(FeatureBrandKit))
	assert.Equal(t, []Plan{Business}, PlansWith(FeatureTeamAccess))
	assert.Equal(t, []Plan{Free}, PlansWith(FeatureWatermark))
	assert.Empty(t, PlansWith("nope"))

	assert.Equal(t, "Pro or Business", UpgradeHint(FeatureBrandKit))
	assert.Equal(t, "Business", UpgradeHint(FeatureTeamAccess))
}
