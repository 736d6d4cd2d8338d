package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/brand"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

func TestApplyBrandDefaults_Luxury(t *testing.T) {
	bundle := ApplyBrandDefaults(brand.Analysis{
		RecommendedProgram: "luxury",
		EstimatedAOV:       300,
		EstimatedMargin:    0.7,
		SuggestedTierNames: []string{"Insider", "Privilege", "Icon"},
	})

	assert.False(t, bundle.Config.HasMissions)
	assert.Equal(t, "perks", bundle.Config.RewardType)
	assert.Zero(t, bundle.Settings.CashbackRate)
	assert.Equal(t, 70.0, bundle.Settings.GrossMargin)

	require.Len(t, bundle.Tiers, 3)
	assert.Equal(t, "Insider", bundle.Tiers[0].Name)
	assert.Equal(t, 10.0, bundle.Tiers[2].Threshold)

	// Luxury keeps no missions at all.
	assert.Empty(t, bundle.Missions)

	// Perks only, scaled off the AOV.
	for _, r := range bundle.Rewards {
		assert.Equal(t, loyalty.UsagePerk, r.RewardUsage)
	}
}

func TestApplyBrandDefaults_MidFiltersMissions(t *testing.T) {
	bundle := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: "mid", EstimatedAOV: 80, EstimatedMargin: 0.5})

	ids := map[string]bool{}
	for _, m := range bundle.Missions {
		ids[m.ID] = true
	}

	assert.True(t, ids["referral"])
	assert.True(t, ids["review"])
	assert.False(t, ids["social_share"], "mid programs drop low-value missions")
	assert.False(t, ids["newsletter"])
}

func TestApplyBrandDefaults_CashbackRemappedToMass(t *testing.T) {
	cashback := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: "cashback"})
	mass := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: "mass"})

	assert.Equal(t, mass.Settings.CashbackRate, cashback.Settings.CashbackRate)
	assert.Equal(t, mass.BurnRate, cashback.BurnRate)
	assert.Equal(t, 4.0, cashback.Settings.CashbackRate)
}

func TestApplyBrandDefaults_Fallbacks(t *testing.T) {
	bundle := ApplyBrandDefaults(brand.Analysis{
		RecommendedProgram: "unknown",
		SuggestedTierNames: []string{"only-two", "names"},
	})

	// Unknown program type behaves as mid; missing AOV and margin get
	// defaults; a malformed tier name list falls back to the classics.
	assert.Equal(t, 3.0, bundle.Settings.CashbackRate)
	assert.Equal(t, 60.0, bundle.Settings.AOV)
	assert.Equal(t, 50.0, bundle.Settings.GrossMargin)
	require.Len(t, bundle.Tiers, 3)
	assert.Equal(t, []string{bundle.Tiers[0].Name, bundle.Tiers[1].Name, bundle.Tiers[2].Name},
		[]string{"Bronze", "Silver", "Gold"})
}

func TestApplyBrandDefaults_RewardsScaleWithAOV(t *testing.T) {
	small := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: "mid", EstimatedAOV: 40, EstimatedMargin: 0.5})
	large := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: "mid", EstimatedAOV: 400, EstimatedMargin: 0.5})

	// The -10% reward's real cost tracks the AOV.
	assert.Equal(t, 4.0, small.Rewards[1].RealCost)
	assert.Equal(t, 40.0, large.Rewards[1].RealCost)
	assert.Equal(t, 600.0, large.Rewards[1].MinPurchase)
}

func TestApplyBrandDefaults_ValidTiers(t *testing.T) {
	for _, program := range []string{"luxury", "mid", "mass", "cashback"} {
		bundle := ApplyBrandDefaults(brand.Analysis{RecommendedProgram: program})
		assert.NoError(t, loyalty.ValidateTiers(bundle.Tiers, bundle.Config.TierBasis), program)
	}
}
