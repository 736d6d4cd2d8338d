package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

func TestCompute12MonthProjection(t *testing.T) {
	tiers := []loyalty.Tier{{Name: "T"}}
	stats := []segmentation.TierStats{{TierIndex: 0, Count: 120, Revenue: 12000}}
	rewards := []loyalty.Reward{{
		ID:                "r1",
		RewardUsage:       loyalty.UsageBurn,
		RealCost:          10,
		MinPurchase:       100,
		AssignedTiers:     []bool{true},
		UtilizationByTier: []float64{50},
	}}
	settings := loyalty.Settings{GrossMargin: 50}

	months := Compute12MonthProjection(stats, rewards, settings, tiers, 1)

	require.Len(t, months, 12)

	// Month 12 at full utilization: cost 120×10×0.5 = 600,
	// revenue 120×100×0.5 = 6000, profit 6000×0.5 − 600 = 2400.
	last := months[11]
	assert.Equal(t, 12, last.Month)
	assert.Equal(t, 600.0, last.Cost)
	assert.Equal(t, 6000.0, last.Revenue)
	assert.Equal(t, 2400.0, last.Profit)

	// Month 6 is halfway up the ramp.
	assert.Equal(t, 300.0, months[5].Cost)
	assert.Equal(t, 3000.0, months[5].Revenue)

	// The ramp never decreases.
	for m := 1; m < 12; m++ {
		assert.GreaterOrEqual(t, months[m].Cost, months[m-1].Cost)
		assert.GreaterOrEqual(t, months[m].Revenue, months[m-1].Revenue)
	}
}

func TestCompute12MonthProjection_ScenarioScales(t *testing.T) {
	tiers := []loyalty.Tier{{Name: "T"}}
	stats := []segmentation.TierStats{{TierIndex: 0, Count: 100, Revenue: 0}}
	rewards := []loyalty.Reward{{
		ID:                "r1",
		RewardUsage:       loyalty.UsageBurn,
		RealCost:          10,
		AssignedTiers:     []bool{true},
		UtilizationByTier: []float64{50},
	}}

	base := Compute12MonthProjection(stats, rewards, loyalty.Settings{}, tiers, 1)
	high := Compute12MonthProjection(stats, rewards, loyalty.Settings{}, tiers, 1.4)

	assert.Equal(t, 500.0, base[11].Cost)
	assert.Equal(t, 700.0, high[11].Cost)
}

func TestCompute12MonthProjection_DefaultUtilization(t *testing.T) {
	tiers := []loyalty.Tier{{Name: "T"}}
	stats := []segmentation.TierStats{{TierIndex: 0, Count: 100, Revenue: 0}}
	rewards := []loyalty.Reward{{
		ID:            "r1",
		RewardUsage:   loyalty.UsageBurn,
		RealCost:      10,
		AssignedTiers: []bool{true},
	}}

	months := Compute12MonthProjection(stats, rewards, loyalty.Settings{}, tiers, 1)

	// No per-tier utilization: the default 30% applies at full ramp.
	assert.Equal(t, 300.0, months[11].Cost)
}

func TestCompute12MonthProjection_EmptyInput(t *testing.T) {
	months := Compute12MonthProjection(nil, nil, loyalty.Settings{}, nil, 1)

	require.Len(t, months, 12)
	for _, m := range months {
		assert.Zero(t, m.Cost)
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.Profit)
	}
}
