package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

func testInput(customerCount int) SimulationInput {
	customers := make([]loyalty.Customer, customerCount)
	for i := range customers {
		customers[i] = loyalty.Customer{
			CustomerID:      fmt.Sprintf("c%d", i),
			TotalOrderedTTC: float64(10*(customerCount-i) + 50),
			NumberOfOrders:  1 + i%5,
		}
	}
	return SimulationInput{
		Customers: customers,
		Config:    loyalty.ProgramConfig{TierBasis: loyalty.BasisSpend},
		Settings: loyalty.Settings{
			SegmentationType: loyalty.SegmentRevenue,
			CAWeight:         0.5,
			GrossMargin:      50,
			CashbackRate:     3,
		},
		Tiers: []loyalty.Tier{
			{Name: "Bronze", Threshold: 100, PointsMultiplier: 1},
			{Name: "Silver", Threshold: 50, PointsMultiplier: 1.5},
			{Name: "Gold", Threshold: 15, PointsMultiplier: 2},
		},
		Rewards: []loyalty.Reward{
			{ID: "r1", RewardUsage: loyalty.UsageBurn, RealCost: 5, MinPurchase: 50,
				AssignedTiers: []bool{true, true, true}, UtilizationByTier: []float64{20, 35, 50}},
		},
		Missions: []loyalty.Mission{
			{ID: "review", Points: 100, Frequency: 3, Enabled: true, EngagementByTier: []float64{10, 25, 45}},
		},
		BurnRate: 40,
	}
}

func TestRun_FullPipeline(t *testing.T) {
	result := Run(testInput(100))

	require.Len(t, result.Customers, 100)
	require.Len(t, result.TierStats, 3)
	require.Len(t, result.TierPoints, 3)
	require.Len(t, result.MissionPoints, 3)
	require.Len(t, result.TierFinancials, 3)
	require.Len(t, result.Projection, 12)

	// Percentile split under [100, 50, 15].
	assert.Equal(t, 50, result.TierStats[0].Count)
	assert.Equal(t, 35, result.TierStats[1].Count)
	assert.Equal(t, 15, result.TierStats[2].Count)

	// Per-tier points carry the tier multiplier.
	gold := result.TierPoints[2]
	assert.InDelta(t, result.TierStats[2].Revenue*3*2, gold.PurchasePoints, 1e-6)
	assert.Equal(t, gold.PurchasePoints+gold.MissionPoints, gold.TotalPoints)

	// Every customer keeps a valid tier index.
	for _, c := range result.Customers {
		assert.GreaterOrEqual(t, c.Tier, 0)
		assert.Less(t, c.Tier, 3)
	}
}

func TestRun_SummaryIsSumOfTiers(t *testing.T) {
	result := Run(testInput(100))

	var cost, revenue, gross, net float64
	for _, fin := range result.TierFinancials {
		cost += fin.RewardsCost
		revenue += fin.IncrementalRevenue
		gross += fin.GrossProfit
		net += fin.NetProfit
	}

	assert.InDelta(t, cost, result.Program.RewardsCost, 1e-6)
	assert.InDelta(t, revenue, result.Program.IncrementalRevenue, 1e-6)
	assert.InDelta(t, gross, result.Program.GrossProfit, 1e-6)
	assert.InDelta(t, net, result.Program.NetProfit, 1e-6)
}

func TestRun_Deterministic(t *testing.T) {
	in := testInput(200)

	first := Run(in)
	second := Run(in)

	assert.Equal(t, first, second)
}

func TestRun_EmptyInputIsValid(t *testing.T) {
	result := Run(SimulationInput{
		Tiers: []loyalty.Tier{{Name: "Bronze", Threshold: 100}},
	})

	assert.Empty(t, result.Customers)
	require.Len(t, result.TierStats, 1)
	assert.Zero(t, result.TierStats[0].Count)
	assert.Zero(t, result.Program.RewardsCost)
	assert.Zero(t, result.Funnel.TotalPointsEarned)
	require.Len(t, result.Projection, 12)
}

func TestRun_ExpirationLoss(t *testing.T) {
	in := testInput(10)
	in.Config.PointsExpire = true
	in.Config.ExpirationMonths = 12
	in.Config.ExpirationType = loyalty.ExpirationRolling

	result := Run(in)
	assert.InDelta(t, 30, result.ExpirationLoss, 1e-9)

	in.Config.PointsExpire = false
	result = Run(in)
	assert.Zero(t, result.ExpirationLoss)
}

func TestRun_ScenarioAffectsMissionPoints(t *testing.T) {
	in := testInput(100)

	base := Run(in)

	in.ScenarioMultiplier = 1.4
	high := Run(in)

	var baseTotal, highTotal float64
	for i := range base.MissionPoints {
		baseTotal += base.MissionPoints[i].TotalPoints
		highTotal += high.MissionPoints[i].TotalPoints
	}
	assert.Greater(t, highTotal, baseTotal)
}
