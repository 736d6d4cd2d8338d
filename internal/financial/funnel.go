package financial

import (
	"math"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

// funnelBurnRate is the funnel's local redemption assumption. It is
// intentionally independent of the user-configured global burn rate
// used by the tier builder and dashboard.
const funnelBurnRate = 40.0

// ProgramFunnel is the program-wide points funnel: points earned from
// purchases and missions, points redeemed, and the resulting P&L.
type ProgramFunnel struct {
	TotalCustomers      int     `json:"totalCustomers"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalPurchasePoints float64 `json:"totalPurchasePoints"`
	TotalMissionPoints  float64 `json:"totalMissionPoints"`
	TotalPointsEarned   float64 `json:"totalPointsEarned"`
	PointsRedeemed      float64 `json:"pointsRedeemed"`
	RewardsCost         float64 `json:"rewardsCost"`
	BurnCost            float64 `json:"burnCost"`
	PerkCost            float64 `json:"perkCost"`
	IncrementalRevenue  float64 `json:"incrementalRevenue"`
	GrossProfit         float64 `json:"grossProfit"`
	NetProfit           float64 `json:"netProfit"`
	ROI                 float64 `json:"roi"` // %
}

// ComputeProgramFunnel rolls the whole program up into a single funnel
// view: purchase points scaled by each tier's multiplier, mission
// points under the scenario, estimated redemptions, reward costs and
// the resulting profit.
func ComputeProgramFunnel(stats []segmentation.TierStats, missions, customMissions []loyalty.Mission, rewards []loyalty.Reward, settings loyalty.Settings, tiers []loyalty.Tier, scenarioMultiplier float64) ProgramFunnel {
	economics := DerivePointsFromCashback(settings.CashbackRate)

	var funnel ProgramFunnel
	for _, s := range stats {
		funnel.TotalCustomers += s.Count
		funnel.TotalRevenue += s.Revenue
	}

	var purchasePoints float64
	for i, s := range stats {
		multiplier := 1.0
		if i < len(tiers) && tiers[i].PointsMultiplier != 0 {
			multiplier = tiers[i].PointsMultiplier
		}
		purchasePoints += s.Revenue * economics.PointsPerEuro * multiplier
	}

	missionData := ComputeMissionPointsByTier(missions, customMissions, tiers, stats, scenarioMultiplier)
	var missionPoints float64
	for _, d := range missionData {
		missionPoints += d.TotalPoints
	}

	earned := purchasePoints + missionPoints
	rewardCosts := ComputeRewardsCost(rewards, funnelBurnRate, stats, tiers)

	funnel.TotalPurchasePoints = math.Round(purchasePoints)
	funnel.TotalMissionPoints = math.Round(missionPoints)
	funnel.TotalPointsEarned = math.Round(earned)
	funnel.PointsRedeemed = math.Round(earned * funnelBurnRate / 100)
	funnel.RewardsCost = rewardCosts.TotalCost
	funnel.BurnCost = rewardCosts.BurnCost
	funnel.PerkCost = rewardCosts.PerkCost
	funnel.IncrementalRevenue = rewardCosts.IncrementalRevenue

	funnel.GrossProfit = rewardCosts.IncrementalRevenue * (settings.GrossMargin / 100)
	funnel.NetProfit = funnel.GrossProfit - rewardCosts.TotalCost
	if rewardCosts.TotalCost > 0 {
		funnel.ROI = funnel.NetProfit / rewardCosts.TotalCost * 100
	}

	return funnel
}
