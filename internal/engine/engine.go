// Package engine runs the full simulation pipeline in one pass:
// scoring, tier assignment, tier stats, points/mission/reward
// economics, then the financial rollup. It is stateless and does no
// I/O, so a single call is cheap to repeat on every configuration
// change and the package is safe for concurrent callers.
package engine

import (
	"github.com/ARR-GOD/vip-tiers-calculator/internal/financial"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

// SimulationInput is everything one simulation run needs. Plain data;
// the caller owns state and re-invokes on change.
type SimulationInput struct {
	Customers          []loyalty.Customer    `json:"customers"`
	Config             loyalty.ProgramConfig `json:"config"`
	Settings           loyalty.Settings      `json:"settings"`
	Tiers              []loyalty.Tier        `json:"tiers"`
	Rewards            []loyalty.Reward      `json:"rewards"`
	Missions           []loyalty.Mission     `json:"missions"`
	CustomMissions     []loyalty.Mission     `json:"customMissions"`
	BurnRate           float64               `json:"burnRate"`
	ScenarioMultiplier float64               `json:"scenarioMultiplier"` // 0 means 1.0
}

// TierPoints is the yearly points generation of one tier.
type TierPoints struct {
	TierIndex      int     `json:"tierIndex"`
	PurchasePoints float64 `json:"purchasePoints"`
	MissionPoints  float64 `json:"missionPoints"`
	TotalPoints    float64 `json:"totalPoints"`
}

// ProgramSummary is the program-wide financial rollup. Totals are the
// sums of the per-tier values, never recomputed independently, so the
// dashboard and the tier table can never disagree.
type ProgramSummary struct {
	RewardsCost        float64 `json:"rewardsCost"`
	IncrementalRevenue float64 `json:"incrementalRevenue"`
	GrossProfit        float64 `json:"grossProfit"`
	NetProfit          float64 `json:"netProfit"`
	ROI                float64 `json:"roi"` // %
}

// SimulationResult is the full output of one pipeline pass. Every field
// is plain and JSON-serializable.
type SimulationResult struct {
	Customers      []loyalty.ScoredCustomer         `json:"customers"`
	TierStats      []segmentation.TierStats         `json:"tierStats"`
	TierPoints     []TierPoints                     `json:"tierPoints"`
	MissionPoints  []financial.MissionTierBreakdown `json:"missionPoints"`
	RewardCosts    financial.RewardCostSummary      `json:"rewardCosts"`
	TierFinancials []financial.TierFinancials       `json:"tierFinancials"`
	Program        ProgramSummary                   `json:"program"`
	Funnel         financial.ProgramFunnel          `json:"funnel"`
	Projection     []financial.MonthProjection      `json:"projection"`
	ExpirationLoss float64                          `json:"expirationLoss"` // % of points expected to expire
}

// Run executes the pipeline. Degenerate input (no customers, zero
// thresholds) produces a valid all-zero result, never an error: the
// engine has no fatal failure mode.
func Run(in SimulationInput) SimulationResult {
	scenario := in.ScenarioMultiplier
	if scenario == 0 {
		scenario = 1
	}

	scored := segmentation.ComputeScores(in.Customers, in.Settings.SegmentationType, in.Settings.CAWeight)
	assigned := segmentation.AssignTiers(scored, in.Tiers, in.Config.TierBasis, in.Config)
	stats := segmentation.ComputeTierStats(assigned, in.Tiers)

	economics := financial.DerivePointsFromCashback(in.Settings.CashbackRate)
	missionPoints := financial.ComputeMissionPointsByTier(in.Missions, in.CustomMissions, in.Tiers, stats, scenario)

	tierPoints := make([]TierPoints, len(in.Tiers))
	for i := range in.Tiers {
		multiplier := in.Tiers[i].PointsMultiplier
		if multiplier == 0 {
			multiplier = 1
		}
		purchase := stats[i].Revenue * economics.PointsPerEuro * multiplier
		tp := TierPoints{TierIndex: i, PurchasePoints: purchase}
		if i < len(missionPoints) {
			tp.MissionPoints = missionPoints[i].TotalPoints
		}
		tp.TotalPoints = tp.PurchasePoints + tp.MissionPoints
		tierPoints[i] = tp
	}

	allRewards := in.Rewards
	rewardCosts := financial.ComputeRewardsCost(allRewards, in.BurnRate, stats, in.Tiers)

	tierFinancials := make([]financial.TierFinancials, len(in.Tiers))
	var program ProgramSummary
	for i := range in.Tiers {
		fin := financial.ComputeTierFinancials(i, stats[i], allRewards, len(in.Tiers), in.Settings.GrossMargin, in.BurnRate)
		tierFinancials[i] = fin
		program.RewardsCost += fin.RewardsCost
		program.IncrementalRevenue += fin.IncrementalRevenue
		program.GrossProfit += fin.GrossProfit
		program.NetProfit += fin.NetProfit
	}
	if program.RewardsCost > 0 {
		program.ROI = (program.GrossProfit - program.RewardsCost) / program.RewardsCost * 100
	}

	funnel := financial.ComputeProgramFunnel(stats, in.Missions, in.CustomMissions, allRewards, in.Settings, in.Tiers, scenario)
	projection := financial.Compute12MonthProjection(stats, allRewards, in.Settings, in.Tiers, scenario)

	var expiration float64
	if in.Config.PointsExpire {
		expiration = financial.ComputeExpirationImpact(in.Config.ExpirationMonths, in.Config.ExpirationType == loyalty.ExpirationRolling)
	}

	return SimulationResult{
		Customers:      assigned,
		TierStats:      stats,
		TierPoints:     tierPoints,
		MissionPoints:  missionPoints,
		RewardCosts:    rewardCosts,
		TierFinancials: tierFinancials,
		Program:        program,
		Funnel:         funnel,
		Projection:     projection,
		ExpirationLoss: expiration,
	}
}
