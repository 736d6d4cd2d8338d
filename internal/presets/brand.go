package presets

import (
	"math"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/brand"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

// programTypeConfig is the baseline for one recommended program type.
// Reward catalogs scale with the estimated AOV.
type programTypeConfig struct {
	TierBasis     loyalty.TierBasis
	HasMissions   bool
	RewardType    string
	CashbackRate  float64
	BurnRate      float64
	Thresholds    []float64
	Multipliers   []float64
	Rewards       func(aov float64) []loyalty.Reward
	MissionFilter func(id string) bool
}

var programTypeConfigs = map[string]programTypeConfig{
	"luxury": {
		TierBasis:    loyalty.BasisSpend,
		HasMissions:  false,
		RewardType:   "perks",
		CashbackRate: 0,
		BurnRate:     0,
		Thresholds:   []float64{100, 40, 10},
		Multipliers:  []float64{1, 1.5, 2.5},
		Rewards: func(aov float64) []loyalty.Reward {
			return []loyalty.Reward{
				{ID: "r1", Type: "experience", Name: "Private sales access", RewardUsage: loyalty.UsagePerk, RealCost: math.Round(aov * 0.03)},
				{ID: "r2", Type: "free_delivery", Name: "Premium delivery", RewardUsage: loyalty.UsagePerk, RealCost: 12},
				{ID: "r3", Type: "experience", Name: "VIP experience", RewardUsage: loyalty.UsagePerk, RealCost: math.Round(aov * 0.1)},
				{ID: "r4", Type: "free_product", Name: "Exclusive gift", RewardUsage: loyalty.UsagePerk, RealCost: math.Round(aov * 0.15)},
			}
		},
		MissionFilter: func(string) bool { return false },
	},
	"mid": {
		TierBasis:    loyalty.BasisSpend,
		HasMissions:  true,
		RewardType:   "both",
		CashbackRate: 3,
		BurnRate:     40,
		Thresholds:   []float64{100, 50, 15},
		Multipliers:  []float64{1, 1.5, 2},
		Rewards: func(aov float64) []loyalty.Reward {
			return []loyalty.Reward{
				{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5},
				{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: math.Round(aov * 0.1), MinPurchase: math.Round(aov * 1.5)},
				{ID: "r3", Type: "gift_voucher", Name: "Voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1000, RealCost: math.Round(aov * 0.15), MinPurchase: math.Round(aov * 1.5)},
				{ID: "r4", Type: "experience", Name: "Early access", RewardUsage: loyalty.UsagePerk, RealCost: 2},
			}
		},
		MissionFilter: func(id string) bool {
			switch id {
			case "referral", "review", "birthday", "first_purchase", "account_creation":
				return true
			}
			return false
		},
	},
	"mass": {
		TierBasis:    loyalty.BasisSpend,
		HasMissions:  true,
		RewardType:   "both",
		CashbackRate: 4,
		BurnRate:     50,
		Thresholds:   []float64{100, 55, 20},
		Multipliers:  []float64{1, 1.25, 1.75},
		Rewards: func(aov float64) []loyalty.Reward {
			return []loyalty.Reward{
				{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 150, RealCost: 4},
				{ID: "r2", Type: "promo_percent", Name: "-5% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 300, RealCost: math.Round(aov * 0.05), MinPurchase: math.Round(aov * 1.5)},
				{ID: "r3", Type: "gift_voucher", Name: "Voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 800, RealCost: math.Round(aov * 0.12), MinPurchase: math.Round(aov * 1.5)},
				{ID: "r4", Type: "free_product", Name: "Free product", RewardUsage: loyalty.UsagePerk, RealCost: math.Round(aov * 0.2)},
			}
		},
		MissionFilter: func(string) bool { return true },
	},
}

// ApplyBrandDefaults maps a brand analysis onto a complete initial
// program bundle. The retired "cashback" program type is remapped onto
// mass. Deterministic: same analysis, same bundle.
func ApplyBrandDefaults(analysis brand.Analysis) loyalty.Bundle {
	program := analysis.RecommendedProgram
	if program == "cashback" {
		program = "mass"
	}
	cfg, ok := programTypeConfigs[program]
	if !ok {
		cfg = programTypeConfigs["mid"]
	}

	aov := analysis.EstimatedAOV
	if aov == 0 {
		aov = 60
	}
	margin := analysis.EstimatedMargin
	if margin == 0 {
		margin = 0.5
	}

	tierNames := analysis.SuggestedTierNames
	if len(tierNames) != 3 {
		tierNames = []string{"Bronze", "Silver", "Gold"}
	}

	tiers := make([]loyalty.Tier, len(tierNames))
	for i, name := range tierNames {
		tiers[i] = loyalty.Tier{
			Name:             name,
			Color:            tierColor(i),
			Threshold:        cfg.Thresholds[i],
			PointsThreshold:  float64(i) * 1000,
			PointsMultiplier: cfg.Multipliers[i],
			Perks:            []string{},
		}
	}

	rewards := assignPresetRewards(cfg.Rewards(aov), len(tiers))

	var missions []loyalty.Mission
	for _, m := range DefaultMissions() {
		if !cfg.MissionFilter(m.ID) {
			continue
		}
		m.Enabled = true
		m.EngagementByTier = append([]float64(nil), m.EngagementByTier...)
		missions = append(missions, m)
	}

	return loyalty.Bundle{
		Config: loyalty.ProgramConfig{
			TierBasis:        cfg.TierBasis,
			HasMissions:      cfg.HasMissions,
			RewardType:       cfg.RewardType,
			PointsExpire:     true,
			ExpirationMonths: 12,
			ExpirationType:   loyalty.ExpirationRolling,
		},
		Settings: loyalty.Settings{
			SegmentationType: loyalty.SegmentRevenue,
			CAWeight:         0.5,
			AOV:              math.Round(aov),
			GrossMargin:      math.Round(margin * 100),
			CashbackRate:     cfg.CashbackRate,
		},
		Tiers:    tiers,
		Rewards:  rewards,
		Missions: missions,
		BurnRate: cfg.BurnRate,
	}
}
