package presets

import (
	"math"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

// OnboardingAnswers is the questionnaire result: industry, typical
// price range and program goals, all from closed enumerations.
type OnboardingAnswers struct {
	Industry   string   `json:"industry"`
	PriceRange string   `json:"priceRange"`
	Goals      []string `json:"goals"`
}

// industryPreset is one industry's baseline economics and catalog.
type industryPreset struct {
	CashbackRate   float64
	BurnRate       float64
	AOV            float64
	GrossMargin    float64
	TierThresholds []float64
	Multipliers    []float64
	TierNames      []string
	Rewards        []loyalty.Reward
}

var industryPresets = map[string]industryPreset{
	"fashion": {
		CashbackRate: 3, BurnRate: 40, AOV: 85, GrossMargin: 55,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.5, 2},
		TierNames: []string{"Bronze", "Silver", "Gold"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5},
			{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 8.5, MinPurchase: 128},
			{ID: "r3", Type: "gift_voucher", Name: "15€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1000, RealCost: 15, MinPurchase: 128},
			{ID: "r4", Type: "experience", Name: "Private sales access", RewardUsage: loyalty.UsagePerk, RealCost: 2},
		},
	},
	"beauty": {
		CashbackRate: 4, BurnRate: 45, AOV: 55, GrossMargin: 65,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.5, 2.5},
		TierNames: []string{"Essential", "Premium", "Prestige"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 150, RealCost: 4},
			{ID: "r2", Type: "free_product", Name: "Free samples", RewardUsage: loyalty.UsagePerk, RealCost: 3},
			{ID: "r3", Type: "promo_percent", Name: "-15% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 600, RealCost: 8, MinPurchase: 83},
			{ID: "r4", Type: "experience", Name: "Early access", RewardUsage: loyalty.UsagePerk, RealCost: 1},
		},
	},
	"food": {
		CashbackRate: 2, BurnRate: 50, AOV: 45, GrossMargin: 40,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.25, 1.75},
		TierNames: []string{"Discovery", "Gourmet", "Chef"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 150, RealCost: 5},
			{ID: "r2", Type: "promo_percent", Name: "-5% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 300, RealCost: 2.25, MinPurchase: 68},
			{ID: "r3", Type: "free_product", Name: "Surprise product", RewardUsage: loyalty.UsagePerk, RealCost: 5},
			{ID: "r4", Type: "gift_voucher", Name: "10€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 800, RealCost: 10, MinPurchase: 68},
		},
	},
	"health": {
		CashbackRate: 3, BurnRate: 45, AOV: 60, GrossMargin: 60,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.5, 2},
		TierNames: []string{"Wellness", "Vitality", "Elite"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5},
			{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 6, MinPurchase: 90},
			{ID: "r3", Type: "free_product", Name: "Free trial cure", RewardUsage: loyalty.UsagePerk, RealCost: 12},
			{ID: "r4", Type: "experience", Name: "Nutrition consultation", RewardUsage: loyalty.UsagePerk, RealCost: 8},
		},
	},
	"electronics": {
		CashbackRate: 2, BurnRate: 35, AOV: 150, GrossMargin: 30,
		TierThresholds: []float64{100, 50, 10}, Multipliers: []float64{1, 1.5, 2},
		TierNames: []string{"Standard", "Pro", "Elite"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Express delivery", RewardUsage: loyalty.UsagePerk, RealCost: 8},
			{ID: "r2", Type: "promo_percent", Name: "-5% on accessories", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 7.5, MinPurchase: 225},
			{ID: "r3", Type: "experience", Name: "Extended warranty", RewardUsage: loyalty.UsagePerk, RealCost: 10},
			{ID: "r4", Type: "gift_voucher", Name: "20€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1500, RealCost: 20, MinPurchase: 225},
		},
	},
	"sports": {
		CashbackRate: 3, BurnRate: 40, AOV: 95, GrossMargin: 45,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.5, 2},
		TierNames: []string{"Rookie", "Athlete", "Champion"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5},
			{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 9.5, MinPurchase: 143},
			{ID: "r3", Type: "experience", Name: "Free coaching session", RewardUsage: loyalty.UsagePerk, RealCost: 15},
			{ID: "r4", Type: "free_product", Name: "Free product", RewardUsage: loyalty.UsagePerk, RealCost: 20},
		},
	},
	"home": {
		CashbackRate: 2, BurnRate: 35, AOV: 120, GrossMargin: 45,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.25, 1.75},
		TierNames: []string{"Cozy", "Interior", "Home"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 250, RealCost: 8},
			{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 600, RealCost: 12, MinPurchase: 180},
			{ID: "r3", Type: "experience", Name: "Personal deco advice", RewardUsage: loyalty.UsagePerk, RealCost: 5},
			{ID: "r4", Type: "gift_voucher", Name: "20€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1200, RealCost: 20, MinPurchase: 180},
		},
	},
	"other": {
		CashbackRate: 3, BurnRate: 40, AOV: 80, GrossMargin: 50,
		TierThresholds: []float64{100, 50, 15}, Multipliers: []float64{1, 1.5, 2},
		TierNames: []string{"Bronze", "Silver", "Gold"},
		Rewards: []loyalty.Reward{
			{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5},
			{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 8, MinPurchase: 120},
			{ID: "r3", Type: "gift_voucher", Name: "10€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1000, RealCost: 10, MinPurchase: 120},
			{ID: "r4", Type: "free_product", Name: "Mystery product", RewardUsage: loyalty.UsagePerk, RealCost: 15},
		},
	},
}

// priceAdjustment tunes the industry baseline for the shop's price range.
type priceAdjustment struct {
	AOVMult     float64
	CashbackAdd float64
}

var priceAdjustments = map[string]priceAdjustment{
	"low":     {AOVMult: 0.5, CashbackAdd: 1},
	"medium":  {AOVMult: 1, CashbackAdd: 0},
	"high":    {AOVMult: 1.5, CashbackAdd: -0.5},
	"premium": {AOVMult: 3, CashbackAdd: -1},
}

// goalAdjustment nudges the economics toward a stated program goal.
type goalAdjustment struct {
	BurnRateAdd   float64
	CashbackAdd   float64
	MultiplierAdd float64
	HasMissions   *bool
}

func boolPtr(b bool) *bool { return &b }

var goalAdjustments = map[string]goalAdjustment{
	"retention":  {BurnRateAdd: 5, HasMissions: boolPtr(true)},
	"aov":        {CashbackAdd: 0.5, MultiplierAdd: 0.25},
	"engagement": {HasMissions: boolPtr(true), BurnRateAdd: -5},
	"referral":   {HasMissions: boolPtr(true), CashbackAdd: 0.5},
}

// ApplyOnboardingDefaults maps questionnaire answers onto a complete
// initial program bundle: industry baseline, price-range and goal
// deltas, clamped to sane bounds. Deterministic, side-effect-free, and
// already normalized for the reward cost module.
func ApplyOnboardingDefaults(answers OnboardingAnswers) loyalty.Bundle {
	preset, ok := industryPresets[answers.Industry]
	if !ok {
		preset = industryPresets["other"]
	}
	priceAdj, ok := priceAdjustments[answers.PriceRange]
	if !ok {
		priceAdj = priceAdjustments["medium"]
	}

	cashbackRate := preset.CashbackRate + priceAdj.CashbackAdd
	burnRate := preset.BurnRate
	hasMissions := true
	multiplierBoost := 0.0

	for _, goal := range answers.Goals {
		adj, ok := goalAdjustments[goal]
		if !ok {
			continue
		}
		burnRate += adj.BurnRateAdd
		cashbackRate += adj.CashbackAdd
		multiplierBoost += adj.MultiplierAdd
		if adj.HasMissions != nil {
			hasMissions = *adj.HasMissions
		}
	}

	cashbackRate = clamp(cashbackRate, 0.5, 10)
	burnRate = clamp(burnRate, 10, 80)

	tiers := make([]loyalty.Tier, len(preset.TierNames))
	for i, name := range preset.TierNames {
		tiers[i] = loyalty.Tier{
			Name:             name,
			Color:            tierColor(i),
			Threshold:        preset.TierThresholds[i],
			PointsThreshold:  float64(i) * 1000,
			PointsMultiplier: math.Round((preset.Multipliers[i]+multiplierBoost)*100) / 100,
			Perks:            []string{},
		}
	}

	rewards := assignPresetRewards(preset.Rewards, len(tiers))

	missions := DefaultMissions()
	for i := range missions {
		missions[i].EngagementByTier = append([]float64(nil), missions[i].EngagementByTier...)
	}

	return loyalty.Bundle{
		Config: loyalty.ProgramConfig{
			TierBasis:        loyalty.BasisSpend,
			HasMissions:      hasMissions,
			RewardType:       "both",
			PointsExpire:     true,
			ExpirationMonths: 12,
			ExpirationType:   loyalty.ExpirationRolling,
		},
		Settings: loyalty.Settings{
			SegmentationType: loyalty.SegmentRevenue,
			CAWeight:         0.5,
			AOV:              math.Round(preset.AOV * priceAdj.AOVMult),
			GrossMargin:      preset.GrossMargin,
			CashbackRate:     cashbackRate,
		},
		Tiers:    tiers,
		Rewards:  rewards,
		Missions: missions,
		BurnRate: burnRate,
	}
}

// assignPresetRewards gives a preset catalog its per-tier shape: burn
// rewards open to every tier with utilization rising by tier, perks
// reserved for the tiers above entry.
func assignPresetRewards(catalog []loyalty.Reward, tierCount int) []loyalty.Reward {
	out := make([]loyalty.Reward, len(catalog))
	for idx, r := range catalog {
		assigned := make([]bool, tierCount)
		utilization := make([]float64, tierCount)
		for i := 0; i < tierCount; i++ {
			if r.RewardUsage == loyalty.UsagePerk {
				assigned[i] = i >= 1
				if i >= 1 {
					utilization[i] = 30 + float64(i)*10
				}
			} else {
				assigned[i] = true
				utilization[i] = 20 + float64(i)*10
			}
		}
		r.AssignedTiers = assigned
		r.UtilizationByTier = utilization
		out[idx] = r
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
