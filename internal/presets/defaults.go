package presets

import "github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"

// Default tier cosmetics, used when a preset table carries no names of
// its own.
var (
	DefaultTierColors = []string{"#B87333", "#9CA3AF", "#D97706", "#7C3AED"}
	DefaultTierNames  = []string{"Bronze", "Silver", "Gold", "Platinum"}

	// extraTierColor is used past the fourth tier.
	extraTierColor = "#8B74FF"
)

// DefaultMissions returns the built-in mission catalog. Engagement
// rates are % of each tier's customers completing the mission per year,
// entry tier first.
func DefaultMissions() []loyalty.Mission {
	return []loyalty.Mission{
		{ID: "referral", Name: "Referral", Points: 500, Frequency: 1, Enabled: true, EngagementByTier: []float64{5, 10, 20}},
		{ID: "review", Name: "Product review", Points: 100, Frequency: 3, Enabled: true, EngagementByTier: []float64{10, 25, 45}},
		{ID: "birthday", Name: "Birthday", Points: 200, Frequency: 1, Enabled: true, EngagementByTier: []float64{30, 50, 70}},
		{ID: "social_share", Name: "Social share", Points: 50, Frequency: 4, Enabled: true, EngagementByTier: []float64{8, 15, 30}},
		{ID: "first_purchase", Name: "First purchase", Points: 150, Frequency: 1, Enabled: true, EngagementByTier: []float64{100, 100, 100}},
		{ID: "newsletter", Name: "Newsletter signup", Points: 75, Frequency: 1, Enabled: true, EngagementByTier: []float64{40, 55, 70}},
		{ID: "account_creation", Name: "Account creation", Points: 100, Frequency: 1, Enabled: true, EngagementByTier: []float64{100, 100, 100}},
	}
}

// DefaultRewards returns the starter reward catalog shown before any
// preset is applied.
func DefaultRewards() []loyalty.Reward {
	return []loyalty.Reward{
		{ID: "r1", Type: "free_delivery", Name: "Free delivery", RewardUsage: loyalty.UsageBurn, PointsCost: 200, RealCost: 5, MinPurchase: 0,
			AssignedTiers: []bool{true, true, true}, UtilizationByTier: []float64{30, 40, 50}},
		{ID: "r2", Type: "promo_percent", Name: "-10% off order", RewardUsage: loyalty.UsageBurn, PointsCost: 500, RealCost: 8, MinPurchase: 50,
			AssignedTiers: []bool{true, true, true}, UtilizationByTier: []float64{20, 35, 50}},
		{ID: "r3", Type: "gift_voucher", Name: "10€ voucher", RewardUsage: loyalty.UsageBurn, PointsCost: 1000, RealCost: 10, MinPurchase: 60,
			AssignedTiers: []bool{false, true, true}, UtilizationByTier: []float64{0, 25, 40}},
		{ID: "r4", Type: "free_product", Name: "Mystery product", RewardUsage: loyalty.UsagePerk, PointsCost: 0, RealCost: 15, MinPurchase: 0,
			AssignedTiers: []bool{false, false, true}, UtilizationByTier: []float64{0, 0, 60}},
	}
}

// Scenario is a named engagement sensitivity setting.
type Scenario struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// Scenarios lists the engagement scenarios, conservative to optimistic.
func Scenarios() []Scenario {
	return []Scenario{
		{ID: "low", Name: "Conservative", Multiplier: 0.6, Description: "Low engagement — only the most motivated customers participate."},
		{ID: "medium", Name: "Base", Multiplier: 1.0, Description: "Average engagement — realistic estimate."},
		{ID: "high", Name: "Optimistic", Multiplier: 1.4, Description: "High engagement — very active program."},
	}
}

// ScenarioMultiplier resolves a scenario id to its multiplier.
// Unknown ids resolve to the base scenario.
func ScenarioMultiplier(id string) float64 {
	for _, s := range Scenarios() {
		if s.ID == id {
			return s.Multiplier
		}
	}
	return 1.0
}

// tierColor returns the color for a tier index.
func tierColor(i int) string {
	if i < len(DefaultTierColors) {
		return DefaultTierColors[i]
	}
	return extraTierColor
}

// Closed enumerations backing the onboarding questionnaire.
var (
	Industries  = []string{"fashion", "beauty", "food", "health", "electronics", "sports", "home", "other"}
	PriceRanges = []string{"low", "medium", "high", "premium"}
	Goals       = []string{"retention", "aov", "engagement", "referral"}
)
