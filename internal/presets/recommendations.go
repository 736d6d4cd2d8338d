package presets

import (
	"fmt"
	"math"
)

// RecommendationContext carries the state a step recommendation is
// personalized from. All fields are optional; zero values fall back to
// generic advice.
type RecommendationContext struct {
	Industry           string  `json:"industry"`
	RecommendedProgram string  `json:"recommendedProgram"`
	HasMissions        bool    `json:"hasMissions"`
	GrossMargin        float64 `json:"grossMargin"`
	CustomerCount      int     `json:"customerCount"`
}

var industryNames = map[string]string{
	"fashion":     "fashion",
	"beauty":      "beauty",
	"food":        "food & beverage",
	"health":      "health",
	"electronics": "electronics",
	"sports":      "sports",
	"home":        "home & garden",
	"other":       "e-commerce",
}

// GetRecommendation returns the deterministic advisory text for one
// wizard step. No runtime model involved. Returns "" when the step has
// nothing to say.
func GetRecommendation(step int, ctx RecommendationContext) string {
	industry := industryNames[ctx.Industry]
	if industry == "" {
		industry = "e-commerce"
	}
	margin := ctx.GrossMargin
	if margin == 0 {
		margin = 50
	}
	program := ctx.RecommendedProgram
	if program == "" {
		if ctx.HasMissions {
			program = "mid"
		} else {
			program = "luxury"
		}
	}

	switch step {
	case 1: // data import
		return fmt.Sprintf("For the %s sector, we recommend importing at least 6 months of customer data. The larger the volume, the more precise the tiers will be.", industry)

	case 2: // program config
		if margin < 40 {
			return fmt.Sprintf("With %.0f%% margin, a pure VIP program is ideal. Favor exclusive perks over discounts.", margin)
		}
		kind := "points-based"
		if program == "luxury" {
			kind = "prestige"
		}
		return fmt.Sprintf("With %.0f%% margin, a %s program is well suited. Optimal reward rate is between %.0f%% and %.0f%%.",
			margin, kind, math.Round(margin*0.04), math.Round(margin*0.08))

	case 3: // missions
		if !ctx.HasMissions {
			return ""
		}
		return fmt.Sprintf("For the %s sector, the most effective missions are referrals and product reviews. They generate strong ROI with controlled cost.", industry)

	case 4: // rewards
		return fmt.Sprintf("With your %.0f%% margin, favor experiential rewards (VIP access, events) which have low real cost but high perceived value.", margin)

	case 5: // tiers
		if ctx.CustomerCount < 500 {
			return fmt.Sprintf("For %d customers, 2 or 3 tiers are optimal. Beyond that, upper tiers will be too sparsely populated to be meaningful.", ctx.CustomerCount)
		}
		return fmt.Sprintf("For %d customers, 3 tiers is a good balance. The top tier should represent 10–15%% of customers to create a sense of exclusivity.", ctx.CustomerCount)

	case 6: // dashboard
		return "Your program is ready! Download the dashboard and share it with your team. Adjust the scenario to see the impact on projections."
	}

	return ""
}
