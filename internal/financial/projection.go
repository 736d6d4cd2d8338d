package financial

import (
	"math"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

// MonthProjection is one point of the cumulative 12-month series,
// chart-ready.
type MonthProjection struct {
	Month   int     `json:"month"` // 1-12
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// Compute12MonthProjection builds the cumulative first-year cost,
// revenue and profit curve. Reward utilization ramps linearly from
// launch (factor m/12), scaled by the scenario multiplier. This is a
// coarse adoption approximation, not a time-series model: no
// seasonality, no cohort retention.
func Compute12MonthProjection(stats []segmentation.TierStats, rewards []loyalty.Reward, settings loyalty.Settings, tiers []loyalty.Tier, scenarioMultiplier float64) []MonthProjection {
	if scenarioMultiplier == 0 {
		scenarioMultiplier = 1
	}

	normalized := loyalty.NormalizeRewards(rewards, len(tiers))
	months := make([]MonthProjection, 0, 12)

	for m := 1; m <= 12; m++ {
		factor := float64(m) / 12
		var cost, revenue float64

		for tierIndex, stat := range stats {
			count := float64(stat.Count)
			for _, reward := range normalized {
				if tierIndex >= len(reward.AssignedTiers) || !reward.AssignedTiers[tierIndex] {
					continue
				}
				utilization := loyalty.UtilizationFor(reward, tierIndex, loyalty.DefaultUtilization) * factor * scenarioMultiplier
				cost += count * reward.RealCost * utilization
				if reward.MinPurchase > 0 {
					revenue += count * reward.MinPurchase * utilization
				}
			}
		}

		profit := revenue*(settings.GrossMargin/100) - cost
		months = append(months, MonthProjection{
			Month:   m,
			Cost:    math.Round(cost),
			Revenue: math.Round(revenue),
			Profit:  math.Round(profit),
		})
	}

	return months
}
