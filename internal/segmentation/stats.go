package segmentation

import "github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"

// TierStats aggregates the customers assigned to one tier.
type TierStats struct {
	TierIndex         int     `json:"tierIndex"`
	Name              string  `json:"name"`
	Color             string  `json:"color"`
	Count             int     `json:"count"`
	Percentage        float64 `json:"percentage"` // % of all customers
	Revenue           float64 `json:"revenue"`
	RevenuePercentage float64 `json:"revenuePercentage"`
	AvgLTV            float64 `json:"avgLTV"`
	AvgAOV            float64 `json:"avgAOV"`
	AvgOrders         float64 `json:"avgOrders"`
	MinRevenue        float64 `json:"minRevenue"`
	MaxRevenue        float64 `json:"maxRevenue"`
}

// ComputeTierStats produces one record per tier index, dense: tiers
// with no customers still appear, with every derived value at zero.
// Invariant: counts sum to len(assigned) and revenues sum to the total
// customer revenue.
func ComputeTierStats(assigned []loyalty.ScoredCustomer, tiers []loyalty.Tier) []TierStats {
	totalCustomers := len(assigned)
	var totalRevenue float64
	for _, c := range assigned {
		totalRevenue += c.TotalOrderedTTC
	}

	stats := make([]TierStats, len(tiers))
	for i, tier := range tiers {
		var (
			count      int
			revenue    float64
			orders     int
			minRevenue float64
			maxRevenue float64
		)
		for _, c := range assigned {
			if c.Tier != i {
				continue
			}
			if count == 0 {
				minRevenue = c.TotalOrderedTTC
				maxRevenue = c.TotalOrderedTTC
			} else {
				if c.TotalOrderedTTC < minRevenue {
					minRevenue = c.TotalOrderedTTC
				}
				if c.TotalOrderedTTC > maxRevenue {
					maxRevenue = c.TotalOrderedTTC
				}
			}
			count++
			revenue += c.TotalOrderedTTC
			orders += c.NumberOfOrders
		}

		s := TierStats{
			TierIndex:  i,
			Name:       tier.Name,
			Color:      tier.Color,
			Count:      count,
			Revenue:    revenue,
			MinRevenue: minRevenue,
			MaxRevenue: maxRevenue,
		}
		if totalCustomers > 0 {
			s.Percentage = float64(count) / float64(totalCustomers) * 100
		}
		if totalRevenue > 0 {
			s.RevenuePercentage = revenue / totalRevenue * 100
		}
		if count > 0 {
			s.AvgLTV = revenue / float64(count)
			s.AvgOrders = float64(orders) / float64(count)
		}
		if orders > 0 {
			s.AvgAOV = revenue / float64(orders)
		}
		stats[i] = s
	}

	return stats
}
