package segmentation

import (
	"sort"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

// ComputeScores annotates every customer with a value score under the
// given strategy and returns them sorted by score, highest first. The
// sort is stable so ties keep their input order: tier boundaries must
// be reproducible run to run.
//
// Strategies:
//   - revenue:  score = lifetime revenue
//   - orders:   score = order count
//   - weighted: caWeight·(revenue/maxRevenue) + (1-caWeight)·(orders/maxOrders)
func ComputeScores(customers []loyalty.Customer, segType loyalty.SegmentationType, caWeight float64) []loyalty.ScoredCustomer {
	if len(customers) == 0 {
		return []loyalty.ScoredCustomer{}
	}

	// Normalization maxima for the weighted strategy. A floor of 1
	// guards the division when every customer is at zero.
	maxRevenue := 1.0
	maxOrders := 1.0
	for _, c := range customers {
		if c.TotalOrderedTTC > maxRevenue {
			maxRevenue = c.TotalOrderedTTC
		}
		if float64(c.NumberOfOrders) > maxOrders {
			maxOrders = float64(c.NumberOfOrders)
		}
	}

	scored := make([]loyalty.ScoredCustomer, len(customers))
	for i, c := range customers {
		var score float64
		switch segType {
		case loyalty.SegmentRevenue:
			score = c.TotalOrderedTTC
		case loyalty.SegmentOrders:
			score = float64(c.NumberOfOrders)
		default: // weighted
			normRevenue := c.TotalOrderedTTC / maxRevenue
			normOrders := float64(c.NumberOfOrders) / maxOrders
			score = normRevenue*caWeight + normOrders*(1-caWeight)
		}
		scored[i] = loyalty.ScoredCustomer{Customer: c, Score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
