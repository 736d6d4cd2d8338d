package segmentation

import "github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"

// defaultPointsPerEuro is the points-basis earn rate used when the
// program config carries none.
const defaultPointsPerEuro = 10.0

// AssignTiers buckets scored customers into tiers under the configured
// basis. Input must already be sorted by score descending (the output
// of ComputeScores). Every customer gets a tier; index 0 is the
// fallback, so nobody is ever left unassigned.
func AssignTiers(sorted []loyalty.ScoredCustomer, tiers []loyalty.Tier, basis loyalty.TierBasis, cfg loyalty.ProgramConfig) []loyalty.ScoredCustomer {
	if basis == loyalty.BasisPoints {
		return assignByPoints(sorted, tiers, cfg)
	}
	return assignByPercentile(sorted, tiers)
}

// assignByPercentile reads tier.Threshold as "top N% of customers".
// Customer percentile = (rank+1)/total×100 with rank 0 the top scorer.
// Tiers are scanned from the highest index down; the first whose
// threshold covers the percentile wins, so smaller thresholds on higher
// tiers nest correctly.
func assignByPercentile(sorted []loyalty.ScoredCustomer, tiers []loyalty.Tier) []loyalty.ScoredCustomer {
	total := len(sorted)
	if total == 0 {
		return []loyalty.ScoredCustomer{}
	}

	out := make([]loyalty.ScoredCustomer, total)
	for idx, c := range sorted {
		percentile := float64(idx+1) / float64(total) * 100

		assigned := 0
		for i := len(tiers) - 1; i >= 0; i-- {
			if percentile <= tiers[i].Threshold {
				assigned = i
				break
			}
		}

		c.Tier = assigned
		out[idx] = c
	}
	return out
}

// assignByPoints estimates lifetime points from revenue and places the
// customer in the highest tier whose points threshold is met.
func assignByPoints(customers []loyalty.ScoredCustomer, tiers []loyalty.Tier, cfg loyalty.ProgramConfig) []loyalty.ScoredCustomer {
	pointsPerEuro := cfg.PointsPerEuro
	if pointsPerEuro == 0 {
		pointsPerEuro = defaultPointsPerEuro
	}

	out := make([]loyalty.ScoredCustomer, len(customers))
	for idx, c := range customers {
		estimated := c.TotalOrderedTTC * pointsPerEuro

		assigned := 0
		for i := len(tiers) - 1; i >= 0; i-- {
			if estimated >= tiers[i].PointsThreshold {
				assigned = i
				break
			}
		}

		c.Tier = assigned
		c.EstimatedPoints = estimated
		out[idx] = c
	}
	return out
}
