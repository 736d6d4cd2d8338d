package loyalty

import "fmt"

// ValidateTiers checks a tier configuration before it reaches the
// simulation. The engine itself never fails on malformed tiers (it
// degrades to tier 0), but a misordered percentile ladder silently
// produces nonsense assignment, so the boundary rejects it explicitly.
func ValidateTiers(tiers []Tier, basis TierBasis) error {
	if len(tiers) == 0 {
		return fmt.Errorf("at least one tier is required")
	}

	switch basis {
	case BasisSpend:
		// Threshold is "top N% of customers": higher tiers must cover a
		// smaller (or equal) slice than the tier below them.
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Threshold > tiers[i-1].Threshold {
				return fmt.Errorf("tier %d (%s) threshold %.4g%% exceeds tier %d (%s) threshold %.4g%%: percentile thresholds must not increase with tier index",
					i, tiers[i].Name, tiers[i].Threshold, i-1, tiers[i-1].Name, tiers[i-1].Threshold)
			}
			if tiers[i].Threshold < 0 || tiers[i].Threshold > 100 {
				return fmt.Errorf("tier %d (%s) threshold %.4g%% out of range [0,100]", i, tiers[i].Name, tiers[i].Threshold)
			}
		}
		if tiers[0].Threshold < 0 || tiers[0].Threshold > 100 {
			return fmt.Errorf("tier 0 (%s) threshold %.4g%% out of range [0,100]", tiers[0].Name, tiers[0].Threshold)
		}
	case BasisPoints:
		for i := 1; i < len(tiers); i++ {
			if tiers[i].PointsThreshold < tiers[i-1].PointsThreshold {
				return fmt.Errorf("tier %d (%s) points threshold %.4g below tier %d (%s): points thresholds must not decrease with tier index",
					i, tiers[i].Name, tiers[i].PointsThreshold, i-1, tiers[i-1].Name)
			}
		}
	}

	return nil
}
