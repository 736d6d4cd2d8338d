package loyalty

const (
	// DefaultUtilization is the per-tier utilization % filled in when a
	// reward carries no explicit value for a tier.
	DefaultUtilization = 30.0

	// DefaultEngagement is the per-tier engagement % filled in when a
	// mission carries no explicit value for a tier.
	DefaultEngagement = 20.0
)

// NormalizeReward expands a reward into the canonical per-tier shape:
// AssignedTiers and UtilizationByTier sized to tierCount, RewardUsage
// defaulted to burn and MinPurchase to 0. Legacy rewards carrying a
// scalar MinTier get assignedTiers[i] = i >= minTier. A reward that
// already has enough per-tier entries is returned unchanged, which
// makes normalization idempotent.
func NormalizeReward(r Reward, tierCount int) Reward {
	if len(r.AssignedTiers) >= tierCount && tierCount > 0 {
		return r
	}

	assigned := make([]bool, tierCount)
	for i := 0; i < tierCount; i++ {
		if r.AssignedTiers != nil {
			assigned[i] = i < len(r.AssignedTiers) && r.AssignedTiers[i]
		} else {
			assigned[i] = i >= r.MinTier
		}
	}

	utilization := make([]float64, tierCount)
	for i := 0; i < tierCount; i++ {
		if i < len(r.UtilizationByTier) {
			utilization[i] = r.UtilizationByTier[i]
		} else {
			utilization[i] = DefaultUtilization
		}
	}

	out := r
	out.AssignedTiers = assigned
	out.UtilizationByTier = utilization
	if out.RewardUsage == "" {
		out.RewardUsage = UsageBurn
	}
	if out.MinPurchase < 0 {
		out.MinPurchase = 0
	}
	return out
}

// NormalizeRewards normalizes every reward in the list.
func NormalizeRewards(rewards []Reward, tierCount int) []Reward {
	out := make([]Reward, len(rewards))
	for i, r := range rewards {
		out[i] = NormalizeReward(r, tierCount)
	}
	return out
}

// ResizeAssignedTiers re-shapes every reward's per-tier slices after
// the tier count changes. New tiers start unassigned with the default
// utilization; truncation drops trailing entries.
func ResizeAssignedTiers(rewards []Reward, newTierCount int) []Reward {
	out := make([]Reward, len(rewards))
	for idx, r := range rewards {
		assigned := make([]bool, newTierCount)
		utilization := make([]float64, newTierCount)
		for i := 0; i < newTierCount; i++ {
			if i < len(r.AssignedTiers) {
				assigned[i] = r.AssignedTiers[i]
			}
			if i < len(r.UtilizationByTier) {
				utilization[i] = r.UtilizationByTier[i]
			} else {
				utilization[i] = DefaultUtilization
			}
		}
		r.AssignedTiers = assigned
		r.UtilizationByTier = utilization
		out[idx] = r
	}
	return out
}

// ResizeMissionEngagement re-shapes every mission's engagement slice
// after the tier count changes. New tiers get the default engagement.
func ResizeMissionEngagement(missions []Mission, newTierCount int) []Mission {
	out := make([]Mission, len(missions))
	for idx, m := range missions {
		engagement := make([]float64, newTierCount)
		for i := 0; i < newTierCount; i++ {
			if i < len(m.EngagementByTier) {
				engagement[i] = m.EngagementByTier[i]
			} else {
				engagement[i] = DefaultEngagement
			}
		}
		m.EngagementByTier = engagement
		out[idx] = m
	}
	return out
}

// UtilizationFor returns the reward's utilization fraction (0-1) for a
// tier, falling back to the given % when no per-tier entry exists.
func UtilizationFor(r Reward, tierIndex int, fallbackPercent float64) float64 {
	if tierIndex < len(r.UtilizationByTier) {
		return r.UtilizationByTier[tierIndex] / 100
	}
	return fallbackPercent / 100
}

// EngagementFor returns the mission's engagement fraction (0-1) for a
// tier, falling back to the default when no per-tier entry exists.
func EngagementFor(m Mission, tierIndex int) float64 {
	if tierIndex < len(m.EngagementByTier) {
		return m.EngagementByTier[tierIndex] / 100
	}
	return DefaultEngagement / 100
}
