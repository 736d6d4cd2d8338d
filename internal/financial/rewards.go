package financial

import (
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

// RewardCostDetail is the cost of one reward within one tier.
type RewardCostDetail struct {
	RewardID    string  `json:"rewardId"`
	TierIndex   int     `json:"tierIndex"`
	Utilization float64 `json:"utilization"` // %
	Cost        float64 `json:"cost"`
}

// RewardCostSummary is the program-wide reward cost rollup.
type RewardCostSummary struct {
	TotalCost          float64            `json:"totalCost"`
	BurnCost           float64            `json:"burnCost"`
	PerkCost           float64            `json:"perkCost"`
	IncrementalRevenue float64            `json:"incrementalRevenue"`
	Details            []RewardCostDetail `json:"details"`
}

// ComputeRewardsCost projects the yearly cost of the reward catalog
// across all tiers, split into burn (point redemptions) and perk (tier
// benefits) buckets. Per-tier utilization falls back to the global burn
// rate when a reward carries none.
//
// A reward marked "both" is deliberately charged its real cost under
// each bucket: conservative double-accounting for a reward that is
// simultaneously redeemable and granted. Its minimum-purchase
// incremental revenue accrues under each bucket the same way.
func ComputeRewardsCost(rewards []loyalty.Reward, burnRate float64, stats []segmentation.TierStats, tiers []loyalty.Tier) RewardCostSummary {
	summary := RewardCostSummary{Details: []RewardCostDetail{}}

	totalCustomers := 0
	for _, s := range stats {
		totalCustomers += s.Count
	}
	if totalCustomers == 0 {
		return summary
	}

	normalized := loyalty.NormalizeRewards(rewards, len(tiers))

	for tierIndex, stat := range stats {
		count := float64(stat.Count)
		for _, reward := range normalized {
			if tierIndex >= len(reward.AssignedTiers) || !reward.AssignedTiers[tierIndex] {
				continue
			}

			utilization := loyalty.UtilizationFor(reward, tierIndex, burnRate)
			isBurn := reward.RewardUsage == loyalty.UsageBurn || reward.RewardUsage == loyalty.UsageBoth
			isPerk := reward.RewardUsage == loyalty.UsagePerk || reward.RewardUsage == loyalty.UsageBoth

			var cost float64
			if isBurn {
				c := count * reward.RealCost * utilization
				summary.BurnCost += c
				cost += c
				if reward.MinPurchase > 0 {
					summary.IncrementalRevenue += count * reward.MinPurchase * utilization
				}
			}
			if isPerk {
				c := count * reward.RealCost * utilization
				summary.PerkCost += c
				cost += c
				if reward.MinPurchase > 0 {
					summary.IncrementalRevenue += count * reward.MinPurchase * utilization
				}
			}

			if cost > 0 {
				summary.Details = append(summary.Details, RewardCostDetail{
					RewardID:    reward.ID,
					TierIndex:   tierIndex,
					Utilization: utilization * 100,
					Cost:        cost,
				})
			}
		}
	}

	summary.TotalCost = summary.BurnCost + summary.PerkCost
	return summary
}

// TierFinancials is the yearly P&L of one tier.
type TierFinancials struct {
	TierIndex          int     `json:"tierIndex"`
	RewardsCost        float64 `json:"rewardsCost"`
	IncrementalRevenue float64 `json:"incrementalRevenue"`
	GrossProfit        float64 `json:"grossProfit"`
	NetProfit          float64 `json:"netProfit"`
	ROI                float64 `json:"roi"` // %
}

// ComputeTierFinancials projects one tier's reward cost, incremental
// revenue and profit. Unlike the program-wide rollup, each assigned
// reward is charged once here regardless of its usage type.
func ComputeTierFinancials(tierIndex int, stat segmentation.TierStats, rewards []loyalty.Reward, tierCount int, grossMargin, burnRate float64) TierFinancials {
	fin := TierFinancials{TierIndex: tierIndex}
	if stat.Count == 0 {
		return fin
	}
	count := float64(stat.Count)

	normalized := loyalty.NormalizeRewards(rewards, tierCount)
	for _, reward := range normalized {
		if tierIndex >= len(reward.AssignedTiers) || !reward.AssignedTiers[tierIndex] {
			continue
		}
		utilization := loyalty.UtilizationFor(reward, tierIndex, burnRate)
		fin.RewardsCost += count * reward.RealCost * utilization
		if reward.MinPurchase > 0 {
			fin.IncrementalRevenue += count * reward.MinPurchase * utilization
		}
	}

	fin.GrossProfit = fin.IncrementalRevenue * (grossMargin / 100)
	fin.NetProfit = fin.GrossProfit - fin.RewardsCost
	if fin.RewardsCost > 0 {
		fin.ROI = (fin.GrossProfit - fin.RewardsCost) / fin.RewardsCost * 100
	}
	return fin
}
