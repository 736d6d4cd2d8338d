package financial

import (
	"math"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/segmentation"
)

// MissionStats is one mission's contribution within one tier.
type MissionStats struct {
	MissionID          string  `json:"missionId"`
	Name               string  `json:"name"`
	EngagementRate     float64 `json:"engagementRate"` // effective %, after scenario scaling
	CompletionsPerYear float64 `json:"completionsPerYear"`
	PointsGenerated    float64 `json:"pointsGenerated"`
}

// MissionTierBreakdown aggregates all enabled missions for one tier.
type MissionTierBreakdown struct {
	TierIndex        int            `json:"tierIndex"`
	TotalPoints      float64        `json:"totalPoints"`
	TotalCompletions float64        `json:"totalCompletions"`
	Missions         []MissionStats `json:"missionBreakdown"`
}

// ComputeMissionPointsByTier projects yearly mission completions and
// points per tier. Built-in and custom missions are pooled; only
// enabled ones count. The scenario multiplier scales engagement but the
// effective rate is capped at 100%: no scenario can imply more than
// full participation. Tiers with no customers contribute zero.
func ComputeMissionPointsByTier(missions, customMissions []loyalty.Mission, tiers []loyalty.Tier, stats []segmentation.TierStats, scenarioMultiplier float64) []MissionTierBreakdown {
	if scenarioMultiplier == 0 {
		scenarioMultiplier = 1
	}

	var enabled []loyalty.Mission
	for _, m := range missions {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	for _, m := range customMissions {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}

	out := make([]MissionTierBreakdown, len(tiers))
	for i := range tiers {
		breakdown := MissionTierBreakdown{TierIndex: i, Missions: []MissionStats{}}
		if i >= len(stats) || stats[i].Count == 0 {
			out[i] = breakdown
			continue
		}
		count := float64(stats[i].Count)

		for _, m := range enabled {
			rate := math.Min(loyalty.EngagementFor(m, i)*scenarioMultiplier, 1)
			frequency := m.Frequency
			if frequency == 0 {
				frequency = 1
			}
			completions := count * rate * frequency
			points := completions * m.Points

			breakdown.Missions = append(breakdown.Missions, MissionStats{
				MissionID:          m.ID,
				Name:               m.Name,
				EngagementRate:     rate * 100,
				CompletionsPerYear: math.Round(completions),
				PointsGenerated:    math.Round(points),
			})
		}

		for _, ms := range breakdown.Missions {
			breakdown.TotalPoints += ms.PointsGenerated
			breakdown.TotalCompletions += ms.CompletionsPerYear
		}
		out[i] = breakdown
	}

	return out
}
