// Package loyalty defines the canonical data model for a tiered loyalty
// program: customers, tiers, missions, rewards and the program-level
// configuration knobs. All simulation packages consume these types and
// never mutate them; derived values live on copies.
package loyalty

// TierBasis selects the metric used to bucket customers into tiers.
type TierBasis string

const (
	BasisSpend  TierBasis = "spend"  // spend-percentile thresholds
	BasisPoints TierBasis = "points" // accumulated-points thresholds
)

// SegmentationType selects the customer value-scoring strategy.
type SegmentationType string

const (
	SegmentRevenue  SegmentationType = "revenue"
	SegmentOrders   SegmentationType = "orders"
	SegmentWeighted SegmentationType = "weighted"
)

// RewardUsage describes how a reward is consumed.
type RewardUsage string

const (
	UsageBurn RewardUsage = "burn" // redeemed with points
	UsagePerk RewardUsage = "perk" // granted by tier membership
	UsageBoth RewardUsage = "both"
)

// ExpirationType describes how point expiration windows are anchored.
type ExpirationType string

const (
	ExpirationRolling ExpirationType = "rolling"
	ExpirationFixed   ExpirationType = "fixed"
)

// Customer is a single imported customer row. Immutable input: the
// engine annotates copies, never the original list.
type Customer struct {
	CustomerID      string  `json:"customer_id"`
	TotalOrderedTTC float64 `json:"total_ordered_TTC"`
	NumberOfOrders  int     `json:"number_of_orders"`
}

// ScoredCustomer is a customer annotated by the scoring and tier
// assignment passes.
type ScoredCustomer struct {
	Customer
	Score           float64 `json:"score"`
	Tier            int     `json:"tier"`
	EstimatedPoints float64 `json:"estimatedPoints,omitempty"`
}

// Tier is one privilege level. Tiers are ordered low→high privilege by
// slice index; index 0 is the entry tier and the assignment fallback.
// For the spend basis, Threshold is read as "this tier contains the top
// Threshold% of customers" and should decrease as the index increases.
type Tier struct {
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	Threshold        float64  `json:"threshold"`
	PointsThreshold  float64  `json:"pointsThreshold"`
	PointsMultiplier float64  `json:"pointsMultiplier"`
	Perks            []string `json:"perks"`
}

// Mission is an action customers complete for points. Built-in and
// custom missions share this shape; only their origin list differs.
type Mission struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Points           float64   `json:"points"`
	Frequency        float64   `json:"frequency"` // max completions per customer per year
	Enabled          bool      `json:"enabled"`
	EngagementByTier []float64 `json:"engagementByTier"` // % per tier index, 0-100
}

// Reward is a catalog entry customers can redeem (burn) or receive as a
// tier benefit (perk). Legacy payloads may carry MinTier instead of
// AssignedTiers; NormalizeReward expands them.
type Reward struct {
	ID                string      `json:"id"`
	Type              string      `json:"type,omitempty"`
	Name              string      `json:"name,omitempty"`
	RewardUsage       RewardUsage `json:"rewardUsage"`
	PointsCost        float64     `json:"pointsCost"`
	RealCost          float64     `json:"realCost"`    // merchant cost per redemption/grant
	MinPurchase       float64     `json:"minPurchase"` // purchase threshold driving incremental revenue
	MinTier           int         `json:"minTier,omitempty"`
	AssignedTiers     []bool      `json:"assignedTiers"`
	UtilizationByTier []float64   `json:"utilizationByTier"` // % per tier index, 0-100
}

// ProgramConfig holds the structural program choices.
type ProgramConfig struct {
	TierBasis        TierBasis      `json:"tierBasis"`
	HasMissions      bool           `json:"hasMissions"`
	RewardType       string         `json:"rewardType"` // "burn", "perks", "both"
	PointsExpire     bool           `json:"pointsExpire"`
	ExpirationMonths int            `json:"expirationMonths"`
	ExpirationType   ExpirationType `json:"expirationType"`
	PointsPerEuro    float64        `json:"pointsPerEuro,omitempty"` // points-basis assignment rate
}

// Settings holds the economic assumptions behind the simulation.
type Settings struct {
	SegmentationType SegmentationType `json:"segmentationType"`
	CAWeight         float64          `json:"caWeight"` // revenue weight for the weighted strategy, 0-1
	AOV              float64          `json:"aov"`
	GrossMargin      float64          `json:"grossMargin"`  // %
	CashbackRate     float64          `json:"cashbackRate"` // % spent back as points
}

// Bundle is a complete initial program configuration, as produced by
// the preset derivation tables and consumed directly by the engine.
type Bundle struct {
	Config   ProgramConfig `json:"config"`
	Settings Settings      `json:"settings"`
	Tiers    []Tier        `json:"tiers"`
	Rewards  []Reward      `json:"rewards"`
	Missions []Mission     `json:"missions"`
	BurnRate float64       `json:"burnRate"` // global % fallback when a reward has no per-tier utilization
}
