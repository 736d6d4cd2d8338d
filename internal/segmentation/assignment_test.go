package segmentation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

func spendTiers() []loyalty.Tier {
	return []loyalty.Tier{
		{Name: "Bronze", Threshold: 100},
		{Name: "Silver", Threshold: 50},
		{Name: "Gold", Threshold: 15},
	}
}

// makeScored builds n customers with strictly decreasing revenue, so
// scoring keeps their order.
func makeScored(n int) []loyalty.ScoredCustomer {
	customers := make([]loyalty.Customer, n)
	for i := range customers {
		customers[i] = loyalty.Customer{
			CustomerID:      fmt.Sprintf("c%d", i),
			TotalOrderedTTC: float64(10*(n-i) + 100),
			NumberOfOrders:  1,
		}
	}
	return ComputeScores(customers, loyalty.SegmentRevenue, 0.5)
}

func TestAssignTiers_PercentileSplit(t *testing.T) {
	assigned := AssignTiers(makeScored(100), spendTiers(), loyalty.BasisSpend, loyalty.ProgramConfig{})

	counts := map[int]int{}
	for _, c := range assigned {
		counts[c.Tier]++
	}

	// Top 15% gold, next 35% silver, remaining 50% bronze.
	assert.Equal(t, 15, counts[2])
	assert.Equal(t, 35, counts[1])
	assert.Equal(t, 50, counts[0])
}

func TestAssignTiers_TopCustomerGetsHighestTier(t *testing.T) {
	assigned := AssignTiers(makeScored(100), spendTiers(), loyalty.BasisSpend, loyalty.ProgramConfig{})

	assert.Equal(t, 2, assigned[0].Tier)
	assert.Equal(t, 0, assigned[99].Tier)
}

func TestAssignTiers_DegenerateThresholdsFallToEntryTier(t *testing.T) {
	tiers := []loyalty.Tier{
		{Name: "A", Threshold: 0},
		{Name: "B", Threshold: 0},
	}

	assigned := AssignTiers(makeScored(10), tiers, loyalty.BasisSpend, loyalty.ProgramConfig{})

	for _, c := range assigned {
		assert.Equal(t, 0, c.Tier, "no threshold matches, tier 0 is the fallback")
	}
}

func TestAssignTiers_SingleCustomer(t *testing.T) {
	assigned := AssignTiers(makeScored(1), spendTiers(), loyalty.BasisSpend, loyalty.ProgramConfig{})

	require.Len(t, assigned, 1)
	// A single customer sits at the 100th percentile: entry tier.
	assert.Equal(t, 0, assigned[0].Tier)
}

func TestAssignTiers_PointsBasis(t *testing.T) {
	tiers := []loyalty.Tier{
		{Name: "A", PointsThreshold: 0},
		{Name: "B", PointsThreshold: 1000},
		{Name: "C", PointsThreshold: 5000},
	}
	customers := []loyalty.ScoredCustomer{
		{Customer: loyalty.Customer{CustomerID: "small", TotalOrderedTTC: 50}},
		{Customer: loyalty.Customer{CustomerID: "mid", TotalOrderedTTC: 150}},
		{Customer: loyalty.Customer{CustomerID: "big", TotalOrderedTTC: 600}},
	}

	// Default 10 pts/€: 500, 1500, 6000 estimated points.
	assigned := AssignTiers(customers, tiers, loyalty.BasisPoints, loyalty.ProgramConfig{})

	assert.Equal(t, 0, assigned[0].Tier)
	assert.Equal(t, 500.0, assigned[0].EstimatedPoints)
	assert.Equal(t, 1, assigned[1].Tier)
	assert.Equal(t, 2, assigned[2].Tier)
}

func TestAssignTiers_PointsBasisCustomRate(t *testing.T) {
	tiers := []loyalty.Tier{
		{Name: "A", PointsThreshold: 0},
		{Name: "B", PointsThreshold: 1000},
	}
	customers := []loyalty.ScoredCustomer{
		{Customer: loyalty.Customer{CustomerID: "c", TotalOrderedTTC: 500}},
	}

	assigned := AssignTiers(customers, tiers, loyalty.BasisPoints, loyalty.ProgramConfig{PointsPerEuro: 2})

	assert.Equal(t, 1000.0, assigned[0].EstimatedPoints)
	assert.Equal(t, 1, assigned[0].Tier, "threshold is inclusive")
}

func TestAssignTiers_EmptyInput(t *testing.T) {
	assigned := AssignTiers(nil, spendTiers(), loyalty.BasisSpend, loyalty.ProgramConfig{})
	assert.Empty(t, assigned)
}
