package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

func TestComputeTierStats_Conservation(t *testing.T) {
	assigned := AssignTiers(makeScored(100), spendTiers(), loyalty.BasisSpend, loyalty.ProgramConfig{})
	stats := ComputeTierStats(assigned, spendTiers())

	require.Len(t, stats, 3)

	var totalCount int
	var totalRevenue, totalPct, totalRevenuePct float64
	for _, s := range stats {
		totalCount += s.Count
		totalRevenue += s.Revenue
		totalPct += s.Percentage
		totalRevenuePct += s.RevenuePercentage
	}

	var expectedRevenue float64
	for _, c := range assigned {
		expectedRevenue += c.TotalOrderedTTC
	}

	assert.Equal(t, len(assigned), totalCount)
	assert.InDelta(t, expectedRevenue, totalRevenue, 1e-6)
	assert.InDelta(t, 100, totalPct, 1e-6)
	assert.InDelta(t, 100, totalRevenuePct, 1e-6)
}

func TestComputeTierStats_PerTierAggregates(t *testing.T) {
	tiers := []loyalty.Tier{
		{Name: "Bronze", Color: "#B87333"},
		{Name: "Silver", Color: "#9CA3AF"},
	}
	assigned := []loyalty.ScoredCustomer{
		{Customer: loyalty.Customer{CustomerID: "a", TotalOrderedTTC: 100, NumberOfOrders: 2}, Tier: 0},
		{Customer: loyalty.Customer{CustomerID: "b", TotalOrderedTTC: 300, NumberOfOrders: 3}, Tier: 0},
		{Customer: loyalty.Customer{CustomerID: "c", TotalOrderedTTC: 600, NumberOfOrders: 5}, Tier: 1},
	}

	stats := ComputeTierStats(assigned, tiers)

	bronze := stats[0]
	assert.Equal(t, "Bronze", bronze.Name)
	assert.Equal(t, "#B87333", bronze.Color)
	assert.Equal(t, 2, bronze.Count)
	assert.Equal(t, 400.0, bronze.Revenue)
	assert.Equal(t, 200.0, bronze.AvgLTV)
	assert.Equal(t, 2.5, bronze.AvgOrders)
	assert.Equal(t, 80.0, bronze.AvgAOV) // 400€ over 5 orders
	assert.Equal(t, 100.0, bronze.MinRevenue)
	assert.Equal(t, 300.0, bronze.MaxRevenue)

	silver := stats[1]
	assert.Equal(t, 1, silver.Count)
	assert.Equal(t, 600.0, silver.Revenue)
	assert.Equal(t, 120.0, silver.AvgAOV)
}

func TestComputeTierStats_EmptyTierIsZeroed(t *testing.T) {
	tiers := spendTiers()
	assigned := []loyalty.ScoredCustomer{
		{Customer: loyalty.Customer{CustomerID: "a", TotalOrderedTTC: 100, NumberOfOrders: 1}, Tier: 0},
	}

	stats := ComputeTierStats(assigned, tiers)

	require.Len(t, stats, 3)
	gold := stats[2]
	assert.Equal(t, 2, gold.TierIndex)
	assert.Zero(t, gold.Count)
	assert.Zero(t, gold.Revenue)
	assert.Zero(t, gold.AvgLTV)
	assert.Zero(t, gold.AvgAOV)
}

func TestComputeTierStats_NoCustomers(t *testing.T) {
	stats := ComputeTierStats(nil, spendTiers())

	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Zero(t, s.Count)
		assert.Zero(t, s.Percentage)
		assert.Zero(t, s.RevenuePercentage)
		assert.False(t, s.AvgLTV != s.AvgLTV, "no NaN on empty input")
	}
}
