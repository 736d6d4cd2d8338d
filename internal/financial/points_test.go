package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePointsFromCashback(t *testing.T) {
	economics := DerivePointsFromCashback(3)
	assert.Equal(t, 100.0, economics.PointsToEuro)
	assert.Equal(t, 3.0, economics.PointsPerEuro)

	// Missing rate falls back to 3%.
	economics = DerivePointsFromCashback(0)
	assert.Equal(t, 3.0, economics.PointsPerEuro)
}

func TestComputePurchasePointsPerYear(t *testing.T) {
	// 10 000€ LTV at 3 pts/€ with a x2 tier multiplier.
	points := ComputePurchasePointsPerYear(10000, 3, 2)
	assert.Equal(t, 60000.0, points)
}

func TestGetCashbackRecommendation_Brackets(t *testing.T) {
	low := GetCashbackRecommendation(35)
	require.NotNil(t, low)
	assert.Equal(t, "low", low.Bracket)
	assert.Equal(t, 3.0, low.MinRate)
	assert.Equal(t, 6.0, low.MaxRate)
	assert.NotEmpty(t, low.Warning)

	mid := GetCashbackRecommendation(50)
	require.NotNil(t, mid)
	assert.Equal(t, "mid", mid.Bracket)
	assert.Equal(t, 6.0, mid.MinRate)
	assert.Equal(t, 12.0, mid.MaxRate)
	assert.Empty(t, mid.Warning)

	// 60% is still the mid bracket, 61% is high.
	assert.Equal(t, "mid", GetCashbackRecommendation(60).Bracket)
	high := GetCashbackRecommendation(61)
	require.NotNil(t, high)
	assert.Equal(t, "high", high.Bracket)
	assert.Equal(t, 20.0, high.MaxRate)
}

func TestGetCashbackRecommendation_UnknownMargin(t *testing.T) {
	assert.Nil(t, GetCashbackRecommendation(0))
	assert.Nil(t, GetCashbackRecommendation(-10))
}

func TestComputeExpirationImpact(t *testing.T) {
	// No expiration configured.
	assert.Zero(t, ComputeExpirationImpact(0, false))

	// 12-month fixed window: half the 24-month scale.
	assert.InDelta(t, 50, ComputeExpirationImpact(12, false), 1e-9)

	// Rolling windows expire less.
	assert.InDelta(t, 30, ComputeExpirationImpact(12, true), 1e-9)

	// Windows beyond 24 months expire nothing.
	assert.Zero(t, ComputeExpirationImpact(36, false))

	// Very short fixed windows are capped.
	assert.LessOrEqual(t, ComputeExpirationImpact(1, false), 80.0)
}
