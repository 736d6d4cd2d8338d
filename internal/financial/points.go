package financial

// Points economics. The program uses a fixed 100-points-to-the-euro
// redemption scale, so a cashback rate expressed as a percentage maps
// directly onto points earned per euro spent: 3% cashback → 3 pts/€.

// PointsEconomics is the derived earn/redeem scale.
type PointsEconomics struct {
	PointsToEuro  float64 `json:"pointsToEuro"`  // points worth one euro at redemption
	PointsPerEuro float64 `json:"pointsPerEuro"` // points earned per euro spent
}

// DerivePointsFromCashback maps a cashback rate onto the points scale.
// A missing rate falls back to 3%.
func DerivePointsFromCashback(cashbackRate float64) PointsEconomics {
	rate := cashbackRate
	if rate == 0 {
		rate = 3
	}
	return PointsEconomics{PointsToEuro: 100, PointsPerEuro: rate}
}

// ComputePurchasePointsPerYear returns the points a tier's average
// customer earns from purchases in a year.
func ComputePurchasePointsPerYear(avgLTV, pointsPerEuro, multiplier float64) float64 {
	return avgLTV * pointsPerEuro * multiplier
}

// CashbackRecommendation is a margin-derived guardrail for the cashback
// rate slider.
type CashbackRecommendation struct {
	Bracket string  `json:"bracket"` // low, mid, high
	MinRate float64 `json:"minRate"`
	MaxRate float64 `json:"maxRate"`
	Warning string  `json:"warning,omitempty"`
}

// GetCashbackRecommendation buckets a gross margin into a sustainable
// cashback range. Returns nil when the margin is unknown.
func GetCashbackRecommendation(grossMargin float64) *CashbackRecommendation {
	if grossMargin <= 0 {
		return nil
	}
	switch {
	case grossMargin < 40:
		return &CashbackRecommendation{
			Bracket: "low", MinRate: 3, MaxRate: 6,
			Warning: "Low margin — prefer non-monetary perks",
		}
	case grossMargin <= 60:
		return &CashbackRecommendation{Bracket: "mid", MinRate: 6, MaxRate: 12}
	default:
		return &CashbackRecommendation{Bracket: "high", MinRate: 12, MaxRate: 20}
	}
}

// ComputeExpirationImpact gives a rough % of earned points expected to
// expire unredeemed for a given expiration window. Rolling windows
// expire less because activity keeps extending them. Capped at 80%.
func ComputeExpirationImpact(expirationMonths int, rolling bool) float64 {
	if expirationMonths <= 0 {
		return 0
	}
	base := 1 - float64(expirationMonths)/24
	if base < 0 {
		base = 0
	}
	factor := 1.0
	if rolling {
		factor = 0.6
	}
	impact := base * factor * 100
	if impact > 80 {
		impact = 80
	}
	return impact
}
