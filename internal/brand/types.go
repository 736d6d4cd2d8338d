package brand

// Analysis is the structured result of the hosted-model brand analysis.
// The preset derivation only depends on EstimatedAOV, EstimatedMargin,
// RecommendedProgram and SuggestedTierNames; the rest is presentation.
type Analysis struct {
	Industry           string   `json:"industry"`
	Positioning        string   `json:"positioning"`
	EstimatedAOV       float64  `json:"estimated_aov"`
	EstimatedMargin    float64  `json:"estimated_margin"`    // fraction, 0-1
	RecommendedProgram string   `json:"recommended_program"` // luxury, mid, mass, cashback
	SuggestedTierNames []string `json:"suggested_tier_names"`
	SuggestedMissions  []string `json:"suggested_missions"`
	BrandTone          string   `json:"brand_tone"`
	BrandName          string   `json:"brand_name"`
	BrandDescription   string   `json:"brand_description"`
	BrandLogo          string   `json:"brand_logo"`
}

// AnalyzeRequest describes the brand to analyze.
type AnalyzeRequest struct {
	BrandName   string `json:"brand_name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url,omitempty"`
}
