package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/brand"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/financial"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/presets"
)

// OnboardingPreset derives a full initial program bundle from the
// onboarding questionnaire answers.
func (h *Handlers) OnboardingPreset(w http.ResponseWriter, r *http.Request) {
	var answers presets.OnboardingAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, presets.ApplyOnboardingDefaults(answers))
}

// BrandPreset derives a full initial program bundle from a brand
// analysis result (already obtained, e.g. via AnalyzeBrand).
func (h *Handlers) BrandPreset(w http.ResponseWriter, r *http.Request) {
	var analysis brand.Analysis
	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, presets.ApplyBrandDefaults(analysis))
}

// AnalyzeBrand calls the hosted text model to classify a brand.
func (h *Handlers) AnalyzeBrand(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		respondError(w, http.StatusServiceUnavailable, "Brand analysis not configured")
		return
	}

	var req brand.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.BrandName == "" && req.Description == "" {
		respondError(w, http.StatusBadRequest, "brand_name or description is required")
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), req)
	if err != nil {
		log.Printf("ERROR: brand analysis failed: %v", err)
		respondError(w, http.StatusBadGateway, "Brand analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// CashbackRecommendationQuery returns the sustainable cashback bracket
// for a gross margin passed as ?margin=.
func (h *Handlers) CashbackRecommendationQuery(w http.ResponseWriter, r *http.Request) {
	var margin float64
	if v := r.URL.Query().Get("margin"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "margin must be numeric")
			return
		}
		margin = parsed
	}

	rec := financial.GetCashbackRecommendation(margin)
	if rec == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"recommendation": nil})
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
