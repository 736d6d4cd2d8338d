package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/engine"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/presets"
)

// SimulateRequest is the full configurator state for one simulation run.
type SimulateRequest struct {
	Customers      []loyalty.Customer    `json:"customers"`
	Config         loyalty.ProgramConfig `json:"config"`
	Settings       loyalty.Settings      `json:"settings"`
	Tiers          []loyalty.Tier        `json:"tiers"`
	Rewards        []loyalty.Reward      `json:"rewards"`
	Missions       []loyalty.Mission     `json:"missions"`
	CustomMissions []loyalty.Mission     `json:"customMissions"`
	BurnRate       float64               `json:"burnRate"`
	Scenario       string                `json:"scenario"` // low, medium, high
}

// Simulate runs the full pipeline on the posted configuration.
func (h *Handlers) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := loyalty.ValidateTiers(req.Tiers, req.Config.TierBasis); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tier configuration: "+err.Error())
		return
	}
	if len(req.Customers) > h.engineCfg.MaxCustomerRows {
		respondError(w, http.StatusRequestEntityTooLarge, "customer list exceeds the configured row limit")
		return
	}

	burnRate := req.BurnRate
	if burnRate == 0 {
		burnRate = h.engineCfg.DefaultBurnRate
	}
	scenario := req.Scenario
	if scenario == "" {
		scenario = h.engineCfg.DefaultScenario
	}

	// Custom missions created client-side may arrive without ids.
	for i := range req.CustomMissions {
		if req.CustomMissions[i].ID == "" {
			req.CustomMissions[i].ID = uuid.NewString()
		}
	}
	for i := range req.Rewards {
		if req.Rewards[i].ID == "" {
			req.Rewards[i].ID = uuid.NewString()
		}
	}

	result := engine.Run(engine.SimulationInput{
		Customers:          req.Customers,
		Config:             req.Config,
		Settings:           req.Settings,
		Tiers:              req.Tiers,
		Rewards:            req.Rewards,
		Missions:           req.Missions,
		CustomMissions:     req.CustomMissions,
		BurnRate:           burnRate,
		ScenarioMultiplier: presets.ScenarioMultiplier(scenario),
	})

	respondJSON(w, http.StatusOK, result)
}

// RecommendationRequest asks for the advisory text of one wizard step.
type RecommendationRequest struct {
	Step    int                           `json:"step"`
	Context presets.RecommendationContext `json:"context"`
}

// GetRecommendation returns deterministic per-step advice.
func (h *Handlers) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"body": presets.GetRecommendation(req.Step, req.Context),
	})
}

// GetScenarios lists the engagement scenarios for the scenario picker.
func (h *Handlers) GetScenarios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, presets.Scenarios())
}
