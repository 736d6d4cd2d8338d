package api

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/engine"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/presets"
)

// ExportTierStats runs the simulation on the posted configuration and
// streams the per-tier statistics and financials as a CSV attachment.
// The export is a flattening of the simulation result, nothing more.
func (h *Handlers) ExportTierStats(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := loyalty.ValidateTiers(req.Tiers, req.Config.TierBasis); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tier configuration: "+err.Error())
		return
	}

	burnRate := req.BurnRate
	if burnRate == 0 {
		burnRate = h.engineCfg.DefaultBurnRate
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
		ScenarioMultiplier: presets.ScenarioMultiplier(req.Scenario),
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="tier-stats.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{
		"tier", "name", "customers", "customers_pct", "revenue", "revenue_pct",
		"avg_ltv", "avg_aov", "avg_orders", "min_revenue", "max_revenue",
		"rewards_cost", "incremental_revenue", "gross_profit", "net_profit", "roi_pct",
	})

	for i, s := range result.TierStats {
		fin := result.TierFinancials[i]
		cw.Write([]string{
			fmt.Sprintf("%d", s.TierIndex),
			s.Name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.1f", s.Percentage),
			fmt.Sprintf("%.2f", s.Revenue),
			fmt.Sprintf("%.1f", s.RevenuePercentage),
			fmt.Sprintf("%.2f", s.AvgLTV),
			fmt.Sprintf("%.2f", s.AvgAOV),
			fmt.Sprintf("%.2f", s.AvgOrders),
			fmt.Sprintf("%.2f", s.MinRevenue),
			fmt.Sprintf("%.2f", s.MaxRevenue),
			fmt.Sprintf("%.2f", fin.RewardsCost),
			fmt.Sprintf("%.2f", fin.IncrementalRevenue),
			fmt.Sprintf("%.2f", fin.GrossProfit),
			fmt.Sprintf("%.2f", fin.NetProfit),
			fmt.Sprintf("%.1f", fin.ROI),
		})
	}
}
