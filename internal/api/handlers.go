package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/brand"
	"github.com/ARR-GOD/vip-tiers-calculator/internal/config"
)

// Handlers holds the services behind the HTTP API
type Handlers struct {
	engineCfg config.EngineConfig
	analyzer  *brand.Analyzer
	startTime time.Time
}

// NewHandlers creates the handler set
func NewHandlers(engineCfg config.EngineConfig) *Handlers {
	return &Handlers{
		engineCfg: engineCfg,
		startTime: time.Now(),
	}
}

// SetBrandAnalyzer sets the hosted-model brand analyzer (optional)
func (h *Handlers) SetBrandAnalyzer(a *brand.Analyzer) {
	h.analyzer = a
}

// HealthCheck returns service liveness
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
		"timestamp":      time.Now(),
	})
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
