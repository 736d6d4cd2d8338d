package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Simulation
		r.Post("/simulate", h.Simulate)
		r.Get("/scenarios", h.GetScenarios)

		// Customer data import
		r.Post("/customers/import", h.ImportCustomers)

		// Preset derivation
		r.Post("/presets/onboarding", h.OnboardingPreset)
		r.Post("/presets/brand", h.BrandPreset)

		// Brand analysis (hosted text model pass-through)
		r.Post("/brand/analyze", h.AnalyzeBrand)

		// Advisory
		r.Post("/recommendations", h.GetRecommendation)
		r.Get("/recommendations/cashback", h.CashbackRecommendationQuery)

		// Export
		r.Post("/export/tier-stats", h.ExportTierStats)
	})

	// Unknown routes get a JSON 404, the UI expects JSON everywhere.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	return r
}
