package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cfbdynasty/roster-stats/internal/logic"
)

// Routes builds the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(h.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/universities", h.ListUniversities)
		r.Get("/compare/{season}/{view}", h.CompareTables)

		r.Route("/rosters/{university}/{season}", func(r chi.Router) {
			for _, v := range logic.Views {
				r.Get("/"+string(v), h.GetTable(v))
			}
			r.Get("/draft", h.GetDraftCandidates)
			r.Get("/young-quality", h.GetYoungPlayerQuality)
			r.Get("/archetypes", h.GetArchetypes)
		})
	})
	return r
}
