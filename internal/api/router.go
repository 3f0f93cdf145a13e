package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/api/handlers"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/api/middleware"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/config"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/logging"
)

func NewRouter(cfg *config.Config, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(cors.Handler(middleware.CORSHandler(cfg.Server.CORSOrigins)))

	convertHandler := handlers.NewConvertHandler(cfg.DefaultFPS, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/rates", handlers.Rates)

		r.Group(func(r chi.Router) {
			r.Use(middleware.MaxBodySize(cfg.Server.MaxBodyBytes))
			r.Post("/convert", convertHandler.Convert)
		})
	})

	return r
}
