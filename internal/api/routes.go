package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"Terrace/internal/config"
	"Terrace/terrain"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, gen *terrain.Generator) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	h := NewTerrainHandler(cfg, gen)

	r.Route("/api", func(r chi.Router) {
		r.Get("/bands", h.GetBands)
		r.Get("/terrain", h.GetTerrain)
		r.Get("/live", h.GetLive)

		r.Route("/chunks/{x}/{y}", func(r chi.Router) {
			r.Get("/", h.GetChunk)
			r.Get("/heightmap.bmp", h.GetHeightmap)
			r.Get("/colormap.bmp", h.GetColormap)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
