package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Terrace/internal/config"
	"Terrace/terrain"
)

// TerrainHandler serves meshes and chunk images
type TerrainHandler struct {
	cfg *config.Config
	gen *terrain.Generator

	// Seed for chunk requests that do not name one, so chunks tile.
	seed int64
}

// NewTerrainHandler creates a new TerrainHandler. Generation uses the
// configured band table, or the default palette for each request's water
// height when none is configured.
func NewTerrainHandler(cfg *config.Config, gen *terrain.Generator) *TerrainHandler {
	gen.Bands = cfg.Bands
	seed := gen.NextSeed()
	if cfg.Params.Seed != nil {
		seed = *cfg.Params.Seed
	}
	return &TerrainHandler{cfg: cfg, gen: gen, seed: seed}
}

// GetBands handles GET /api/bands. water_height selects the default
// palette when no table is configured.
func (h *TerrainHandler) GetBands(w http.ResponseWriter, r *http.Request) {
	p, err := paramsFromQuery(h.cfg.Params, r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, h.cfg.BandsFor(p.WaterHeight))
}

// GetTerrain handles GET /api/terrain - generates one mesh from the
// configured params overridden by the query string
func (h *TerrainHandler) GetTerrain(w http.ResponseWriter, r *http.Request) {
	p, err := paramsFromQuery(h.cfg.Params, r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mesh, err := h.gen.Generate(p)
	if err != nil {
		h.respondGenerateError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mesh)
}

// GetChunk handles GET /api/chunks/{x}/{y}
func (h *TerrainHandler) GetChunk(w http.ResponseWriter, r *http.Request) {
	mesh, ok := h.chunk(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, mesh)
}

// GetHeightmap handles GET /api/chunks/{x}/{y}/heightmap.bmp
func (h *TerrainHandler) GetHeightmap(w http.ResponseWriter, r *http.Request) {
	mesh, ok := h.chunk(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/bmp")
	if err := terrain.EncodeHeightmapBMP(w, mesh); err != nil {
		log.Printf("Error encoding heightmap: %v", err)
	}
}

// GetColormap handles GET /api/chunks/{x}/{y}/colormap.bmp
func (h *TerrainHandler) GetColormap(w http.ResponseWriter, r *http.Request) {
	mesh, ok := h.chunk(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/bmp")
	if err := terrain.EncodeColormapBMP(w, mesh); err != nil {
		log.Printf("Error encoding colormap: %v", err)
	}
}

// chunk generates the mesh addressed by the URL, writing the error response
// itself when it fails.
func (h *TerrainHandler) chunk(w http.ResponseWriter, r *http.Request) (*terrain.Mesh, bool) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return nil, false
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return nil, false
	}

	p, err := paramsFromQuery(h.cfg.Params.WithSeed(h.seed), r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	// Jitter would break the seams between chunks
	p.Jitter = false

	mesh, err := h.gen.Generate(p.WithChunk(x, y))
	if err != nil {
		h.respondGenerateError(w, err)
		return nil, false
	}
	return mesh, true
}

func (h *TerrainHandler) respondGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, terrain.ErrInvalidParameter):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, terrain.ErrResourceExhaustion):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		log.Printf("Error generating terrain: %v", err)
		respondError(w, http.StatusInternalServerError, "generation failed")
	}
}

// paramsFromQuery overrides base with any recognised query values. Only
// the syntax is checked here; domains are left to Params.Validate.
func paramsFromQuery(base terrain.Params, q url.Values) (terrain.Params, error) {
	p := base

	ints := map[string]*int{
		"octaves":      &p.Octaves,
		"vertex_count": &p.VertexCount,
	}
	for key, dst := range ints {
		if s := q.Get(key); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return p, fmt.Errorf("Invalid %s", key)
			}
			*dst = v
		}
	}

	floats := map[string]*float32{
		"noise_scale":  &p.NoiseScale,
		"persistence":  &p.Persistence,
		"lacunarity":   &p.Lacunarity,
		"mesh_height":  &p.MeshHeight,
		"water_height": &p.WaterHeight,
	}
	for key, dst := range floats {
		if s := q.Get(key); s != "" {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return p, fmt.Errorf("Invalid %s", key)
			}
			*dst = float32(v)
		}
	}

	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, errors.New("Invalid seed")
		}
		p = p.WithSeed(seed)
	}
	if s := q.Get("kernel"); s != "" {
		p.Kernel = terrain.KernelKind(s)
	}
	if s := q.Get("normals"); s != "" {
		p.Normals = terrain.NormalMode(s)
	}
	return p, nil
}
