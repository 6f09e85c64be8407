package terrain

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxVertexCount caps the grid side (16.7M vertices).
const DefaultMaxVertexCount = 4096

// Mesh is the generator's output. Normals are per triangle for NormalsFlat
// and per vertex for NormalsSmooth.
type Mesh struct {
	Positions []mgl32.Vec3 `json:"positions"`
	Indices   []uint32     `json:"indices"`
	Normals   []mgl32.Vec3 `json:"normals"`
	Colors    []mgl32.Vec3 `json:"colors"`

	Width      int        `json:"width"`
	Depth      int        `json:"depth"`
	NormalMode NormalMode `json:"normal_mode"`
	Degenerate int        `json:"degenerate"`

	Params  Params        `json:"params"`
	Seed    int64         `json:"seed"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Heights returns the y component of every vertex.
func (m *Mesh) Heights() []float32 {
	h := make([]float32, len(m.Positions))
	for i, p := range m.Positions {
		h[i] = p.Y()
	}
	return h
}

type tableKey struct {
	seed int64
	mode PermutationMode
}

// Generator runs the terrain pipeline. All randomness comes from the source
// passed to NewGenerator or from Params.Seed.
type Generator struct {
	Bands          BandTable
	MaxVertexCount int
	Logger         *log.Logger

	// Kernel, when set, replaces the kernel named in Params.
	Kernel Kernel

	mu     sync.Mutex
	rng    *rand.Rand
	tables map[tableKey]*PermutationTable
}

// NewGenerator returns a generator drawing unseeded randomness from src.
func NewGenerator(src rand.Source, bands BandTable) *Generator {
	return &Generator{
		Bands:          bands,
		MaxVertexCount: DefaultMaxVertexCount,
		rng:            rand.New(src),
		tables:         make(map[tableKey]*PermutationTable),
	}
}

// GenerateTerrain runs one generation with a throwaway generator. Without
// Params.Seed the source is seeded with 0.
func GenerateTerrain(p Params, bands BandTable) (*Mesh, error) {
	var seed int64
	if p.Seed != nil {
		seed = *p.Seed
	}
	return NewGenerator(rand.NewSource(seed), bands).Generate(p)
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}

// NextSeed draws a seed from the generator's source.
func (g *Generator) NextSeed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int63()
}

// table returns the permutation table for seed, cached when pinned.
func (g *Generator) table(seed int64, pinned bool, mode PermutationMode) *PermutationTable {
	if !pinned {
		return NewPermutationTable(rand.New(rand.NewSource(seed)), mode)
	}
	key := tableKey{seed, mode}
	g.mu.Lock()
	defer g.mu.Unlock()
	if t, ok := g.tables[key]; ok {
		return t
	}
	t := NewPermutationTable(rand.New(rand.NewSource(seed)), mode)
	g.tables[key] = t
	return t
}

// checkResources rejects grids that cannot be allocated or indexed.
func (g *Generator) checkResources(n int) error {
	limit := g.MaxVertexCount
	if limit <= 0 {
		limit = DefaultMaxVertexCount
	}
	if n > limit {
		return fmt.Errorf("%w: vertex_count %d exceeds limit %d", ErrResourceExhaustion, n, limit)
	}
	if uint64(n)*uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d vertices overflow 32-bit indices", ErrResourceExhaustion, n*n)
	}
	return nil
}

// Generate validates p and runs the full pipeline. On error nothing is
// returned; callers keep whatever mesh they had.
func (g *Generator) Generate(p Params) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	bands := g.Bands
	if bands == nil {
		bands = DefaultBands(p.WaterHeight)
	}
	if err := bands.Validate(); err != nil {
		return nil, err
	}
	p = p.withDefaults()
	n := p.VertexCount
	if err := g.checkResources(n); err != nil {
		return nil, err
	}

	start := time.Now()

	seed, pinned := int64(0), p.Seed != nil
	if pinned {
		seed = *p.Seed
	} else {
		seed = g.NextSeed()
	}

	kernel := g.Kernel
	if kernel == nil {
		kernel = newKernel(p.Kernel, g.table(seed, pinned, p.Permutation), seed)
	}

	field := NewNoiseField(kernel, p)
	if p.Jitter {
		field.Jitter = rand.New(rand.NewSource(seed ^ g.NextSeed()))
	}

	noise, err := field.Generate(n, n, p.ChunkOffsetX, p.ChunkOffsetY)
	if err != nil {
		return nil, err
	}

	positions, err := BuildVertices(noise, n, n, p.MeshHeight, p.WaterHeight)
	if err != nil {
		return nil, err
	}
	indices := BuildIndices(n, n)

	var normals []mgl32.Vec3
	var degenerate int
	if p.Normals == NormalsSmooth {
		normals, degenerate = SmoothNormals(indices, positions)
	} else {
		normals, degenerate = FlatNormals(indices, positions)
	}
	if degenerate > 0 {
		g.logf("Warning: %d degenerate triangles, substituted up normals", degenerate)
	}

	colors := bands.ClassifyVertices(positions, p.MeshHeight)

	return &Mesh{
		Positions:  positions,
		Indices:    indices,
		Normals:    normals,
		Colors:     colors,
		Width:      n,
		Depth:      n,
		NormalMode: p.Normals,
		Degenerate: degenerate,
		Params:     p,
		Seed:       seed,
		Elapsed:    time.Since(start),
	}, nil
}
