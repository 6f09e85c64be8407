package terrain

import (
	"math"
)

// Kernel choices
type KernelKind string

const (
	KernelClassic KernelKind = "classic"
	KernelPerlin  KernelKind = "perlin"
	KernelSimplex KernelKind = "simplex"
)

// PermutationMode selects how the 256 base entries are drawn.
type PermutationMode string

const (
	// Independent uniform draws, repeats allowed.
	PermutationDraw PermutationMode = "draw"
	// True permutation of 0..255.
	PermutationShuffle PermutationMode = "shuffle"
)

// NormalizationMode selects how the fractal sum is mapped before easing.
type NormalizationMode string

const (
	// (raw + 1) / maxAmplitude. Not bounded to [0,1].
	NormalizeReference NormalizationMode = "reference"
	// (raw/maxAmplitude + 1) / 2, exactly [0,1].
	NormalizeUnit NormalizationMode = "unit"
)

// NormalMode selects flat (per triangle) or smooth (per vertex) normals.
type NormalMode string

const (
	NormalsFlat   NormalMode = "flat"
	NormalsSmooth NormalMode = "smooth"
)

// Params controls one generation call.
type Params struct {
	Octaves     int     `json:"octaves"`
	MeshHeight  float32 `json:"mesh_height"`
	NoiseScale  float32 `json:"noise_scale"`
	Persistence float32 `json:"persistence"`
	Lacunarity  float32 `json:"lacunarity"`
	WaterHeight float32 `json:"water_height"`
	VertexCount int     `json:"vertex_count"`

	ChunkOffsetX int `json:"chunk_offset_x"`
	ChunkOffsetY int `json:"chunk_offset_y"`

	// Nil draws a fresh seed from the generator's source.
	Seed   *int64 `json:"seed,omitempty"`
	Jitter bool   `json:"jitter"`

	Kernel        KernelKind        `json:"kernel,omitempty"`
	Permutation   PermutationMode   `json:"permutation,omitempty"`
	Normalization NormalizationMode `json:"normalization,omitempty"`
	Normals       NormalMode        `json:"normals,omitempty"`
	Parallel      bool              `json:"parallel"`
}

// DefaultParams returns the reference configuration.
func DefaultParams() Params {
	return Params{
		Octaves:       5,
		MeshHeight:    32,
		NoiseScale:    64,
		Persistence:   0.5,
		Lacunarity:    2,
		WaterHeight:   0.1,
		VertexCount:   200,
		Kernel:        KernelClassic,
		Permutation:   PermutationDraw,
		Normalization: NormalizeReference,
		Normals:       NormalsFlat,
	}
}

// WithSeed returns a copy of p pinned to seed.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = &seed
	return p
}

// WithChunk returns a copy of p offset to chunk (x, y).
func (p Params) WithChunk(x, y int) Params {
	p.ChunkOffsetX = x
	p.ChunkOffsetY = y
	return p
}

// FloorLevel is the minimum elevation any vertex can have.
func (p Params) FloorLevel() float32 {
	return p.WaterHeight * 0.5 * p.MeshHeight
}

// ShoreLevel is the top of the shallow water band.
func (p Params) ShoreLevel() float32 {
	return p.WaterHeight * p.MeshHeight
}

// withDefaults fills the zero-valued strategy fields.
func (p Params) withDefaults() Params {
	if p.Kernel == "" {
		p.Kernel = KernelClassic
	}
	if p.Permutation == "" {
		p.Permutation = PermutationDraw
	}
	if p.Normalization == "" {
		p.Normalization = NormalizeReference
	}
	if p.Normals == "" {
		p.Normals = NormalsFlat
	}
	return p
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate rejects parameters outside their domain. Strategy fields left
// empty are treated as their defaults.
func (p Params) Validate() error {
	p = p.withDefaults()

	switch {
	case p.Octaves < 1:
		return &ParamError{"octaves", p.Octaves, "must be >= 1"}
	case !finite(p.MeshHeight) || p.MeshHeight <= 0:
		return &ParamError{"mesh_height", p.MeshHeight, "must be > 0"}
	case !finite(p.NoiseScale) || p.NoiseScale <= 0:
		return &ParamError{"noise_scale", p.NoiseScale, "must be > 0"}
	case !finite(p.Persistence) || p.Persistence <= 0 || p.Persistence >= 1:
		return &ParamError{"persistence", p.Persistence, "must be in (0,1)"}
	case !finite(p.Lacunarity) || p.Lacunarity <= 1:
		return &ParamError{"lacunarity", p.Lacunarity, "must be > 1"}
	case !finite(p.WaterHeight) || p.WaterHeight < 0 || p.WaterHeight > 1:
		return &ParamError{"water_height", p.WaterHeight, "must be in [0,1]"}
	case p.VertexCount < 2:
		return &ParamError{"vertex_count", p.VertexCount, "must be >= 2"}
	}

	switch p.Kernel {
	case KernelClassic, KernelPerlin, KernelSimplex:
	default:
		return &ParamError{"kernel", p.Kernel, "unknown kernel"}
	}
	switch p.Permutation {
	case PermutationDraw, PermutationShuffle:
	default:
		return &ParamError{"permutation", p.Permutation, "unknown permutation mode"}
	}
	switch p.Normalization {
	case NormalizeReference, NormalizeUnit:
	default:
		return &ParamError{"normalization", p.Normalization, "unknown normalization mode"}
	}
	switch p.Normals {
	case NormalsFlat, NormalsSmooth:
	default:
		return &ParamError{"normals", p.Normals, "unknown normal mode"}
	}
	return nil
}
