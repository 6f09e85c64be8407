package terrain

import (
	"fmt"
	"math/rand"

	"github.com/dgravesa/go-parallel/parallel"
)

// NoiseField sums octaves of a kernel over a grid.
type NoiseField struct {
	Kernel      Kernel
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Scale       float64

	Normalization NormalizationMode

	// Jitter, when set, scales each sample's coordinates by a factor in
	// [1, 2). Breaks determinism and chunk seams.
	Jitter *rand.Rand

	// Parallel evaluates rows concurrently. Ignored while jittering.
	Parallel bool
}

// NewNoiseField builds a field from validated params and a kernel.
func NewNoiseField(k Kernel, p Params) *NoiseField {
	p = p.withDefaults()
	return &NoiseField{
		Kernel:        k,
		Octaves:       p.Octaves,
		Persistence:   float64(p.Persistence),
		Lacunarity:    float64(p.Lacunarity),
		Scale:         float64(p.NoiseScale),
		Normalization: p.Normalization,
		Parallel:      p.Parallel,
	}
}

// MaxAmplitude is the sum of persistence^i over all octaves.
func (f *NoiseField) MaxAmplitude() float64 {
	amp, total := 1.0, 0.0
	for i := 0; i < f.Octaves; i++ {
		total += amp
		amp *= f.Persistence
	}
	return total
}

// Sample returns the raw fractal sum at already scaled coordinates.
func (f *NoiseField) Sample(x, y float64) float64 {
	amp, freq := 1.0, 1.0
	sum := 0.0
	for i := 0; i < f.Octaves; i++ {
		sum += amp * f.Kernel.Noise2D(x*freq, y*freq)
		amp *= f.Persistence
		freq *= f.Lacunarity
	}
	return sum
}

// Normalize maps a raw sum according to the field's normalization mode.
func (f *NoiseField) Normalize(raw float64) float64 {
	return f.normalize(raw, f.MaxAmplitude())
}

// Generate samples a width x height grid, row-major (x + y*width). Offsets
// are in whole chunks so neighbouring chunks share their edge samples.
func (f *NoiseField) Generate(width, height, offsetX, offsetY int) ([]float64, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: noise grid %dx%d", ErrGridSize, width, height)
	}

	maxAmp := f.MaxAmplitude()
	baseX := float64(offsetX * (width - 1))
	baseY := float64(offsetY * (height - 1))
	out := make([]float64, width*height)

	row := func(y int) {
		ys := (float64(y) + baseY) / f.Scale
		for x := 0; x < width; x++ {
			xs, ysj := (float64(x)+baseX)/f.Scale, ys
			if f.Jitter != nil {
				m := 1 + f.Jitter.Float64()
				xs, ysj = xs*m, ysj*m
			}
			out[x+y*width] = f.normalize(f.Sample(xs, ysj), maxAmp)
		}
	}

	if f.Parallel && f.Jitter == nil {
		parallel.For(height, func(y, _ int) {
			row(y)
		})
		return out, nil
	}
	for y := 0; y < height; y++ {
		row(y)
	}
	return out, nil
}

func (f *NoiseField) normalize(raw, maxAmp float64) float64 {
	if f.Normalization == NormalizeUnit {
		return (raw/maxAmp + 1) / 2
	}
	return (raw + 1) / maxAmp
}
