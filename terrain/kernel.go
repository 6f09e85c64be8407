package terrain

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Kernel is a single-octave 2D noise function returning values in about
// [-1, 1]. Implementations must be safe for concurrent reads.
type Kernel interface {
	Noise2D(x, y float64) float64
}

// KernelFunc adapts a plain function to Kernel.
type KernelFunc func(x, y float64) float64

func (f KernelFunc) Noise2D(x, y float64) float64 { return f(x, y) }

type simplexKernel struct {
	n opensimplex.Noise
}

func (k simplexKernel) Noise2D(x, y float64) float64 {
	return k.n.Eval2(x, y)
}

// newKernel builds the kernel named by kind. The classic kernel is the
// permutation table itself; the others are seeded from seed.
func newKernel(kind KernelKind, table *PermutationTable, seed int64) Kernel {
	switch kind {
	case KernelPerlin:
		// Single octave, the fractal sum is ours
		return perlin.NewPerlinRandSource(2, 2, 1, rand.NewSource(seed))
	case KernelSimplex:
		return simplexKernel{n: opensimplex.New(seed)}
	default:
		return table
	}
}
