package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pre-multiplier applied before cubing; lifts mid-range noise so lowlands
// flatten and peaks steepen.
const easeBias = 1.1

// Ease maps a normalized noise sample to an elevation fraction.
func Ease(n float64) float64 {
	return math.Pow(n*easeBias, 3)
}

// BuildVertices turns a row-major noise grid into vertex positions. x and z
// are grid coordinates, y is the eased elevation floored at the water level.
func BuildVertices(noise []float64, width, height int, meshHeight, waterHeight float32) ([]mgl32.Vec3, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: vertex grid %dx%d", ErrGridSize, width, height)
	}
	if len(noise) < width*height {
		return nil, fmt.Errorf("%w: %d noise samples for %dx%d vertices", ErrGridSize, len(noise), width, height)
	}

	floor := waterHeight * 0.5 * meshHeight
	v := make([]mgl32.Vec3, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h := float32(Ease(noise[x+y*width]) * float64(meshHeight))
			if !(h >= floor) { // also catches NaN
				h = floor
			}
			v = append(v, mgl32.Vec3{float32(x), h, float32(y)})
		}
	}
	return v, nil
}
