package terrain

import "github.com/go-gl/mathgl/mgl32"

// WaterSurface returns a flat cells x cells grid spanning a width x depth
// mesh at elevation level, triangulated like the terrain so its normals
// point up.
func WaterSurface(width, depth int, level float32, cells int) ([]mgl32.Vec3, []uint32) {
	cells = max(cells, 1)
	n := cells + 1
	sx := float32(width-1) / float32(cells)
	sz := float32(depth-1) / float32(cells)

	positions := make([]mgl32.Vec3, 0, n*n)
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			positions = append(positions, mgl32.Vec3{float32(x) * sx, level, float32(z) * sz})
		}
	}
	return positions, BuildIndices(n, n)
}
