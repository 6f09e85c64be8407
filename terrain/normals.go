package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Up is substituted for normals of zero-area triangles.
var Up = mgl32.Vec3{0, 1, 0}

const degenerateEpsilon = 1e-12

// faceNormal returns the unnormalized -(U x V) for triangle (a, b, c).
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	u := b.Sub(a)
	v := c.Sub(a)
	return u.Cross(v).Mul(-1)
}

// FlatNormals computes one normal per triangle. Degenerate triangles get Up
// and are counted.
func FlatNormals(indices []uint32, vertices []mgl32.Vec3) (normals []mgl32.Vec3, degenerate int) {
	normals = make([]mgl32.Vec3, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		n := faceNormal(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]])
		if n.LenSqr() <= degenerateEpsilon {
			normals = append(normals, Up)
			degenerate++
			continue
		}
		normals = append(normals, n.Normalize())
	}
	return normals, degenerate
}

// SmoothNormals averages the area-weighted face normals around each vertex.
// Vertices touched only by degenerate triangles (or none) get Up.
func SmoothNormals(indices []uint32, vertices []mgl32.Vec3) (normals []mgl32.Vec3, degenerate int) {
	acc := make([]mgl32.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		n := faceNormal(vertices[i0], vertices[i1], vertices[i2])
		if n.LenSqr() <= degenerateEpsilon {
			degenerate++
			continue
		}
		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}
	for i, n := range acc {
		if n.LenSqr() <= degenerateEpsilon {
			acc[i] = Up
			continue
		}
		acc[i] = n.Normalize()
	}
	return acc, degenerate
}
