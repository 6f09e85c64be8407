package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatGrid(n int, y float32) []mgl32.Vec3 {
	v := make([]mgl32.Vec3, 0, n*n)
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			v = append(v, mgl32.Vec3{float32(x), y, float32(z)})
		}
	}
	return v
}

func TestFlatNormalsHorizontalPlane(t *testing.T) {
	const n = 5
	normals, degenerate := FlatNormals(BuildIndices(n, n), flatGrid(n, 2.5))
	if degenerate != 0 {
		t.Fatalf("degenerate = %d", degenerate)
	}
	if len(normals) != 2*(n-1)*(n-1) {
		t.Fatalf("len = %d", len(normals))
	}
	for i, nrm := range normals {
		if !nrm.ApproxEqualThreshold(Up, 1e-6) {
			t.Fatalf("normal %d = %v, want up", i, nrm)
		}
	}
}

func TestFlatNormalsSlope(t *testing.T) {
	// Rising along +x tilts normals toward -x
	v := flatGrid(3, 0)
	for i := range v {
		v[i][1] = v[i][0]
	}
	normals, _ := FlatNormals(BuildIndices(3, 3), v)
	want := mgl32.Vec3{-1, 1, 0}.Normalize()
	for i, nrm := range normals {
		if !nrm.ApproxEqualThreshold(want, 1e-6) {
			t.Fatalf("normal %d = %v, want %v", i, nrm, want)
		}
	}
}

func TestFlatNormalsDegenerate(t *testing.T) {
	v := []mgl32.Vec3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	normals, degenerate := FlatNormals([]uint32{0, 1, 2, 0, 0, 0}, v)
	if degenerate != 2 {
		t.Fatalf("degenerate = %d, want 2", degenerate)
	}
	for _, nrm := range normals {
		if nrm != Up {
			t.Fatalf("normal = %v, want up", nrm)
		}
	}
}

func TestSmoothNormals(t *testing.T) {
	const n = 4
	v := flatGrid(n, 1)
	normals, degenerate := SmoothNormals(BuildIndices(n, n), v)
	if degenerate != 0 || len(normals) != len(v) {
		t.Fatalf("len = %d degenerate = %d", len(normals), degenerate)
	}
	for i, nrm := range normals {
		if !nrm.ApproxEqualThreshold(Up, 1e-6) {
			t.Fatalf("normal %d = %v, want up", i, nrm)
		}
	}

	// A raised center vertex leans its neighbours outward
	v = flatGrid(3, 0)
	v[4][1] = 1
	normals, _ = SmoothNormals(BuildIndices(3, 3), v)
	if !normals[4].ApproxEqualThreshold(Up, 1e-6) {
		t.Fatalf("peak normal = %v, want up", normals[4])
	}
	if normals[3].X() >= 0 || normals[5].X() <= 0 {
		t.Fatalf("side normals %v %v should lean outward", normals[3], normals[5])
	}
}
