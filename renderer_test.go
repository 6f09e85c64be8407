package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Terrace/terrain"
)

func flatMesh(t *testing.T, n int) *terrain.Mesh {
	t.Helper()
	gen := terrain.NewGenerator(rand.NewSource(1), nil)
	gen.Kernel = terrain.KernelFunc(func(x, y float64) float64 { return -1 })
	p := terrain.DefaultParams()
	p.VertexCount = n
	m, err := gen.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func projectedLayer(m *terrain.Mesh, cam *Camera, center mgl32.Vec3) *layer {
	l := newLayer(m.Positions, m.Indices)
	l.project(cam.ViewProjection(ScreenWidth, ScreenHeight), center, ScreenWidth, ScreenHeight)
	return l
}

func TestVisibleFacesFromAbove(t *testing.T) {
	const n = 8
	m := flatMesh(t, n)
	center := mgl32.Vec3{float32(n-1) / 2, 0, float32(n-1) / 2}

	cam := NewCamera()
	cam.Distance = 40
	faces := visibleFaces(projectedLayer(m, cam, center), false, center, cam.Eye(), nil)
	sortFaces(faces)

	if len(faces) != m.TriangleCount() {
		t.Fatalf("%d of %d faces visible", len(faces), m.TriangleCount())
	}
	for i := 1; i < len(faces); i++ {
		if faces[i].depth > faces[i-1].depth {
			t.Fatalf("faces not sorted far to near at %d", i)
		}
	}
}

func TestVisibleFacesFromBelow(t *testing.T) {
	const n = 8
	m := flatMesh(t, n)
	center := mgl32.Vec3{float32(n-1) / 2, 0, float32(n-1) / 2}

	cam := NewCamera()
	cam.Distance = 40
	cam.Pitch = -0.6
	if faces := visibleFaces(projectedLayer(m, cam, center), false, center, cam.Eye(), nil); len(faces) != 0 {
		t.Fatalf("%d faces visible from under the terrain", len(faces))
	}
}

func TestWaterDrawnOverSeabed(t *testing.T) {
	const n = 8
	m := flatMesh(t, n)
	center := mgl32.Vec3{float32(n-1) / 2, 0, float32(n-1) / 2}
	cam := NewCamera()
	cam.Distance = 40

	ground := projectedLayer(m, cam, center)
	// One water quad per terrain quad, directly above it
	water := newLayer(terrain.WaterSurface(n, n, m.Params.ShoreLevel(), n-1))
	water.project(cam.ViewProjection(ScreenWidth, ScreenHeight), center, ScreenWidth, ScreenHeight)

	faces := visibleFaces(ground, false, center, cam.Eye(), nil)
	faces = visibleFaces(water, true, center, cam.Eye(), faces)
	sortFaces(faces)

	if len(faces) != 2*m.TriangleCount() {
		t.Fatalf("%d faces visible, want %d", len(faces), 2*m.TriangleCount())
	}
	order := make(map[face]int, len(faces))
	for i, f := range faces {
		order[face{water: f.water, tri: f.tri}] = i
	}
	for tri := 0; tri < m.TriangleCount(); tri++ {
		if order[face{water: true, tri: tri}] < order[face{tri: tri}] {
			t.Fatalf("triangle %d: water drawn before the seabed under it", tri)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera()
	behind := cam.Eye().Add(cam.Eye().Sub(cam.Target))
	if p := projectPoint(cam.ViewProjection(800, 600), behind, 800, 600); p.Visible {
		t.Fatalf("point behind the camera projected to %+v", p)
	}
}

func TestShade(t *testing.T) {
	if got := shade(LightDir.Mul(-1), LightDir); got != Ambient {
		t.Fatalf("back lit shade = %v, want %v", got, Ambient)
	}
	if got := shade(LightDir, LightDir); math.Abs(float64(got)-1) > 1e-6 {
		t.Fatalf("fully lit shade = %v, want 1", got)
	}
}
