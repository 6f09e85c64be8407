package terrain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestBuildVerticesFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const w, h = 12, 9
	noise := make([]float64, w*h)
	for i := range noise {
		noise[i] = rng.Float64()*2.5 - 1 // reference range overshoots both ends
	}
	const mesh, water = 32, 0.3
	v, err := BuildVertices(noise, w, h, mesh, water)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != w*h {
		t.Fatalf("len = %d, want %d", len(v), w*h)
	}
	floor := float32(water) * 0.5 * mesh
	for i, p := range v {
		if p.Y() < floor {
			t.Fatalf("vertex %d y=%v below floor %v", i, p.Y(), floor)
		}
		if int(p.X()) != i%w || int(p.Z()) != i/w {
			t.Fatalf("vertex %d at (%v,%v), want (%d,%d)", i, p.X(), p.Z(), i%w, i/w)
		}
	}
}

func TestBuildVerticesEasing(t *testing.T) {
	v, err := BuildVertices([]float64{0.5, 1}, 2, 1, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{float32(Ease(0.5) * 10), float32(Ease(1) * 10)}
	for i := range want {
		if v[i].Y() != want[i] {
			t.Fatalf("y[%d] = %v, want %v", i, v[i].Y(), want[i])
		}
	}
	if v[1].Y() <= 13.3 || v[1].Y() >= 13.32 {
		t.Fatalf("1.1^3 * 10 = %v", v[1].Y())
	}
}

func TestBuildVerticesShortGrid(t *testing.T) {
	if _, err := BuildVertices(make([]float64, 5), 3, 2, 1, 0); !errors.Is(err, ErrGridSize) {
		t.Fatalf("err = %v, want ErrGridSize", err)
	}
}
