package terrain

import "testing"

func TestWaterSurface(t *testing.T) {
	positions, indices := WaterSurface(65, 33, 3.2, 8)
	if len(positions) != 81 || len(indices) != IndexCount(9, 9) {
		t.Fatalf("got %d positions, %d indices", len(positions), len(indices))
	}
	last := positions[len(positions)-1]
	if last.X() != 64 || last.Z() != 32 {
		t.Fatalf("surface ends at %v, want the mesh corner", last)
	}
	for _, p := range positions {
		if p.Y() != 3.2 {
			t.Fatalf("vertex %v off the water level", p)
		}
	}
	normals, degenerate := FlatNormals(indices, positions)
	if degenerate != 0 {
		t.Fatalf("%d degenerate water triangles", degenerate)
	}
	for _, n := range normals {
		if !n.ApproxEqual(Up) {
			t.Fatalf("water normal %v", n)
		}
	}
}
