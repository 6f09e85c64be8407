package terrain

import "testing"

func TestBuildIndicesCount(t *testing.T) {
	for _, c := range []struct{ w, h int }{{2, 2}, {3, 3}, {4, 7}, {200, 200}} {
		idx := BuildIndices(c.w, c.h)
		want := 6 * (c.w - 1) * (c.h - 1)
		if len(idx) != want || IndexCount(c.w, c.h) != want {
			t.Fatalf("%dx%d: %d indices, want %d", c.w, c.h, len(idx), want)
		}
		for i, v := range idx {
			if int(v) >= c.w*c.h {
				t.Fatalf("%dx%d: index %d = %d out of range", c.w, c.h, i, v)
			}
		}
	}
}

func TestBuildIndicesWinding(t *testing.T) {
	idx := BuildIndices(3, 3)
	want := []uint32{
		3, 0, 4, 1, 4, 0, // cell (0,0)
		4, 1, 5, 2, 5, 1, // cell (1,0)
	}
	for i, v := range want {
		if idx[i] != v {
			t.Fatalf("idx[%d] = %d, want %d (got %v)", i, idx[i], v, idx[:12])
		}
	}
}
