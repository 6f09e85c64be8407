package terrain

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/bmp"
)

func TestExportBMP(t *testing.T) {
	p := DefaultParams().WithSeed(6)
	p.VertexCount = 24
	m, err := GenerateTerrain(p, nil)
	if err != nil {
		t.Fatal(err)
	}

	for name, encode := range map[string]func(*bytes.Buffer) error{
		"heightmap": func(b *bytes.Buffer) error { return EncodeHeightmapBMP(b, m) },
		"colormap":  func(b *bytes.Buffer) error { return EncodeColormapBMP(b, m) },
	} {
		var buf bytes.Buffer
		if err := encode(&buf); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		img, err := bmp.Decode(&buf)
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
			t.Fatalf("%s: bounds %v", name, b)
		}
	}
}

func TestHeightmapRange(t *testing.T) {
	p := DefaultParams().WithSeed(6)
	p.VertexCount = 32
	m, err := GenerateTerrain(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	hi := uint8(0)
	for _, v := range Heightmap(m).Pix {
		hi = max(hi, v)
	}
	if hi != 255 {
		t.Fatalf("highest vertex maps to %d, want 255", hi)
	}
}

func TestHeightmapFromFloor(t *testing.T) {
	p := DefaultParams()
	floor := p.FloorLevel()
	tests := []struct {
		heights []float32
		want    []uint8
	}{
		{[]float32{0, 1, 3, 4}, []uint8{0, 64, 191, 255}},
		// Nothing on the floor, still measured from it
		{[]float32{3, 3, 4, 4}, []uint8{191, 191, 255, 255}},
		{[]float32{0, 0, 0, 0}, []uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		m := &Mesh{Width: 2, Depth: 2, Params: p}
		for i, h := range tt.heights {
			m.Positions = append(m.Positions, mgl32.Vec3{float32(i % 2), floor + h, float32(i / 2)})
		}
		img := Heightmap(m)
		for i, want := range tt.want {
			if got := img.GrayAt(i%2, i/2).Y; got != want {
				t.Fatalf("heights %v: pixel %d = %d, want %d", tt.heights, i, got, want)
			}
		}
	}
}
