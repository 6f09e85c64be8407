package terrain

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Heightmap renders vertex elevations as grayscale, 0 at the water floor and
// 255 at the highest vertex.
func Heightmap(m *Mesh) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Depth))
	lo := m.Params.FloorLevel()
	hi := lo
	for _, p := range m.Positions {
		hi = max(hi, p.Y())
	}
	span := hi - lo
	for i, p := range m.Positions {
		var v float32
		if span > 0 {
			v = (p.Y() - lo) / span
		}
		img.SetGray(i%m.Width, i/m.Width, color.Gray{Y: uint8(v*255 + 0.5)})
	}
	return img
}

// Colormap renders the biome color of every vertex.
func Colormap(m *Mesh) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Depth))
	for i, c := range m.Colors {
		img.SetRGBA(i%m.Width, i/m.Width, color.RGBA{
			R: uint8(c[0]*255 + 0.5),
			G: uint8(c[1]*255 + 0.5),
			B: uint8(c[2]*255 + 0.5),
			A: 255,
		})
	}
	return img
}

// EncodeHeightmapBMP writes the mesh heightmap as BMP.
func EncodeHeightmapBMP(w io.Writer, m *Mesh) error {
	return bmp.Encode(w, Heightmap(m))
}

// EncodeColormapBMP writes the mesh biome colors as BMP.
func EncodeColormapBMP(w io.Writer, m *Mesh) error {
	return bmp.Encode(w, Colormap(m))
}
