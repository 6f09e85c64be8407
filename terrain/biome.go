package terrain

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RGB converts 8-bit channels to a [0,1] color.
func RGB(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// Band colors every vertex at or below Threshold*meshHeight that no lower
// band claimed.
type Band struct {
	Name      string
	Threshold float32
	Color     mgl32.Vec3
}

type bandJSON struct {
	Name      string   `json:"name"`
	Threshold float32  `json:"threshold"`
	Color     [3]uint8 `json:"color"`
}

// MarshalJSON writes colors as 0..255 channels.
func (b Band) MarshalJSON() ([]byte, error) {
	c := bandJSON{Name: b.Name, Threshold: b.Threshold}
	for i := range c.Color {
		v := b.Color[i]*255 + 0.5
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		c.Color[i] = uint8(v)
	}
	return json.Marshal(c)
}

// UnmarshalJSON reads colors as 0..255 channels.
func (b *Band) UnmarshalJSON(data []byte) error {
	var c bandJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*b = Band{Name: c.Name, Threshold: c.Threshold, Color: RGB(c.Color[0], c.Color[1], c.Color[2])}
	return nil
}

// BandTable is ordered by ascending threshold.
type BandTable []Band

// DefaultBands is the reference palette. The two water bands follow the
// water height; the rest are fixed fractions of the mesh height, raised to
// the band below when the water climbs past them.
func DefaultBands(waterHeight float32) BandTable {
	t := BandTable{
		{"deep water", waterHeight * 0.5, RGB(60, 95, 190)},
		{"shallow water", waterHeight, RGB(60, 100, 190)},
		{"sand", 0.15, RGB(210, 215, 130)},
		{"grass", 0.30, RGB(95, 165, 30)},
		{"dense grass", 0.40, RGB(65, 115, 20)},
		{"rock", 0.50, RGB(90, 65, 60)},
		{"dark rock", 0.80, RGB(75, 60, 55)},
		{"snow", 1.00, RGB(255, 255, 255)},
	}
	for i := 1; i < len(t); i++ {
		t[i].Threshold = max(t[i].Threshold, t[i-1].Threshold)
	}
	return t
}

// Validate checks the table covers every height in [0, meshHeight].
func (t BandTable) Validate() error {
	if len(t) == 0 {
		return &ParamError{"bands", 0, "table is empty"}
	}
	for i, b := range t {
		if !finite(b.Threshold) || b.Threshold < 0 || b.Threshold > 1 {
			return &ParamError{fmt.Sprintf("bands[%d].threshold", i), b.Threshold, "must be in [0,1]"}
		}
		if i > 0 && b.Threshold < t[i-1].Threshold {
			return &ParamError{fmt.Sprintf("bands[%d].threshold", i), b.Threshold, "thresholds must be non-decreasing"}
		}
	}
	if last := t[len(t)-1].Threshold; last != 1 {
		return &ParamError{"bands", last, "last threshold must be 1.0"}
	}
	return nil
}

// Index returns the band for an elevation. Heights above the top band (the
// easing can overshoot meshHeight) fall into the last band.
func (t BandTable) Index(height, meshHeight float32) int {
	for i, b := range t {
		if b.Threshold*meshHeight >= height {
			return i
		}
	}
	return len(t) - 1
}

// Classify colors each height.
func (t BandTable) Classify(heights []float32, meshHeight float32) []mgl32.Vec3 {
	colors := make([]mgl32.Vec3, len(heights))
	for i, h := range heights {
		colors[i] = t[t.Index(h, meshHeight)].Color
	}
	return colors
}

// ClassifyVertices colors vertices by their y component.
func (t BandTable) ClassifyVertices(vertices []mgl32.Vec3, meshHeight float32) []mgl32.Vec3 {
	colors := make([]mgl32.Vec3, len(vertices))
	for i, v := range vertices {
		colors[i] = t[t.Index(v.Y(), meshHeight)].Color
	}
	return colors
}
