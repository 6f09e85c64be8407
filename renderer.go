package main

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"Terrace/terrain"
)

// Lighting
const (
	Ambient = 0.35

	WaterCells = 16
	WaterAlpha = 0.55

	// DrawTriangles takes uint16 indices
	MaxBatchVertices = 65535
)

var (
	LightDir   = mgl32.Vec3{-0.4, 0.8, -0.3}.Normalize()
	SkyColor   = color.RGBA{135, 170, 210, 255}
	WaterColor = terrain.RGB(60, 110, 200)
)

// screenPoint is a projected vertex. Depth is NDC z, larger is farther.
type screenPoint struct {
	X, Y, Depth float32
	Visible     bool
}

// layer is a triangle list projected every frame.
type layer struct {
	positions []mgl32.Vec3
	indices   []uint32
	points    []screenPoint
}

func newLayer(positions []mgl32.Vec3, indices []uint32) *layer {
	return &layer{
		positions: positions,
		indices:   indices,
		points:    make([]screenPoint, len(positions)),
	}
}

func (l *layer) project(mvp mgl32.Mat4, center mgl32.Vec3, w, h int) {
	for i, p := range l.positions {
		l.points[i] = projectPoint(mvp, p.Sub(center), w, h)
	}
}

// face is one triangle queued for drawing.
type face struct {
	water bool
	tri   int
	depth float32
}

// MeshRenderer draws a terrain mesh and its water surface with painter's
// ordering and lambert shading. Geometry is projected on the CPU every
// frame.
type MeshRenderer struct {
	white *ebiten.Image

	mesh    *terrain.Mesh
	version uint64
	center  mgl32.Vec3

	ground    *layer
	water     *layer
	ShowWater bool

	// Per-frame scratch, reused
	faces    []face
	vertices []ebiten.Vertex
	indices  []uint16
	opts     *ebiten.DrawTrianglesOptions
}

func NewMeshRenderer() *MeshRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &MeshRenderer{
		// Sample the center texel only
		white:     img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		ShowWater: true,
		opts:      &ebiten.DrawTrianglesOptions{},
	}
}

// SetMesh swaps the mesh if version is newer than the one held.
func (r *MeshRenderer) SetMesh(m *terrain.Mesh, version uint64) bool {
	if m == nil || version == r.version {
		return false
	}
	r.mesh = m
	r.version = version
	r.center = mgl32.Vec3{float32(m.Width-1) / 2, 0, float32(m.Depth-1) / 2}
	r.ground = newLayer(m.Positions, m.Indices)

	// Shallow water surface
	r.water = newLayer(terrain.WaterSurface(m.Width, m.Depth, m.Params.ShoreLevel(), WaterCells))

	r.faces = make([]face, 0, m.TriangleCount()+len(r.water.indices)/3)
	return true
}

func (r *MeshRenderer) Draw(screen *ebiten.Image, cam *Camera) {
	screen.Fill(SkyColor)
	if r.mesh == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mvp := cam.ViewProjection(w, h)
	eye := cam.Eye()

	r.ground.project(mvp, r.center, w, h)
	r.faces = visibleFaces(r.ground, false, r.center, eye, r.faces[:0])
	if r.ShowWater {
		r.water.project(mvp, r.center, w, h)
		r.faces = visibleFaces(r.water, true, r.center, eye, r.faces)
	}
	sortFaces(r.faces)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, f := range r.faces {
		if len(r.vertices)+3 > MaxBatchVertices {
			r.flush(screen)
		}
		if f.water {
			r.appendWater(f.tri)
		} else {
			r.appendGround(f.tri)
		}
	}
	r.flush(screen)
}

func (r *MeshRenderer) appendGround(tri int) {
	for k := 0; k < 3; k++ {
		idx := r.mesh.Indices[tri*3+k]
		n := r.mesh.Normals[tri]
		if r.mesh.NormalMode == terrain.NormalsSmooth {
			n = r.mesh.Normals[idx]
		}
		r.appendVertex(r.ground.points[idx], r.mesh.Colors[idx].Mul(shade(n, LightDir)), 1)
	}
}

func (r *MeshRenderer) appendWater(tri int) {
	c := WaterColor.Mul(shade(terrain.Up, LightDir))
	for k := 0; k < 3; k++ {
		r.appendVertex(r.water.points[r.water.indices[tri*3+k]], c, WaterAlpha)
	}
}

func (r *MeshRenderer) appendVertex(p screenPoint, c mgl32.Vec3, alpha float32) {
	r.indices = append(r.indices, uint16(len(r.vertices)))
	r.vertices = append(r.vertices, ebiten.Vertex{
		DstX:   p.X,
		DstY:   p.Y,
		SrcX:   1,
		SrcY:   1,
		ColorR: c.X(),
		ColorG: c.Y(),
		ColorB: c.Z(),
		ColorA: alpha,
	})
}

func (r *MeshRenderer) flush(screen *ebiten.Image) {
	if len(r.indices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, r.white, r.opts)
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// projectPoint maps a world point to screen pixels.
func projectPoint(mvp mgl32.Mat4, p mgl32.Vec3, w, h int) screenPoint {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return screenPoint{}
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return screenPoint{
		X:       (ndc.X() + 1) / 2 * float32(w),
		Y:       (1 - ndc.Y()) / 2 * float32(h),
		Depth:   ndc.Z(),
		Visible: ndc.Z() >= -1 && ndc.Z() <= 1,
	}
}

// visibleFaces appends every triangle of l that is in front of the camera
// and faces it.
func visibleFaces(l *layer, water bool, center, eye mgl32.Vec3, out []face) []face {
	for t := 0; t+2 < len(l.indices); t += 3 {
		i0, i1, i2 := l.indices[t], l.indices[t+1], l.indices[t+2]
		p0, p1, p2 := l.points[i0], l.points[i1], l.points[i2]
		if !p0.Visible || !p1.Visible || !p2.Visible {
			continue
		}

		v0, v1, v2 := l.positions[i0], l.positions[i1], l.positions[i2]
		up := v1.Sub(v0).Cross(v2.Sub(v0)).Mul(-1)
		if up.Dot(eye.Sub(v0.Sub(center))) <= 0 {
			continue
		}

		out = append(out, face{water: water, tri: t / 3, depth: (p0.Depth + p1.Depth + p2.Depth) / 3})
	}
	return out
}

// sortFaces orders faces far to near.
func sortFaces(faces []face) {
	slices.SortStableFunc(faces, func(a, b face) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

func shade(n, light mgl32.Vec3) float32 {
	return Ambient + (1-Ambient)*max(0, n.Dot(light))
}
