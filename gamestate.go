package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"Terrace/terrain"
)

type ViewState int

const (
	StateIntro ViewState = iota
	StateViewing
	StateParams
)

// Intro
type IntroScreen struct {
	timer     int
	titleY    float64
	logoScale float64
	fadeAlpha float64
}

func NewIntroScreen() *IntroScreen {
	return &IntroScreen{
		titleY:    -100,
		logoScale: 0.5,
		fadeAlpha: 1.0,
	}
}

// Update animates the title. The intro ends on Enter or Space once the first
// mesh is ready.
func (is *IntroScreen) Update(ready bool) ViewState {
	is.timer++

	targetY := float64(ScreenHeight) / 3
	is.titleY += (targetY - is.titleY) * 0.05
	is.logoScale += (1.0 - is.logoScale) * 0.03

	if is.fadeAlpha > 0 {
		is.fadeAlpha = math.Max(0, is.fadeAlpha-0.02)
	}

	if ready && is.timer > 60 {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			return StateViewing
		}
	}
	return StateIntro
}

func (is *IntroScreen) Draw(screen *ebiten.Image, ready bool) {
	screen.Fill(color.RGBA{12, 18, 28, 255})

	// Rolling contour lines
	for i := 0; i < 12; i++ {
		y := float32(ScreenHeight/2 + i*28)
		phase := float64(is.timer)/40 + float64(i)*0.7
		for x := 0; x < ScreenWidth; x += 16 {
			dy := float32(math.Sin(phase+float64(x)/90) * 10)
			shade := uint8(40 + i*8)
			vector.DrawFilledRect(screen, float32(x), y+dy, 10, 2, color.RGBA{shade / 2, shade, shade / 2, 180}, false)
		}
	}

	face := basicfont.Face7x13
	drawScaledText(screen, "TERRACE", ScreenWidth/2, int(is.titleY), is.logoScale*4, face, color.RGBA{140, 210, 120, 255})
	drawCentered(screen, "Procedural Terrain Generator", int(is.titleY)+50, face, color.RGBA{150, 170, 200, 255})

	if !ready {
		dots := (is.timer / 20) % 4
		drawCentered(screen, "Generating"+[]string{"", ".", "..", "..."}[dots], ScreenHeight*2/3, face, color.RGBA{200, 200, 200, 255})
	} else if is.timer > 90 && (is.timer/30)%2 == 0 {
		drawCentered(screen, "Press ENTER to View", ScreenHeight*2/3, face, color.White)
	}

	drawCentered(screen, "Made with Ebitengine", ScreenHeight-30, face, color.RGBA{100, 100, 100, 255})

	if is.fadeAlpha > 0 {
		vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.RGBA{0, 0, 0, uint8(is.fadeAlpha * 255)}, false)
	}
}

// paramField is one adjustable row of the params panel.
type paramField struct {
	label  string
	value  func(p *terrain.Params) string
	adjust func(p *terrain.Params, dir int)
}

// Cycled choices
var (
	kernelKinds    = []terrain.KernelKind{terrain.KernelClassic, terrain.KernelPerlin, terrain.KernelSimplex}
	normalModes    = []terrain.NormalMode{terrain.NormalsFlat, terrain.NormalsSmooth}
	permModes      = []terrain.PermutationMode{terrain.PermutationDraw, terrain.PermutationShuffle}
	normalizations = []terrain.NormalizationMode{terrain.NormalizeReference, terrain.NormalizeUnit}
)

func cycle[T comparable](choices []T, cur T, dir int) T {
	i := 0
	for j, c := range choices {
		if c == cur {
			i = j
		}
	}
	n := len(choices)
	return choices[((i+dir)%n+n)%n]
}

func stepFloat(v *float32, dir int, step, lo, hi float32) {
	*v = min(hi, max(lo, *v+float32(dir)*step))
	// Drop float drift from repeated steps
	*v = float32(math.Round(float64(*v/step))) * step
}

func stepInt(v *int, dir, step, lo, hi int) {
	*v = min(hi, max(lo, *v+dir*step))
}

// ParamsScreen edits a copy of the generation params. Nothing is applied
// until Enter.
type ParamsScreen struct {
	params         terrain.Params
	selectedOption int
	fields         []paramField
	maxVertices    int
}

func NewParamsScreen(p terrain.Params, maxVertices int) *ParamsScreen {
	ps := &ParamsScreen{params: p, maxVertices: maxVertices}
	ps.fields = []paramField{
		{"Vertex count", func(p *terrain.Params) string { return fmt.Sprint(p.VertexCount) },
			func(p *terrain.Params, d int) { stepInt(&p.VertexCount, d, 16, 2, ps.maxVertices) }},
		{"Octaves", func(p *terrain.Params) string { return fmt.Sprint(p.Octaves) },
			func(p *terrain.Params, d int) { stepInt(&p.Octaves, d, 1, 1, 12) }},
		{"Noise scale", func(p *terrain.Params) string { return fmt.Sprintf("%.0f", p.NoiseScale) },
			func(p *terrain.Params, d int) { stepFloat(&p.NoiseScale, d, 4, 4, 512) }},
		{"Persistence", func(p *terrain.Params) string { return fmt.Sprintf("%.2f", p.Persistence) },
			func(p *terrain.Params, d int) { stepFloat(&p.Persistence, d, 0.05, 0.05, 0.95) }},
		{"Lacunarity", func(p *terrain.Params) string { return fmt.Sprintf("%.1f", p.Lacunarity) },
			func(p *terrain.Params, d int) { stepFloat(&p.Lacunarity, d, 0.1, 1.1, 4) }},
		{"Mesh height", func(p *terrain.Params) string { return fmt.Sprintf("%.0f", p.MeshHeight) },
			func(p *terrain.Params, d int) { stepFloat(&p.MeshHeight, d, 2, 2, 256) }},
		{"Water height", func(p *terrain.Params) string { return fmt.Sprintf("%.2f", p.WaterHeight) },
			func(p *terrain.Params, d int) { stepFloat(&p.WaterHeight, d, 0.02, 0, 1) }},
		{"Kernel", func(p *terrain.Params) string { return string(p.Kernel) },
			func(p *terrain.Params, d int) { p.Kernel = cycle(kernelKinds, p.Kernel, d) }},
		{"Normals", func(p *terrain.Params) string { return string(p.Normals) },
			func(p *terrain.Params, d int) { p.Normals = cycle(normalModes, p.Normals, d) }},
		{"Permutation", func(p *terrain.Params) string { return string(p.Permutation) },
			func(p *terrain.Params, d int) { p.Permutation = cycle(permModes, p.Permutation, d) }},
		{"Normalization", func(p *terrain.Params) string { return string(p.Normalization) },
			func(p *terrain.Params, d int) { p.Normalization = cycle(normalizations, p.Normalization, d) }},
		{"Parallel rows", func(p *terrain.Params) string { return onOff(p.Parallel) },
			func(p *terrain.Params, d int) { p.Parallel = !p.Parallel }},
	}
	return ps
}

// Move shifts the selection, wrapping around.
func (ps *ParamsScreen) Move(delta int) {
	n := len(ps.fields)
	ps.selectedOption = ((ps.selectedOption+delta)%n + n) % n
}

// Adjust changes the selected field one step in dir.
func (ps *ParamsScreen) Adjust(dir int) {
	ps.fields[ps.selectedOption].adjust(&ps.params, dir)
}

func (ps *ParamsScreen) Params() terrain.Params {
	return ps.params
}

// Update returns the next state and whether the edited params should be
// applied.
func (ps *ParamsScreen) Update() (ViewState, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return StateViewing, false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ps.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ps.Move(1)
	}
	if repeatPressed(ebiten.KeyArrowLeft) || repeatPressed(ebiten.KeyA) {
		ps.Adjust(-1)
	}
	if repeatPressed(ebiten.KeyArrowRight) || repeatPressed(ebiten.KeyD) {
		ps.Adjust(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return StateViewing, true
	}
	return StateParams, false
}

// repeatPressed fires on press and then every few ticks while held.
func repeatPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (ps *ParamsScreen) Draw(screen *ebiten.Image) {
	const (
		panelW = 360
		rowH   = 26
	)
	panelH := len(ps.fields)*rowH + 80
	x := ScreenWidth - panelW - 20
	y := 20

	vector.DrawFilledRect(screen, float32(x), float32(y), panelW, float32(panelH), color.RGBA{10, 15, 25, 220}, false)
	vector.StrokeRect(screen, float32(x), float32(y), panelW, float32(panelH), 2, color.RGBA{140, 210, 120, 255}, false)

	face := basicfont.Face7x13
	text.Draw(screen, "PARAMETERS", face, x+20, y+28, color.RGBA{140, 210, 120, 255})

	for i, f := range ps.fields {
		rowY := y + 60 + i*rowH
		value := f.value(&ps.params)
		if i == ps.selectedOption {
			vector.DrawFilledRect(screen, float32(x+10), float32(rowY-16), panelW-20, 22, color.RGBA{50, 90, 60, 200}, false)
			text.Draw(screen, ">", face, x+14, rowY, color.RGBA{255, 200, 100, 255})
			text.Draw(screen, f.label, face, x+28, rowY, color.White)
			text.Draw(screen, "< "+value+" >", face, x+200, rowY, color.White)
		} else {
			text.Draw(screen, f.label, face, x+28, rowY, color.RGBA{150, 150, 150, 255})
			text.Draw(screen, value, face, x+214, rowY, color.RGBA{150, 150, 150, 255})
		}
	}

	hint := "Up/Down: Select | Left/Right: Adjust | Enter: Apply | Tab: Close"
	text.Draw(screen, hint, face, x+panelW-len(hint)*7, y+panelH+20, color.RGBA{100, 100, 120, 255})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func drawCentered(screen *ebiten.Image, s string, y int, face font.Face, clr color.Color) {
	text.Draw(screen, s, face, ScreenWidth/2-len(s)*7/2, y, clr)
}

// Draw scaled text
func drawScaledText(screen *ebiten.Image, s string, cx, y int, scale float64, face font.Face, clr color.Color) {
	if scale <= 0 {
		return
	}

	charWidth := 7   // basicfont character width
	charHeight := 13 // basicfont character height
	textWidth := len(s) * charWidth

	textImg := ebiten.NewImage(textWidth+4, charHeight+4)
	text.Draw(textImg, s, face, 2, charHeight, clr)

	scaledWidth := float64(textWidth) * scale
	scaledHeight := float64(charHeight) * scale

	// Shadow
	shadowOp := &ebiten.DrawImageOptions{}
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(float64(cx)-scaledWidth/2+3, float64(y)-scaledHeight+3)
	shadowOp.ColorScale.Scale(0, 0, 0, 0.5)
	shadowOp.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, shadowOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-scaledWidth/2, float64(y)-scaledHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, op)
}
