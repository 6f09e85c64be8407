package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"Terrace/terrain"
)

// Pool size
const MaxNotifications = 8

// UI HUD
type UI struct {
	// Busy spinner
	spinTimer int

	// Flash when a new mesh lands
	swapFlashTimer int

	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text   string
	Timer  int
	Error  bool
	Active bool // Pool
}

func NewUI() *UI {
	return &UI{}
}

func (ui *UI) Update(busy bool) {
	if busy {
		ui.spinTimer++
	}
	if ui.swapFlashTimer > 0 {
		ui.swapFlashTimer--
	}

	// In place, no allocations
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}
		n.Timer--
		if n.Timer <= 0 {
			n.Active = false
		}
	}
	ui.compactNotifications()
}

// MeshSwapped flashes the status panel.
func (ui *UI) MeshSwapped() {
	ui.swapFlashTimer = 20
}

func (ui *UI) AddNotification(notificationText string) {
	ui.push(Notification{Text: notificationText, Timer: 180, Active: true})
}

func (ui *UI) AddError(notificationText string) {
	ui.push(Notification{Text: notificationText, Timer: 300, Error: true, Active: true})
}

func (ui *UI) push(n Notification) {
	if ui.activeNotifyCount < MaxNotifications {
		ui.notifications[ui.activeNotifyCount] = n
		ui.activeNotifyCount++
		return
	}
	// Overwrite oldest
	copy(ui.notifications[:], ui.notifications[1:])
	ui.notifications[MaxNotifications-1] = n
}

func (ui *UI) compactNotifications() {
	writeIdx := 0
	for i := 0; i < ui.activeNotifyCount; i++ {
		if ui.notifications[i].Active {
			if writeIdx != i {
				ui.notifications[writeIdx] = ui.notifications[i]
			}
			writeIdx++
		}
	}
	ui.activeNotifyCount = writeIdx
}

// Notifications returns the active notification texts, oldest first.
func (ui *UI) Notifications() []string {
	out := make([]string, 0, ui.activeNotifyCount)
	for i := 0; i < ui.activeNotifyCount; i++ {
		out = append(out, ui.notifications[i].Text)
	}
	return out
}

func (ui *UI) Draw(screen *ebiten.Image, mesh *terrain.Mesh, p terrain.Params, bands terrain.BandTable, busy bool) {
	face := basicfont.Face7x13

	ui.drawStatus(screen, mesh, p, busy, face)

	if mesh != nil {
		ui.drawLegend(screen, bands, mesh.Params.MeshHeight, face)
	}

	ui.drawNotifications(screen, face)

	ui.drawControlsHint(screen, face)
}

// StatusLines describes the current mesh and the params the next
// generation will use.
func StatusLines(mesh *terrain.Mesh, p terrain.Params) []string {
	seed := "random"
	if p.Seed != nil {
		seed = fmt.Sprint(*p.Seed)
	}
	lines := []string{
		fmt.Sprintf("Seed: %s  Jitter: %s", seed, onOff(p.Jitter)),
		fmt.Sprintf("Kernel: %s  Normals: %s", p.Kernel, p.Normals),
	}
	if mesh == nil {
		return append(lines, "No mesh yet")
	}
	lines = append(lines,
		fmt.Sprintf("Grid: %dx%d  Octaves: %d", mesh.Width, mesh.Depth, mesh.Params.Octaves),
		fmt.Sprintf("Vertices: %d  Triangles: %d", mesh.VertexCount(), mesh.TriangleCount()),
		fmt.Sprintf("Water floor: %.1f  Shore: %.1f", mesh.Params.FloorLevel(), mesh.Params.ShoreLevel()),
		fmt.Sprintf("Generated in %.1f ms", float64(mesh.Elapsed.Microseconds())/1000),
	)
	if mesh.Degenerate > 0 {
		lines = append(lines, fmt.Sprintf("Degenerate triangles: %d", mesh.Degenerate))
	}
	return lines
}

func (ui *UI) drawStatus(screen *ebiten.Image, mesh *terrain.Mesh, p terrain.Params, busy bool, face font.Face) {
	lines := StatusLines(mesh, p)
	x, y := 20, 20
	w, h := 300, len(lines)*18+20

	border := color.RGBA{200, 200, 200, 255}
	if ui.swapFlashTimer > 0 && ui.swapFlashTimer%4 < 2 {
		border = color.RGBA{140, 210, 120, 255}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{0, 0, 0, 170}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, border, false)

	for i, line := range lines {
		text.Draw(screen, line, face, x+10, y+24+i*18, color.White)
	}

	if busy {
		// Sweeping bar under the panel
		barW := float32(w) / 4
		pos := float32(ui.spinTimer%60) / 60 * (float32(w) - barW)
		vector.DrawFilledRect(screen, float32(x)+pos, float32(y+h+4), barW, 4, color.RGBA{255, 200, 100, 255}, false)
		text.Draw(screen, "Generating...", face, x, y+h+24, color.RGBA{255, 200, 100, 255})
	}
}

func (ui *UI) drawLegend(screen *ebiten.Image, bands terrain.BandTable, meshHeight float32, face font.Face) {
	const swatch = 14
	x := ScreenWidth - 200
	y := ScreenHeight - 60 - len(bands)*20

	vector.DrawFilledRect(screen, float32(x-10), float32(y-24), 190, float32(len(bands)*20+30), color.RGBA{0, 0, 0, 150}, false)
	text.Draw(screen, "Biomes", face, x, y-8, color.RGBA{200, 200, 200, 255})

	// Highest band on top
	for i := len(bands) - 1; i >= 0; i-- {
		b := bands[i]
		rowY := y + (len(bands)-1-i)*20
		c := color.RGBA{uint8(b.Color.X() * 255), uint8(b.Color.Y() * 255), uint8(b.Color.Z() * 255), 255}
		vector.DrawFilledRect(screen, float32(x), float32(rowY), swatch, swatch, c, false)
		vector.StrokeRect(screen, float32(x), float32(rowY), swatch, swatch, 1, color.RGBA{0, 0, 0, 200}, false)
		label := fmt.Sprintf("%-13s <=%5.1f", b.Name, b.Threshold*meshHeight)
		text.Draw(screen, label, face, x+swatch+8, rowY+11, color.White)
	}
}

func (ui *UI) drawNotifications(screen *ebiten.Image, face font.Face) {
	startY := ScreenHeight - 60
	drawnCount := 0
	for i := ui.activeNotifyCount - 1; i >= 0; i-- {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}

		y := startY - drawnCount*20
		drawnCount++

		alpha := 255
		if n.Timer < 30 {
			alpha = int(float64(n.Timer) / 30 * 255)
		}

		clr := color.RGBA{255, 255, 200, uint8(alpha)}
		if n.Error {
			clr = color.RGBA{255, 110, 100, uint8(alpha)}
		}
		text.Draw(screen, n.Text, face, 20, y, clr)
	}
}

func (ui *UI) drawControlsHint(screen *ebiten.Image, face font.Face) {
	hints := "WASD/Arrows: Orbit | Q/E/Wheel: Zoom | R: Reseed | J: Jitter | N: Normals | Tab: Params | H: Help | ESC: Quit"
	drawCentered(screen, hints, ScreenHeight-20, face, color.RGBA{60, 60, 70, 200})
}
