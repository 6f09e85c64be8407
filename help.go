package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type HelpLine struct {
	Heading string
	Text    string
}

var helpLines = []HelpLine{
	{"Camera", "WASD or arrow keys orbit around the terrain. Q and E or the mouse wheel zoom in and out."},
	{"Generation", "R draws a new seed. J toggles coordinate jitter, which roughens the terrain but makes it unrepeatable. N switches between flat and smooth normals."},
	{"Parameters", "Tab opens the parameter panel. Up and down pick a field, left and right change it, Enter regenerates with the new values."},
	{"Biomes", "Vertices are colored by height from the band table in the legend. Everything under half the water height sits on the water floor. V shows or hides the translucent water surface."},
	{"Export", "Run with -export DIR -chunks K to write K by K seamless chunk heightmaps and colormaps as BMP files, or -serve to expose the generator over HTTP."},
}

// HelpPanel is a text box that slides up from the bottom of the screen.
type HelpPanel struct {
	Active bool
	Lines  []HelpLine

	BoxX, BoxY float32
	BoxW, BoxH float32
	Padding    float32

	SlideInSpeed float32

	Face font.Face

	BoxColor     color.RGBA
	BorderColor  color.RGBA
	TextColor    color.Color
	HeadingColor color.Color
}

func NewHelpPanel() *HelpPanel {
	return &HelpPanel{
		Lines:        helpLines,
		BoxW:         900,
		BoxH:         320,
		Padding:      20,
		SlideInSpeed: 24,
		Face:         basicfont.Face7x13,
		BoxColor:     color.RGBA{0, 0, 0, 210},
		BorderColor:  color.RGBA{255, 255, 255, 255},
		TextColor:    color.RGBA{255, 255, 255, 255},
		HeadingColor: color.RGBA{140, 210, 120, 255},
	}
}

func (hp *HelpPanel) Toggle() {
	hp.Active = !hp.Active
	if hp.Active {
		// Off-screen, slides in
		hp.BoxX = float32(ScreenWidth-int(hp.BoxW)) / 2
		hp.BoxY = float32(ScreenHeight) + hp.BoxH
	}
}

func (hp *HelpPanel) Update() {
	if !hp.Active {
		return
	}
	targetY := float32(ScreenHeight) - hp.BoxH - 60
	if hp.BoxY > targetY {
		hp.BoxY = max(targetY, hp.BoxY-hp.SlideInSpeed)
	}
}

func (hp *HelpPanel) Draw(screen *ebiten.Image) {
	if !hp.Active {
		return
	}

	// Shadow
	vector.DrawFilledRect(screen, hp.BoxX+5, hp.BoxY+5, hp.BoxW, hp.BoxH, color.RGBA{0, 0, 0, 100}, false)
	vector.DrawFilledRect(screen, hp.BoxX, hp.BoxY, hp.BoxW, hp.BoxH, hp.BoxColor, false)
	vector.StrokeRect(screen, hp.BoxX, hp.BoxY, hp.BoxW, hp.BoxH, 2, hp.BorderColor, false)

	const lineHeight = 16
	x := int(hp.BoxX + hp.Padding)
	y := int(hp.BoxY + hp.Padding + 13)
	width := int(hp.BoxW - hp.Padding*2)

	for _, line := range hp.Lines {
		text.Draw(screen, line.Heading, hp.Face, x, y, hp.HeadingColor)
		y += lineHeight + 2
		for _, wline := range wrapText(line.Text, width, hp.Face) {
			text.Draw(screen, wline, hp.Face, x, y, hp.TextColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	text.Draw(screen, "H: Close", hp.Face, int(hp.BoxX+hp.BoxW-hp.Padding)-8*7, int(hp.BoxY+hp.BoxH-hp.Padding), hp.TextColor)
}

// Word wrap
func wrapText(s string, maxWidth int, face font.Face) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string

	for _, word := range words {
		test := current
		if test != "" {
			test += " "
		}
		test += word

		bounds := text.BoundString(face, test)
		if bounds.Dx() > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
