package main

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13
	for _, line := range helpLines {
		wrapped := wrapText(line.Text, 200, face)
		if strings.Join(wrapped, " ") != strings.Join(strings.Fields(line.Text), " ") {
			t.Fatalf("%s: wrapping lost words", line.Heading)
		}
		for _, w := range wrapped {
			if text.BoundString(face, w).Dx() > 200 && strings.Contains(w, " ") {
				t.Fatalf("%s: line %q wider than 200px", line.Heading, w)
			}
		}
	}
	if wrapText("   ", 100, face) != nil {
		t.Fatal("blank text should wrap to nothing")
	}
}
