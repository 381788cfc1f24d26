package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/circle-siege/internal/game"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
	feedRecent     = 3 // latest entries get a highlighted row
)

var feedDotColors = map[string]color.RGBA{
	"spawn": {R: 255, G: 77, B: 109, A: 255},
	"kill":  {R: 76, G: 201, B: 240, A: 255},
	"hit":   {R: 255, G: 190, B: 60, A: 255},
	"state": {R: 220, G: 220, B: 220, A: 255},
	"fire":  {R: 120, G: 120, B: 140, A: 255},
}

// feedLine formats one event for the overlay.
func feedLine(e game.SimLogEntry) string {
	return fmt.Sprintf("%6.2f %-5s %s", e.Clock, e.Category, e.Value)
}

// drawFeed renders recent events as a translucent panel along the right edge.
func drawFeed(screen *ebiten.Image, entries []game.SimLogEntry, screenW, screenH int) {
	panelX := screenW - feedPanelWidth
	if panelX < 0 {
		panelX = 0
	}
	px := float32(panelX)

	vector.DrawFilledRect(screen, px, 0, feedPanelWidth, float32(screenH), color.RGBA{R: 8, G: 10, B: 18, A: 220}, false)
	vector.StrokeLine(screen, px, 0, px, float32(screenH), 1.0, color.RGBA{R: 60, G: 70, B: 100, A: 255}, false)

	vector.DrawFilledRect(screen, px, 0, feedPanelWidth, 18, color.RGBA{R: 20, G: 26, B: 44, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [F3]", panelX+8, 2)

	maxVisible := (screenH - 24) / feedLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 22
	for i, e := range entries {
		if i >= len(entries)-feedRecent {
			vector.DrawFilledRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 36, B: 60, A: 160}, false)
		}
		dot, ok := feedDotColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		}
		vector.DrawFilledRect(screen, px+5, float32(y+4), 3, 6, dot, false)
		ebitenutil.DebugPrintAt(screen, feedLine(e), panelX+12, y)
		y += feedLineHeight
	}
}
