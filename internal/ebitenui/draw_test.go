package ebitenui

import (
	"strings"
	"testing"

	"github.com/Garsondee/circle-siege/internal/game"
)

func TestTextDrawer_Scale(t *testing.T) {
	td := newTextDrawer()
	if got := td.scale(0); got != 1 {
		t.Fatalf("scale(0) = %v, want 1", got)
	}
	if got := td.scale(26); got != 2 {
		t.Fatalf("scale(26) = %v, want 2 for a 13px face", got)
	}
}

func TestTextDrawer_Origin(t *testing.T) {
	td := newTextDrawer()

	left := game.DrawCmd{Kind: game.DrawText, X: 20, Y: 40, Text: "SCORE: 0", Size: 26}
	if x, y := td.origin(left); x != 20 || y != 40 {
		t.Fatalf("left origin = (%v,%v), want (20,40)", x, y)
	}

	// basicfont advances 7px per glyph; "GAME OVER" is 9 glyphs at 4x.
	centred := game.DrawCmd{Kind: game.DrawText, X: 400, Y: 220, Text: "GAME OVER", Size: 52, Align: game.AlignCenter}
	x, _ := td.origin(centred)
	if want := 400 - 9*7*4/2.0; x != want {
		t.Fatalf("centred origin x = %v, want %v", x, want)
	}
}

func TestKeyMap_CoversMovementAndFire(t *testing.T) {
	want := map[game.Key]bool{
		game.KeyW: true, game.KeyA: true, game.KeyS: true, game.KeyD: true,
		game.KeyArrowUp: true, game.KeyArrowDown: true, game.KeyArrowLeft: true, game.KeyArrowRight: true,
		game.FireKey: true,
	}
	for _, k := range keyMap {
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("unmapped keys: %v", want)
	}
}

func TestFeedLine(t *testing.T) {
	line := feedLine(game.SimLogEntry{Clock: 1.5, Category: "kill", Value: "at (10,10) score 10"})
	if !strings.HasPrefix(line, "  1.50 kill ") || !strings.HasSuffix(line, "score 10") {
		t.Fatalf("feedLine = %q", line)
	}
}
