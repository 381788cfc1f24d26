package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/circle-siege/internal/game"
)

func (g *Game) drawCmd(screen *ebiten.Image, c game.DrawCmd) {
	switch c.Kind {
	case game.DrawClear:
		screen.Fill(c.Color)
	case game.DrawCircle:
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), c.Color, true)
	case game.DrawRect:
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, false)
	case game.DrawText:
		g.text.draw(screen, c)
	}
}

// textDrawer renders text with the 7x13 bitmap face, scaled up to the
// requested pixel size.
type textDrawer struct {
	face   font.Face
	height float64 // unscaled line height in pixels
}

func newTextDrawer() *textDrawer {
	return &textDrawer{
		face:   basicfont.Face7x13,
		height: float64(basicfont.Face7x13.Height),
	}
}

func (td *textDrawer) scale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / td.height
}

// origin returns where the scaled baseline starts for c.
func (td *textDrawer) origin(c game.DrawCmd) (float64, float64) {
	x := c.X
	if c.Align == game.AlignCenter {
		w := float64(font.MeasureString(td.face, c.Text).Ceil()) * td.scale(c.Size)
		x -= w / 2
	}
	return x, c.Y
}

func (td *textDrawer) draw(screen *ebiten.Image, c game.DrawCmd) {
	s := td.scale(c.Size)
	x, y := td.origin(c)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.Color)
	text.DrawWithOptions(screen, c.Text, td.face, op)
}
