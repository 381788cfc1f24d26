package termui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/circle-siege/internal/game"
)

// Each terminal cell is split into an upper and lower half-block, giving two
// square sub-pixels per cell. One sub-pixel covers unitsPerSubpixel logical
// units on each axis.
const (
	unitsPerSubpixel = 8.0
	cellW            = unitsPerSubpixel
	cellH            = 2 * unitsPerSubpixel
	halfBlock        = '▀'
)

// viewportFor returns the logical playfield for a terminal of cols×rows.
func viewportFor(cols, rows int) game.Viewport {
	return game.Viewport{W: float64(cols) * cellW, H: float64(rows) * cellH}
}

// cellOf maps a logical point to the terminal cell containing it.
func cellOf(x, y float64) (int, int) {
	return int(x / cellW), int(y / cellH)
}

// cellCenter maps a terminal cell to the logical point at its middle.
func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellW, (float64(row) + 0.5) * cellH
}

type cellText struct {
	col, row int
	text     string
	color    color.RGBA
}

// raster turns draw commands into half-block cells.
type raster struct {
	cols, rows int
	pix        []color.RGBA // cols × rows*2 sub-pixels, row major
	texts      []cellText
}

func (r *raster) resize(cols, rows int) {
	if cols == r.cols && rows == r.rows {
		return
	}
	r.cols, r.rows = cols, rows
	r.pix = make([]color.RGBA, cols*rows*2)
}

func (r *raster) set(sx, sy int, c color.RGBA) {
	if sx < 0 || sy < 0 || sx >= r.cols || sy >= r.rows*2 {
		return
	}
	r.pix[sy*r.cols+sx] = c
}

func (r *raster) at(sx, sy int) color.RGBA {
	return r.pix[sy*r.cols+sx]
}

// paint rasterises one frame's commands.
func (r *raster) paint(cmds []game.DrawCmd) {
	r.texts = r.texts[:0]
	for _, c := range cmds {
		switch c.Kind {
		case game.DrawClear:
			for i := range r.pix {
				r.pix[i] = c.Color
			}
		case game.DrawCircle:
			r.fillCircle(c.X, c.Y, c.R, c.Color)
		case game.DrawRect:
			r.fillRect(c.X, c.Y, c.W, c.H, c.Color)
		case game.DrawText:
			r.addText(c)
		}
	}
}

func (r *raster) fillCircle(cx, cy, radius float64, c color.RGBA) {
	// Small circles always light the sub-pixel under their centre.
	r.set(int(cx/unitsPerSubpixel), int(cy/unitsPerSubpixel), c)

	x0 := int((cx - radius) / unitsPerSubpixel)
	x1 := int((cx + radius) / unitsPerSubpixel)
	y0 := int((cy - radius) / unitsPerSubpixel)
	y1 := int((cy + radius) / unitsPerSubpixel)
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			px := (float64(sx) + 0.5) * unitsPerSubpixel
			py := (float64(sy) + 0.5) * unitsPerSubpixel
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= radius*radius {
				r.set(sx, sy, c)
			}
		}
	}
}

func (r *raster) fillRect(x, y, w, h float64, c color.RGBA) {
	for sy := int(y / unitsPerSubpixel); sy <= int((y+h)/unitsPerSubpixel); sy++ {
		py := (float64(sy) + 0.5) * unitsPerSubpixel
		if py < y || py > y+h {
			continue
		}
		for sx := int(x / unitsPerSubpixel); sx <= int((x+w)/unitsPerSubpixel); sx++ {
			px := (float64(sx) + 0.5) * unitsPerSubpixel
			if px < x || px > x+w {
				continue
			}
			r.set(sx, sy, c)
		}
	}
}

// addText places text on the cell row holding its baseline. Font size is
// ignored; every glyph is one cell.
func (r *raster) addText(c game.DrawCmd) {
	col, row := cellOf(c.X, c.Y)
	if c.Align == game.AlignCenter {
		col -= len([]rune(c.Text)) / 2
	}
	r.texts = append(r.texts, cellText{col: col, row: row, text: c.Text, color: c.Color})
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// flush writes the raster to the screen. Text sits on the colour of the
// cell's upper half.
func (r *raster) flush(screen tcell.Screen) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			top := r.at(col, row*2)
			bottom := r.at(col, row*2+1)
			st := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			screen.SetContent(col, row, halfBlock, nil, st)
		}
	}
	for _, t := range r.texts {
		if t.row < 0 || t.row >= r.rows {
			continue
		}
		col := t.col
		for _, ch := range t.text {
			if col >= 0 && col < r.cols {
				bg := r.at(col, t.row*2)
				st := tcell.StyleDefault.Foreground(rgb(t.color)).Background(rgb(bg))
				screen.SetContent(col, t.row, ch, nil, st)
			}
			col++
		}
	}
}
