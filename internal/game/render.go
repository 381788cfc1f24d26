package game

import (
	"image/color"
	"strconv"
)

// DrawKind identifies a draw primitive.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawCircle
	DrawRect
	DrawText
)

// Align is horizontal text alignment relative to X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// DrawCmd is one primitive for a platform surface. Text Y is the baseline.
type DrawCmd struct {
	Kind  DrawKind
	X, Y  float64
	W, H  float64 // rect size
	R     float64 // circle radius
	Color color.RGBA
	Text  string
	Size  int // font size in pixels
	Align Align
}

// Render returns the draw commands for the current state. It never mutates
// the session and returns the same commands for the same state.
func Render(s *Session) []DrawCmd {
	return AppendRender(nil, s)
}

// AppendRender appends the frame's draw commands to dst and returns it, so a
// caller can reuse one buffer across frames.
func AppendRender(dst []DrawCmd, s *Session) []DrawCmd {
	vp := s.Viewport
	st := &s.Store

	dst = append(dst, DrawCmd{Kind: DrawClear, W: vp.W, H: vp.H, Color: ColorBackground})

	p := st.Player
	dst = append(dst, circle(p.X, p.Y, p.Radius, ColorPlayer))
	for _, b := range st.Bullets {
		dst = append(dst, circle(b.X, b.Y, b.Radius, ColorBullet))
	}
	for _, e := range st.Enemies {
		dst = append(dst, circle(e.X, e.Y, e.Radius, ColorEnemy))
	}

	dst = append(dst,
		label("SCORE: "+strconv.Itoa(s.Score), 20, 40, HUDFontSize, ColorText, AlignLeft),
		label("HP: "+strconv.Itoa(p.Health), 20, 75, HUDFontSize, ColorText, AlignLeft),
	)

	if s.State == StateGameOver {
		cx, cy := vp.Center()
		btn := RestartButton(vp)
		dst = append(dst,
			label("GAME OVER", cx, cy-80, TitleFontSize, ColorText, AlignCenter),
			DrawCmd{Kind: DrawRect, X: btn.X, Y: btn.Y, W: btn.W, H: btn.H, Color: ColorButton},
			label("PLAY AGAIN", cx, btn.Y+38, ButtonFontSize, ColorButtonLabel, AlignCenter),
		)
	}
	return dst
}

func circle(x, y, r float64, c color.RGBA) DrawCmd {
	return DrawCmd{Kind: DrawCircle, X: x, Y: y, R: r, Color: c}
}

func label(text string, x, y float64, size int, c color.RGBA, align Align) DrawCmd {
	return DrawCmd{Kind: DrawText, X: x, Y: y, Text: text, Size: size, Color: c, Align: align}
}
