package game

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// ContainsStrict reports whether (x, y) lies inside r, excluding the border.
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// RestartButton returns the restart control's bounds for the viewport. It is
// recomputed from the current size every time, so resizes move it.
func RestartButton(vp Viewport) Rect {
	cx, cy := vp.Center()
	return Rect{
		X: cx - ButtonWidth/2,
		Y: cy - 20,
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

// HandlePointerClick restarts the session when it is over and the click lands
// on the restart button. It reports whether a restart happened.
func (s *Session) HandlePointerClick(x, y float64) bool {
	if s.State != StateGameOver {
		return false
	}
	if !RestartButton(s.Viewport).ContainsStrict(x, y) {
		return false
	}
	s.Restart()
	return true
}

// HandleRestartKey restarts a finished session from the keyboard, for
// platforms without a pointer.
func (s *Session) HandleRestartKey() bool {
	if s.State != StateGameOver {
		return false
	}
	s.Restart()
	return true
}
